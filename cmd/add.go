package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom"
	"github.com/google/subcommands"
)

type addCmd struct {
	name        string
	category    string
	quantity    string
	cost        string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new item to the inventory" }
func (*addCmd) Usage() string {
	return `skr add -n <name> -q <quantity> -p <unit-cost> [-c <category>] [-d <description>]

  Adds a new item to the inventory:
  - name: The item name (required).
  - quantity: Units currently in stock, a non-negative whole number.
  - unit-cost: Current cost per unit, e.g. 2.50.
  - category: One of the registered categories (see 'skr categories').
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "item name (required)")
	f.StringVar(&c.category, "c", "Uncategorized", "item category")
	f.StringVar(&c.quantity, "q", "0", "quantity in stock")
	f.StringVar(&c.cost, "p", "0", "cost per unit")
	f.StringVar(&c.description, "d", "", "optional description")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	item, err := book.Items.Create(stockroom.ItemDraft{
		Name:        c.name,
		Category:    c.category,
		Quantity:    c.quantity,
		UnitCost:    c.cost,
		Description: c.description,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding item: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %q (id %s): %d in stock at %s\n", item.Name, item.ID, item.Quantity, item.UnitCost)
	return subcommands.ExitSuccess
}
