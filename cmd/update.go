package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom"
	"github.com/google/subcommands"
)

type updateCmd struct {
	name        string
	category    string
	quantity    string
	cost        string
	description string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update fields of an existing item" }
func (*updateCmd) Usage() string {
	return `skr update <id> [-n <name>] [-c <category>] [-q <quantity>] [-p <unit-cost>] [-d <description>]

  Updates the given fields of an item; omitted flags leave the field
  untouched. The item id is printed by 'skr add' and 'skr items'.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "new item name")
	f.StringVar(&c.category, "c", "", "new category")
	f.StringVar(&c.quantity, "q", "", "new quantity in stock")
	f.StringVar(&c.cost, "p", "", "new cost per unit")
	f.StringVar(&c.description, "d", "", "new description")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one item id is required.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	// Only flags the user actually passed become part of the patch.
	var patch stockroom.ItemPatch
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "n":
			patch.Name = &c.name
		case "c":
			patch.Category = &c.category
		case "q":
			patch.Quantity = &c.quantity
		case "p":
			patch.UnitCost = &c.cost
		case "d":
			patch.Description = &c.description
		}
	})

	book, closeBook, err := OpenBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	ok, err := book.Items.Update(id, patch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating item: %v\n", err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "No item with id %q.\n", id)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated item %s\n", id)
	return subcommands.ExitSuccess
}
