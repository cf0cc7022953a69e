package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/stockroom"
	"github.com/google/subcommands"
)

type withdrawCmd struct {
	quantity string
	notes    string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw stock from an item" }
func (*withdrawCmd) Usage() string {
	return `skr withdraw <id> -q <quantity> [-m <notes>]

  Records a withdrawal against the item and decrements its stock.
  The record keeps the item's name, category and unit cost as they
  were at withdrawal time.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.quantity, "q", "", "number of units to withdraw (required)")
	f.StringVar(&c.notes, "m", "", "optional note attached to the withdrawal")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one item id is required.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	quantity, err := strconv.ParseInt(c.quantity, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -q %q is not a whole number.\n", c.quantity)
		return subcommands.ExitUsageError
	}

	book, closeBook, err := OpenBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	w, err := book.Withdrawals.Withdraw(id, quantity, c.notes)
	var short *stockroom.InsufficientStockError
	switch {
	case errors.Is(err, stockroom.ErrItemNotFound):
		fmt.Fprintf(os.Stderr, "No item with id %q.\n", id)
		return subcommands.ExitFailure
	case errors.As(err, &short):
		fmt.Fprintln(os.Stderr, short.Error())
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error withdrawing: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Withdrew %d x %q for %s\n", w.Quantity, w.ItemName, w.TotalCost)
	return subcommands.ExitSuccess
}
