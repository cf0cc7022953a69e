package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove an item from the inventory" }
func (*rmCmd) Usage() string {
	return `skr rm <id>

  Removes the item. Withdrawals already recorded against it are kept:
  they carry their own snapshot of the item.
`
}

func (*rmCmd) SetFlags(*flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one item id is required.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	book, closeBook, err := OpenBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	ok, err := book.Items.Delete(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error removing item: %v\n", err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "No item with id %q.\n", id)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed item %s\n", id)
	return subcommands.ExitSuccess
}
