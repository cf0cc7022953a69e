package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type itemsCmd struct{}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list the items in the inventory" }
func (*itemsCmd) Usage() string {
	return `skr items

  Lists every item with its id, quantity and current unit cost.
`
}

func (*itemsCmd) SetFlags(*flag.FlagSet) {}

func (c *itemsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	printMarkdown(renderer.ItemsMarkdown(book.Items.Items()))
	return subcommands.ExitSuccess
}
