package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom"
	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	rangeFlags
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "summarize withdrawals over a period" }
func (*reportCmd) Usage() string {
	return `skr report [-from <date>] [-to <date>] [-category <name>]

  Summarizes the withdrawals of the period: count, total units, total
  and average cost, and the most withdrawn item.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, err := c.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, closeBook, err := OpenBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	summary := stockroom.NewSummary(book.Withdrawals.Filter(rng, c.category))
	printMarkdown(renderer.SummaryMarkdown(summary, c.scope(rng)))
	return subcommands.ExitSuccess
}
