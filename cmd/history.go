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

// rangeFlags is the shared -from/-to/-category flag set of the reporting
// commands. Dates accept the same relative forms as the rest of the tool,
// like "-7d" or "2026-01-15".
type rangeFlags struct {
	from     string
	to       string
	category string
}

func (r *rangeFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&r.from, "from", "", "first day to include")
	f.StringVar(&r.to, "to", "", "last day to include")
	f.StringVar(&r.category, "category", "", "restrict to a single category")
}

// parse resolves the flags into a date range. Empty flags leave the
// matching bound open.
func (r *rangeFlags) parse() (stockroom.Range, error) {
	var from, to stockroom.Date
	var err error
	if r.from != "" {
		if from, err = stockroom.ParseDate(r.from); err != nil {
			return stockroom.Range{}, fmt.Errorf("invalid -from: %w", err)
		}
	}
	if r.to != "" {
		if to, err = stockroom.ParseDate(r.to); err != nil {
			return stockroom.Range{}, fmt.Errorf("invalid -to: %w", err)
		}
	}
	return stockroom.NewRange(from, to), nil
}

// scope names the filtered selection for display, like
// "since 2026-01-01, category Tools".
func (r *rangeFlags) scope(rng stockroom.Range) string {
	s := rng.String()
	if r.category != "" {
		s += fmt.Sprintf(", category %s", r.category)
	}
	return s
}

type historyCmd struct {
	rangeFlags
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list past withdrawals, newest first" }
func (*historyCmd) Usage() string {
	return `skr history [-from <date>] [-to <date>] [-category <name>]

  Lists withdrawals, newest first. Both date bounds are inclusive and
  cover their whole calendar day.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *historyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	withdrawals := stockroom.History(book.Withdrawals.Filter(rng, c.category))
	printMarkdown(renderer.HistoryMarkdown(withdrawals))
	return subcommands.ExitSuccess
}
