package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom"
	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type addCategoryCmd struct{}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "register a new category" }
func (*addCategoryCmd) Usage() string {
	return `skr add-category <name>

  Registers a new category name. Names are unique ignoring case.
`
}

func (*addCategoryCmd) SetFlags(*flag.FlagSet) {}

func (c *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one category name is required.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	book, closeBook, err := OpenBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	ok, err := book.Categories.Add(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding category: %v\n", err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Category %q already exists.\n", name)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added category %q\n", name)
	return subcommands.ExitSuccess
}

type rmCategoryCmd struct{}

func (*rmCategoryCmd) Name() string     { return "rm-category" }
func (*rmCategoryCmd) Synopsis() string { return "delete a category" }
func (*rmCategoryCmd) Usage() string {
	return `skr rm-category <name>

  Deletes the category. Refused while any item still uses it.
`
}

func (*rmCategoryCmd) SetFlags(*flag.FlagSet) {}

func (c *rmCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one category name is required.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	book, closeBook, err := OpenBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	ok, err := book.Categories.Delete(name)
	var inUse *stockroom.CategoryInUseError
	if errors.As(err, &inUse) {
		fmt.Fprintln(os.Stderr, inUse.Error())
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting category: %v\n", err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "No category named %q.\n", name)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted category %q\n", name)
	return subcommands.ExitSuccess
}

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the registered categories" }
func (*categoriesCmd) Usage() string {
	return `skr categories

  Lists every registered category name.
`
}

func (*categoriesCmd) SetFlags(*flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	printMarkdown(renderer.CategoriesMarkdown(book.Categories.Categories()))
	return subcommands.ExitSuccess
}
