package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report for the terminal and prints it to
// stdout. When rendering fails (e.g. no usable terminal profile), the raw
// markdown is printed instead so the information is never lost.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not render markdown:", err)
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
