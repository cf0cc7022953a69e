// Package renderer turns stockroom reports into markdown, ready to be
// printed to a terminal or pasted into a document.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/stockroom"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders a withdrawal summary. The scope string names what
// was summarized (a date range, a category, or both) and appears under the
// title.
func SummaryMarkdown(s *stockroom.Summary, scope string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Withdrawal Summary")
	if scope != "" {
		doc.PlainText(fmt.Sprintf("Scope: %s", scope))
	}

	if s.IsEmpty() {
		doc.PlainText("No withdrawals recorded for this scope.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Withdrawals", fmt.Sprintf("%d", s.Count)},
			{"Total quantity", fmt.Sprintf("%d", s.TotalQuantity)},
			{"Total cost", s.TotalCost.String()},
			{"Average cost", s.AverageCost.String()},
			{"Most withdrawn", fmt.Sprintf("%s (%d)", s.MostWithdrawn, s.MostWithdrawnQuantity)},
		},
	}
	doc.Table(table)

	return doc.String()
}
