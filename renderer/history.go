package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/stockroom"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders withdrawals as a table. Callers pass the slice
// already ordered, usually newest first via stockroom.History.
func HistoryMarkdown(withdrawals []stockroom.Withdrawal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Withdrawal History")

	if len(withdrawals) == 0 {
		doc.PlainText("No withdrawals recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Item", "Category", "Quantity", "Unit Cost", "Total"},
		Rows:   [][]string{},
	}
	for _, w := range withdrawals {
		table.Rows = append(table.Rows, []string{
			w.Date.Format("2006-01-02 15:04"),
			w.ItemName,
			w.Category,
			fmt.Sprintf("%d", w.Quantity),
			w.UnitCost.String(),
			w.TotalCost.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
