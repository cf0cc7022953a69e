package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/stockroom"
	md "github.com/nao1215/markdown"
)

// ItemsMarkdown renders the current stock as a table, in ledger order.
func ItemsMarkdown(items []stockroom.Item) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory")

	if len(items) == 0 {
		doc.PlainText("No items yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Name", "Category", "Quantity", "Unit Cost"},
		Rows:   [][]string{},
	}
	for _, it := range items {
		table.Rows = append(table.Rows, []string{
			it.ID,
			it.Name,
			it.Category,
			fmt.Sprintf("%d", it.Quantity),
			it.UnitCost.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// CategoriesMarkdown renders the registry as a bullet list.
func CategoriesMarkdown(categories []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Categories")
	if len(categories) == 0 {
		doc.PlainText("No categories defined.")
		return doc.String()
	}
	doc.BulletList(categories...)

	return doc.String()
}
