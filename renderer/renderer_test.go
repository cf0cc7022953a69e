package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/stockroom"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headings parses the rendered markdown and returns its heading titles. It
// also catches output that goldmark cannot parse as a document.
func headings(t *testing.T, source string) []string {
	t.Helper()

	content := []byte(source)
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var out []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			var title strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				title.Write(line.Value(content))
			}
			out = append(out, strings.TrimSpace(strings.TrimLeft(title.String(), "# ")))
		}
		return ast.WalkContinue, nil
	})
	return out
}

func usd(value float64) stockroom.Money { return stockroom.M(value, "USD") }

func TestSummaryMarkdown(t *testing.T) {
	s := stockroom.NewSummary([]stockroom.Withdrawal{
		{ItemName: "Widget", Quantity: 3, TotalCost: usd(7.50)},
		{ItemName: "Widget", Quantity: 2, TotalCost: usd(5.00)},
	})

	got := SummaryMarkdown(s, "since 2026-01-01")

	if h := headings(t, got); len(h) != 1 || h[0] != "Withdrawal Summary" {
		t.Errorf("headings = %v, want [Withdrawal Summary]", h)
	}
	for _, want := range []string{"since 2026-01-01", "Widget (5)", "Total quantity", "5"} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown_Empty(t *testing.T) {
	got := SummaryMarkdown(stockroom.NewSummary(nil), "")
	if !strings.Contains(got, "No withdrawals recorded for this scope.") {
		t.Errorf("SummaryMarkdown(empty) must render an explicit notice, got:\n%s", got)
	}
	if strings.Contains(got, "| Metric") {
		t.Errorf("SummaryMarkdown(empty) must not render the metric table, got:\n%s", got)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	withdrawals := []stockroom.Withdrawal{{
		ItemName:  "Widget",
		Category:  "Tools",
		Quantity:  3,
		UnitCost:  usd(2.50),
		TotalCost: usd(7.50),
		Date:      time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
	}}

	got := HistoryMarkdown(withdrawals)

	if h := headings(t, got); len(h) != 1 || h[0] != "Withdrawal History" {
		t.Errorf("headings = %v, want [Withdrawal History]", h)
	}
	for _, want := range []string{"2026-01-15 10:30", "Widget", "Tools"} {
		if !strings.Contains(got, want) {
			t.Errorf("HistoryMarkdown() missing %q in:\n%s", want, got)
		}
	}

	if got := HistoryMarkdown(nil); !strings.Contains(got, "No withdrawals recorded.") {
		t.Errorf("HistoryMarkdown(nil) must render an explicit notice, got:\n%s", got)
	}
}

func TestItemsMarkdown(t *testing.T) {
	items := []stockroom.Item{{
		ID:       "id-1",
		Name:     "Widget",
		Category: "Tools",
		Quantity: 10,
		UnitCost: usd(2.50),
	}}

	got := ItemsMarkdown(items)
	if h := headings(t, got); len(h) != 1 || h[0] != "Inventory" {
		t.Errorf("headings = %v, want [Inventory]", h)
	}
	for _, want := range []string{"id-1", "Widget", "Tools", "10"} {
		if !strings.Contains(got, want) {
			t.Errorf("ItemsMarkdown() missing %q in:\n%s", want, got)
		}
	}

	if got := ItemsMarkdown(nil); !strings.Contains(got, "No items yet.") {
		t.Errorf("ItemsMarkdown(nil) must render an explicit notice, got:\n%s", got)
	}
}

func TestCategoriesMarkdown(t *testing.T) {
	got := CategoriesMarkdown([]string{"Tools", "Electronics"})
	if h := headings(t, got); len(h) != 1 || h[0] != "Categories" {
		t.Errorf("headings = %v, want [Categories]", h)
	}
	for _, want := range []string{"- Tools", "- Electronics"} {
		if !strings.Contains(got, want) {
			t.Errorf("CategoriesMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
