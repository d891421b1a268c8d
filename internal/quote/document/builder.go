package document

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lotusnegra/storefront/internal/quote/domain"
)

// Document is an ordered sequence of text lines: a title, one line per quote
// line, and a trailing total. It is built fresh on every export and never
// mutated afterwards; layout and typography belong to the sink.
type Document struct {
	Title string
	Body  []string
	Total string
}

// Lines returns every document line in render order.
func (d Document) Lines() []string {
	out := make([]string, 0, len(d.Body)+2)
	out = append(out, d.Title)
	out = append(out, d.Body...)
	out = append(out, d.Total)
	return out
}

// Builder formats quotes into documents. All money is printed with exactly
// two decimal places; the total is the exact sum of exact subtotals, rounded
// once at format time.
type Builder struct {
	title          string
	currencyPrefix string
}

func NewBuilder(title, currencyPrefix string) *Builder {
	if title == "" {
		title = "Quote"
	}
	return &Builder{
		title:          title,
		currencyPrefix: currencyPrefix,
	}
}

// Build is a pure function of the quote. An empty quote is valid and yields
// just the title and a zero total.
func (b *Builder) Build(q domain.Quote) Document {
	doc := Document{
		Title: b.title,
		Body:  make([]string, 0, len(q.Lines)),
	}

	for _, line := range q.Lines {
		doc.Body = append(doc.Body, fmt.Sprintf("%s - %d x %s = %s",
			line.Name, line.Quantity, b.money(line.UnitPrice), b.money(line.Subtotal)))
	}

	doc.Total = fmt.Sprintf("Total: %s", b.money(q.Total))
	return doc
}

func (b *Builder) money(v decimal.Decimal) string {
	return b.currencyPrefix + v.StringFixed(2)
}
