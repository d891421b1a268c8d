package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is one cart entry. Name and UnitPrice are copied from the catalog
// at add time; the catalog is static, so the copies never diverge.
type LineItem struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Cart holds at most one line item per product, in insertion order.
type Cart struct {
	SessionID string
	Items     []LineItem
}

// NormalizeQuantity maps free-text quantity input to a usable quantity.
// Anything that does not parse as a whole number of at least 1 becomes 1.
// Both the add and the edit flow go through this, so they cannot drift.
func NormalizeQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Add merges the item's quantity into an existing line for the same product,
// or appends a new line. Merging never reorders existing lines.
func (c *Cart) Add(item LineItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove deletes the line for productID. Absent products are a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity on an existing line, keeping the floor
// of 1. Absent products are a no-op; the line keeps its position.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Snapshot returns a copy of the line items that later mutations cannot
// touch, in insertion order.
func (c *Cart) Snapshot() []LineItem {
	out := make([]LineItem, len(c.Items))
	copy(out, c.Items)
	return out
}
