package pos

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ItemSnapshot is the slice of a catalog menu item the order entry flow
// needs. The cart copies it so later catalog edits cannot reach into an
// open order.
type ItemSnapshot struct {
	MenuItemID  uint
	Name        string
	Price       decimal.Decimal
	HalfPrice   *decimal.Decimal
	IsAvailable bool
}

// CartLine is one in-progress order line. Owned exclusively by its Cart.
type CartLine struct {
	ID         string
	MenuItemID uint
	Name       string
	BasePrice  decimal.Decimal
	HalfPrice  *decimal.Decimal

	// Effective unit price: defaults to BasePrice, may be overridden to
	// the half price or an arbitrary non-negative value.
	Price    decimal.Decimal
	Quantity int
}

func (l *CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an arena of CartLines keyed by generated line id, kept in
// insertion order. It is not safe for concurrent use; one cart belongs to
// one order entry flow.
type Cart struct {
	lines map[string]*CartLine
	order []string
	seq   int
}

func NewCart() *Cart {
	return &Cart{lines: make(map[string]*CartLine)}
}

func (c *Cart) nextID(menuItemID uint) string {
	c.seq++
	return fmt.Sprintf("line-%d-%d", menuItemID, c.seq)
}

// AddLine creates a new line for the item with quantity 1 at base price.
func (c *Cart) AddLine(item ItemSnapshot) *CartLine {
	line := &CartLine{
		ID:         c.nextID(item.MenuItemID),
		MenuItemID: item.MenuItemID,
		Name:       item.Name,
		BasePrice:  item.Price,
		HalfPrice:  item.HalfPrice,
		Price:      item.Price,
		Quantity:   1,
	}
	c.lines[line.ID] = line
	c.order = append(c.order, line.ID)
	return line
}

func (c *Cart) Line(id string) *CartLine {
	return c.lines[id]
}

// FindLine returns the first line matching the item at the given effective
// price, for pointer-driven increments on an existing line.
func (c *Cart) FindLine(menuItemID uint, price decimal.Decimal) *CartLine {
	for _, id := range c.order {
		l := c.lines[id]
		if l.MenuItemID == menuItemID && l.Price.Equal(price) {
			return l
		}
	}
	return nil
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []*CartLine {
	out := make([]*CartLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.lines[id])
	}
	return out
}

func (c *Cart) Len() int { return len(c.order) }

func (c *Cart) RemoveLine(id string) {
	if _, ok := c.lines[id]; !ok {
		return
	}
	delete(c.lines, id)
	for i, lid := range c.order {
		if lid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// SetQuantity sets a line's quantity; a line reaching 0 is removed.
func (c *Cart) SetQuantity(id string, qty int) {
	line, ok := c.lines[id]
	if !ok {
		return
	}
	if qty <= 0 {
		c.RemoveLine(id)
		return
	}
	line.Quantity = qty
}

// SetPrice overrides a line's effective unit price. Negative values are
// rejected.
func (c *Cart) SetPrice(id string, price decimal.Decimal) error {
	line, ok := c.lines[id]
	if !ok {
		return fmt.Errorf("no cart line %s", id)
	}
	if price.IsNegative() {
		return fmt.Errorf("price cannot be negative")
	}
	line.Price = price
	return nil
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, id := range c.order {
		sum = sum.Add(c.lines[id].LineTotal())
	}
	return sum
}

func (c *Cart) Clear() {
	c.lines = make(map[string]*CartLine)
	c.order = nil
}
