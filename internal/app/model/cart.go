package model

import (
	"github.com/goccy/go-json"
)

// LineItem pairs a product with a positive quantity.
type LineItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Total returns price x quantity for the line.
func (i LineItem) Total() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart holds line items keyed by product ID in insertion order.
// Every item present has a quantity of at least 1 and product IDs never repeat.
// The zero value is an empty cart. A Cart is not safe for concurrent use.
type Cart struct {
	items []LineItem
	index map[string]int
}

// AddItem increments the quantity of an existing line in place,
// or appends a new line with quantity 1.
func (c *Cart) AddItem(product Product) {
	if i, ok := c.index[product.ID]; ok {
		c.items[i].Quantity++
		return
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[product.ID] = len(c.items)
	c.items = append(c.items, LineItem{Product: product, Quantity: 1})
}

// RemoveItem drops the line for productID. Unknown IDs are ignored.
func (c *Cart) RemoveItem(productID string) bool {
	i, ok := c.index[productID]
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, productID)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].ID] = j
	}
	return true
}

// SetQuantity overwrites the quantity of a line without moving it.
// A quantity of zero or less removes the line.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	if quantity <= 0 {
		return c.RemoveItem(productID)
	}
	i, ok := c.index[productID]
	if !ok {
		return false
	}
	c.items[i].Quantity = quantity
	return true
}

// TotalCount is the badge count: the sum of all quantities.
func (c *Cart) TotalCount() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Total()
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Get(productID string) (LineItem, bool) {
	i, ok := c.index[productID]
	if !ok {
		return LineItem{}, false
	}
	return c.items[i], true
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Clear() {
	c.items = nil
	c.index = nil
}

// Clone returns an independent copy of the cart.
func (c *Cart) Clone() Cart {
	clone := Cart{}
	for _, item := range c.items {
		clone.append(item)
	}
	return clone
}

func (c *Cart) append(item LineItem) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[item.ID] = len(c.items)
	c.items = append(c.items, item)
}

// MarshalJSON encodes the cart as an ordered array of line items.
func (c Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Items())
}

// UnmarshalJSON rebuilds the cart from an array of line items.
// Lines with a non-positive quantity are dropped and repeated IDs are merged
// into the first occurrence.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	c.Clear()
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if i, ok := c.index[item.ID]; ok {
			c.items[i].Quantity += item.Quantity
			continue
		}
		c.append(item)
	}
	return nil
}
