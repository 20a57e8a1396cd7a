// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"strings"
)

var (
	ErrInvalidProduct = errors.New("cart: invalid product")
)

// Item is "one line item" in a cart: a shop product and a quantity.
// Uniqueness is defined by ProductID.
type Item struct {
	ProductID string  `json:"id"`
	Title     string  `json:"title"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Medium    string  `json:"medium"`
	Quantity  int     `json:"quantity"`
}

// Product is the slice of a shop artwork the cart snapshots on add.
type Product struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Image  string  `json:"image"`
	Price  float64 `json:"price"`
	Size   string  `json:"size"`
	Medium string  `json:"medium"`
}

// Cart holds transient, in-memory shopping state for one browsing session.
// Not persisted anywhere: a restart empties every cart, matching the
// storefront's loss-on-reload behavior.
//
// IsOpen is the cart-panel visibility flag; it is UI state only and
// independent of the items.
type Cart struct {
	Items  []Item `json:"items"`
	IsOpen bool   `json:"isCartOpen"`
}

// AddItem adds one unit of product. If the product is already present its
// quantity is incremented; the cart never holds two lines for one product id.
func (c *Cart) AddItem(p Product) error {
	if c == nil {
		return ErrInvalidProduct
	}
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return ErrInvalidProduct
	}

	for i := range c.Items {
		if c.Items[i].ProductID == id {
			c.Items[i].Quantity++
			return nil
		}
	}

	c.Items = append(c.Items, Item{
		ProductID: id,
		Title:     p.Title,
		Image:     p.Image,
		Price:     p.Price,
		Size:      p.Size,
		Medium:    p.Medium,
		Quantity:  1,
	})
	return nil
}

// UpdateQuantity sets the quantity for productID.
// qty <= 0 removes the line entirely.
func (c *Cart) UpdateQuantity(productID string, qty int) {
	if c == nil {
		return
	}
	if qty <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = qty
			return
		}
	}
}

// RemoveItem deletes the line for productID if present.
func (c *Cart) RemoveItem(productID string) {
	if c == nil {
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear resets the cart to empty. The visibility flag is untouched.
func (c *Cart) Clear() {
	if c == nil {
		return
	}
	c.Items = []Item{}
}

// Toggle flips the cart-panel visibility flag.
func (c *Cart) Toggle() {
	if c == nil {
		return
	}
	c.IsOpen = !c.IsOpen
}

// Total is the derived sum of price x quantity, recomputed on every read.
func (c *Cart) Total() float64 {
	if c == nil {
		return 0
	}
	var sum float64
	for _, it := range c.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}
