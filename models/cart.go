package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Cart is a single document per user with an embedded item list. The list
// holds at most one item per product id; items keep first-add order.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Items     []CartItem         `bson:"items" json:"items"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// AddItem merges quantity into an existing line for the product, or appends
// a new line at the end.
func (c *Cart) AddItem(productID primitive.ObjectID, quantity int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
}

// SetItemQuantity replaces the quantity of an existing line outright.
// Returns false when the product is not in the cart.
func (c *Cart) SetItemQuantity(productID primitive.ObjectID, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// RemoveItem drops the line for the product. Returns false when the product
// is not in the cart.
func (c *Cart) RemoveItem(productID primitive.ObjectID) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// CartItemView is a line item with its product resolved at read time. The
// product is nil when it no longer exists in the catalog.
type CartItemView struct {
	ProductID primitive.ObjectID `json:"product_id"`
	Product   *Product           `json:"product,omitempty"`
	Quantity  int                `json:"quantity"`
}

type CartView struct {
	UserID primitive.ObjectID `json:"user_id"`
	Items  []CartItemView     `json:"items"`
}
