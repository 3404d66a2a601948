package domain

import (
	"errors"
	"time"
)

var ErrInvalidRequest = errors.New("invalid request")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrUserNotFound = errors.New("user not found")
var ErrOrderNotFound = errors.New("order not found")

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID   string  `json:"product_id" bson:"product_id"`
	ProductName string  `json:"product_name" bson:"product_name"`
	UnitPrice   float64 `json:"unit_price" bson:"unit_price"`
	Quantity    int     `json:"quantity" bson:"quantity"`
}

// Order is the core aggregate root. Owner is the username of the account
// the order belongs to; every read and write is scoped to it.
type Order struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	Owner     string      `json:"owner" bson:"owner"`
	Number    string      `json:"number" bson:"number"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	Items     []OrderItem `json:"items,omitempty" bson:"items,omitempty"`
}

// Total sums the order's line items.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}
