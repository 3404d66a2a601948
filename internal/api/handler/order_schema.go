package handler

import "time"

// --- Request types ---

type orderItemRequest struct {
	ProductID   string  `json:"product_id"   validate:"required"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"   validate:"gte=0"`
	Quantity    int     `json:"quantity"     validate:"required,gt=0"`
}

// createOrderRequest deliberately has no owner field: ownership comes
// from the verified token, never from the body.
type createOrderRequest struct {
	Number    string             `json:"number"     validate:"required"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []orderItemRequest `json:"items"      validate:"required,min=1,dive"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from
// ports/domain types so the JSON contract is not coupled to internal
// service changes.

type orderItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

type orderLinks struct {
	Self string `json:"self"`
}

type orderResponse struct {
	ID        string              `json:"id"`
	Number    string              `json:"number"`
	CreatedAt time.Time           `json:"created_at"`
	Total     float64             `json:"total"`
	Items     []orderItemResponse `json:"items,omitempty"`
	Links     orderLinks          `json:"_links"`
}
