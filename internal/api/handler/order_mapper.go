package handler

import (
	"github.com/artesania/storefront-api/internal/core/ports"
)

// Pure request/response mapping. No state, no I/O; failure modes beyond
// malformed input do not exist, malformed input is rejected upstream by
// the validator.

// --- Request → Service input ---

func toCreateInput(req createOrderRequest, owner string) ports.CreateOrderInput {
	items := make([]ports.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ports.OrderItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}
	return ports.CreateOrderInput{
		Owner:     owner,
		Number:    req.Number,
		CreatedAt: req.CreatedAt,
		Items:     items,
	}
}

// --- Service result → HTTP response ---

func toOrderResponse(d *ports.OrderDetail) orderResponse {
	items := make([]orderItemResponse, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, orderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}
	return orderResponse{
		ID:        d.ID,
		Number:    d.Number,
		CreatedAt: d.CreatedAt.UTC(),
		Total:     d.Total,
		Items:     items,
		Links:     orderLinks{Self: "/api/orders/" + d.ID},
	}
}

func toOrderListResponse(details []ports.OrderDetail) []orderResponse {
	out := make([]orderResponse, 0, len(details))
	for i := range details {
		out = append(out, toOrderResponse(&details[i]))
	}
	return out
}
