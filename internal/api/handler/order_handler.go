package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/artesania/storefront-api/internal/core/domain"
	"github.com/artesania/storefront-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for owner-scoped order operations.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Get handles GET /api/orders/:id.
//
// @Summary      Get one of the caller's orders by id
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Order id"
// @Success      200 {object}  orderResponse
// @Failure      401 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Failure      500 {object}  errorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetOrder(c.Request().Context(), ports.GetOrderInput{
		Owner:   principal.Username,
		OrderID: c.Param("id"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(detail))
}

// List handles GET /api/orders?includeItems=true|false.
//
// @Summary      List the caller's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        includeItems  query     bool  false  "Include line items (default true)"
// @Success      200           {array}   orderResponse
// @Failure      401           {object}  errorResponse
// @Failure      500           {object}  errorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	// Items are included unless the flag parses as an explicit false.
	includeItems := true
	if raw := c.QueryParam("includeItems"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			includeItems = v
		}
	}

	details, err := h.service.ListOrders(c.Request().Context(), ports.ListOrdersInput{
		Owner:        principal.Username,
		IncludeItems: includeItems,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderListResponse(details))
}

// Create handles POST /api/orders.
//
// @Summary      Create a new order for the caller
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	detail, err := h.service.CreateOrder(c.Request().Context(), toCreateInput(req, principal.Username))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		}
		return err
	}

	resp := toOrderResponse(detail)
	c.Response().Header().Set(echo.HeaderLocation, resp.Links.Self)
	return c.JSON(http.StatusCreated, resp)
}
