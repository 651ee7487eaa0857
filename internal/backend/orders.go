package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Pranav-019/spices-admin-panel/internal/models"
)

func (c *Client) ListProductOrders(ctx context.Context) ([]models.ProductOrder, error) {
	return listOrders[models.ProductOrder](ctx, c, models.KindProduct)
}

func (c *Client) ListCustomOrders(ctx context.Context) ([]models.CustomOrder, error) {
	return listOrders[models.CustomOrder](ctx, c, models.KindCustom)
}

func listOrders[T any](ctx context.Context, c *Client, kind models.OrderKind) ([]T, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL, c.revision.ordersCollectionPath(kind), nil)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.do(req, &raw); err != nil {
		return nil, err
	}
	orders, err := decodeList[T](raw, "orders")
	if err != nil {
		return nil, fmt.Errorf("decoding %s orders: %w", kind, err)
	}
	return orders, nil
}

// UpdateOrderStatus sets one order's status. The body is exactly
// {"orderStatus": status}; no transition rules are applied here.
func (c *Client) UpdateOrderStatus(ctx context.Context, kind models.OrderKind, id string, status models.OrderStatus) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown order kind %q", kind)
	}
	body := struct {
		OrderStatus models.OrderStatus `json:"orderStatus"`
	}{status}
	req, err := c.newJSONRequest(ctx, http.MethodPut, c.baseURL, c.revision.orderStatusPath(kind, id), body)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
