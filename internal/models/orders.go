package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusOrderPlaced OrderStatus = "Order Placed"
	StatusProcessing  OrderStatus = "Processing"
	StatusConfirmed   OrderStatus = "Confirmed"
	StatusShipped     OrderStatus = "Shipped"
	StatusDelivered   OrderStatus = "Delivered"
	StatusCancelled   OrderStatus = "Cancelled"
)

var orderStatuses = []OrderStatus{
	StatusOrderPlaced,
	StatusProcessing,
	StatusConfirmed,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

var statusColors = map[OrderStatus]string{
	StatusOrderPlaced: "blue",
	StatusProcessing:  "orange",
	StatusConfirmed:   "green",
	StatusShipped:     "cyan",
	StatusDelivered:   "purple",
	StatusCancelled:   "red",
}

// OrderStatuses returns the fixed status set in display order.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

// ParseOrderStatus accepts only members of the fixed set. Any member may
// follow any other; legality of a transition is the backend's business.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(s)
	return st, st.Valid()
}

func (s OrderStatus) Valid() bool {
	_, ok := statusColors[s]
	return ok
}

// Color is the tag color used for the status pill. Unknown statuses are grey.
func (s OrderStatus) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return "default"
}

type OrderKind string

const (
	KindProduct OrderKind = "product"
	KindCustom  OrderKind = "custom"
)

func (k OrderKind) Valid() bool {
	return k == KindProduct || k == KindCustom
}

// ProductOrder references a catalog product; price comes through the reference.
type ProductOrder struct {
	ID                  string      `json:"_id"`
	Product             *Product    `json:"product"`
	Quantity            int         `json:"quantity"`
	GrindLevel          string      `json:"grindLevel,omitempty"`
	SpecialInstructions string      `json:"specialInstructions,omitempty"`
	OrderStatus         OrderStatus `json:"orderStatus"`
	CreatedAt           time.Time   `json:"createdAt"`
}

// UnmarshalJSON tolerates an unpopulated product reference (a bare id).
func (o *ProductOrder) UnmarshalJSON(data []byte) error {
	type alias ProductOrder
	aux := struct {
		Product json.RawMessage `json:"product"`
		*alias
	}{alias: (*alias)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	o.Product = nil
	if len(aux.Product) == 0 || string(aux.Product) == "null" {
		return nil
	}
	var id string
	if err := json.Unmarshal(aux.Product, &id); err == nil {
		o.Product = &Product{ID: id}
		return nil
	}
	var p Product
	if err := json.Unmarshal(aux.Product, &p); err != nil {
		return err
	}
	o.Product = &p
	return nil
}

func (o ProductOrder) UnitPrice() decimal.Decimal {
	if o.Product == nil {
		return decimal.Zero
	}
	return o.Product.Price
}

func (o ProductOrder) Total() decimal.Decimal {
	return o.UnitPrice().Mul(decimal.NewFromInt(int64(o.Quantity)))
}

func (o ProductOrder) ProductName() string {
	if o.Product == nil {
		return ""
	}
	return o.Product.Name
}

func (o ProductOrder) Category() string {
	if o.Product == nil {
		return ""
	}
	return o.Product.Category
}

// CustomOrder carries its own product details and a flat token amount.
type CustomOrder struct {
	ID                  string          `json:"_id"`
	ProductName         string          `json:"productName"`
	Category            string          `json:"category"`
	Quantity            int             `json:"quantity"`
	GrindLevel          string          `json:"grindLevel,omitempty"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
	TokenAmount         decimal.Decimal `json:"tokenAmount"`
	OrderStatus         OrderStatus     `json:"orderStatus"`
	CreatedAt           time.Time       `json:"createdAt"`
}

func (o CustomOrder) Total() decimal.Decimal {
	return o.TokenAmount
}
