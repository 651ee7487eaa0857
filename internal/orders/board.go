package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Pranav-019/spices-admin-panel/internal/models"
)

// Board is one load of both order collections.
type Board struct {
	Loading       bool
	ProductOrders []models.ProductOrder
	CustomOrders  []models.CustomOrder
	Errors        []error
	Notice        string
	FetchedAt     time.Time

	customLabel string
}

// Row is an order of either class in the shape the table renders. The
// detail view is computed from the same record.
type Row struct {
	Kind                models.OrderKind
	ID                  string
	ProductName         string
	Category            string
	Quantity            int
	GrindLevel          string
	SpecialInstructions string
	// UnitPrice is only set for product orders.
	UnitPrice  *decimal.Decimal
	Total      decimal.Decimal
	TotalLabel string
	Status     models.OrderStatus
	CreatedAt  time.Time
}

// Collection is one tab of the order table.
type Collection struct {
	Kind  models.OrderKind
	Label string
	Rows  []Row
}

func (b *Board) Collections() []Collection {
	return []Collection{b.Collection(models.KindProduct), b.Collection(models.KindCustom)}
}

func (b *Board) Collection(kind models.OrderKind) Collection {
	if kind == models.KindCustom {
		rows := make([]Row, 0, len(b.CustomOrders))
		for _, o := range b.CustomOrders {
			rows = append(rows, customRow(o))
		}
		return Collection{Kind: models.KindCustom, Label: b.customLabel, Rows: rows}
	}
	rows := make([]Row, 0, len(b.ProductOrders))
	for _, o := range b.ProductOrders {
		rows = append(rows, productRow(o))
	}
	return Collection{Kind: models.KindProduct, Label: "Product Orders", Rows: rows}
}

func productRow(o models.ProductOrder) Row {
	price := o.UnitPrice()
	return Row{
		Kind:                models.KindProduct,
		ID:                  o.ID,
		ProductName:         orNA(o.ProductName()),
		Category:            orNA(o.Category()),
		Quantity:            o.Quantity,
		GrindLevel:          o.GrindLevel,
		SpecialInstructions: o.SpecialInstructions,
		UnitPrice:           &price,
		Total:               o.Total(),
		TotalLabel:          "Total Amount",
		Status:              o.OrderStatus,
		CreatedAt:           o.CreatedAt,
	}
}

func customRow(o models.CustomOrder) Row {
	return Row{
		Kind:                models.KindCustom,
		ID:                  o.ID,
		ProductName:         o.ProductName,
		Category:            o.Category,
		Quantity:            o.Quantity,
		GrindLevel:          o.GrindLevel,
		SpecialInstructions: o.SpecialInstructions,
		Total:               o.Total(),
		TotalLabel:          "Amount",
		Status:              o.OrderStatus,
		CreatedAt:           o.CreatedAt,
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// StatusCount is one bar of the dashboard's orders-by-status summary.
type StatusCount struct {
	Status models.OrderStatus
	Count  int
}

// StatusCounts counts orders of both classes per status, in the fixed
// status order. Statuses the backend invented are appended after.
func (b *Board) StatusCounts() []StatusCount {
	counts := make(map[models.OrderStatus]int)
	var extra []models.OrderStatus
	add := func(s models.OrderStatus) {
		if _, seen := counts[s]; !seen && !s.Valid() {
			extra = append(extra, s)
		}
		counts[s]++
	}
	for _, o := range b.ProductOrders {
		add(o.OrderStatus)
	}
	for _, o := range b.CustomOrders {
		add(o.OrderStatus)
	}
	out := make([]StatusCount, 0, len(counts))
	for _, s := range models.OrderStatuses() {
		out = append(out, StatusCount{Status: s, Count: counts[s]})
	}
	for _, s := range extra {
		out = append(out, StatusCount{Status: s, Count: counts[s]})
	}
	return out
}
