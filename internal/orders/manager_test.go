package orders

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Pranav-019/spices-admin-panel/internal/models"
)

type update struct {
	Kind   models.OrderKind
	ID     string
	Status models.OrderStatus
}

type fakeSource struct {
	mu         sync.Mutex
	product    []models.ProductOrder
	custom     []models.CustomOrder
	productErr error
	customErr  error
	updateErr  error
	updates    []update
	listCalls  int
}

func (f *fakeSource) ListProductOrders(ctx context.Context) ([]models.ProductOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.product, f.productErr
}

func (f *fakeSource) ListCustomOrders(ctx context.Context) ([]models.CustomOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.custom, f.customErr
}

func (f *fakeSource) UpdateOrderStatus(ctx context.Context, kind models.OrderKind, id string, status models.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, update{kind, id, status})
	return f.updateErr
}

type fakeRecorder struct {
	changes []models.StatusChange
	err     error
}

func (r *fakeRecorder) RecordStatusChange(ctx context.Context, c models.StatusChange) error {
	r.changes = append(r.changes, c)
	return r.err
}

func sampleSource() *fakeSource {
	return &fakeSource{
		product: []models.ProductOrder{
			{ID: "p1", Product: &models.Product{Name: "Cumin", Category: "Seeds", Price: decimal.NewFromInt(40)}, Quantity: 3, OrderStatus: models.StatusProcessing},
			{ID: "p2", Quantity: 1, OrderStatus: models.StatusCancelled},
		},
		custom: []models.CustomOrder{
			{ID: "c1", ProductName: "Saffron", Category: "Premium", TokenAmount: decimal.NewFromInt(500), Quantity: 2, OrderStatus: models.StatusProcessing},
		},
	}
}

func TestLoadBothCollections(t *testing.T) {
	src := sampleSource()
	b := NewManager(src, nil, "Pre-booking Orders").Load(context.Background())
	if b.Loading {
		t.Error("Loading still true after Load")
	}
	if src.listCalls != 2 {
		t.Errorf("list calls = %d, want 2", src.listCalls)
	}
	if b.Notice != "" || len(b.Errors) != 0 {
		t.Errorf("unexpected errors: %v", b.Errors)
	}

	cols := b.Collections()
	if cols[0].Label != "Product Orders" || cols[1].Label != "Pre-booking Orders" {
		t.Errorf("labels = %q, %q", cols[0].Label, cols[1].Label)
	}
	p1 := cols[0].Rows[0]
	if !p1.Total.Equal(decimal.NewFromInt(120)) || p1.TotalLabel != "Total Amount" {
		t.Errorf("product row total = %s (%s)", p1.Total, p1.TotalLabel)
	}
	p2 := cols[0].Rows[1]
	if p2.ProductName != "N/A" || p2.Category != "N/A" || !p2.UnitPrice.IsZero() {
		t.Errorf("missing product not defaulted: %+v", p2)
	}
	c1 := cols[1].Rows[0]
	if !c1.Total.Equal(decimal.NewFromInt(500)) || c1.UnitPrice != nil || c1.TotalLabel != "Amount" {
		t.Errorf("custom row = %+v", c1)
	}
}

func TestLoadFailureResolvesLoading(t *testing.T) {
	src := sampleSource()
	src.productErr = errors.New("connection refused")
	b := NewManager(src, nil, "").Load(context.Background())
	if b.Loading {
		t.Fatal("Loading still true after failed Load")
	}
	if b.Notice != FetchFailedMessage || len(b.Errors) != 1 {
		t.Errorf("notice = %q errors = %v", b.Notice, b.Errors)
	}
	if len(b.CustomOrders) != 1 {
		t.Error("custom orders dropped because product orders failed")
	}

	src.customErr = errors.New("timeout")
	b = NewManager(src, nil, "").Load(context.Background())
	if b.Loading || len(b.Errors) != 2 {
		t.Errorf("Loading = %v errors = %v", b.Loading, b.Errors)
	}
}

func TestSetStatusIssuesOneUpdateAndRecords(t *testing.T) {
	src := sampleSource()
	rec := &fakeRecorder{}
	m := NewManager(src, rec, "")

	if err := m.SetStatus(context.Background(), models.KindCustom, "c1", models.StatusShipped, 7); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if len(src.updates) != 1 || src.updates[0] != (update{models.KindCustom, "c1", models.StatusShipped}) {
		t.Errorf("updates = %+v", src.updates)
	}
	if len(rec.changes) != 1 || !rec.changes[0].Succeeded || rec.changes[0].UserID != 7 {
		t.Errorf("recorded = %+v", rec.changes)
	}
}

func TestSetStatusAnyTransitionAllowed(t *testing.T) {
	src := sampleSource()
	m := NewManager(src, nil, "")
	// cancelled back to placed is not blocked here
	if err := m.SetStatus(context.Background(), models.KindProduct, "p2", models.StatusOrderPlaced, 1); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
}

func TestSetStatusFailureStillRecorded(t *testing.T) {
	src := sampleSource()
	src.updateErr = errors.New("backend down")
	rec := &fakeRecorder{err: errors.New("disk full")}
	err := NewManager(src, rec, "").SetStatus(context.Background(), models.KindProduct, "p1", models.StatusDelivered, 1)
	if !errors.Is(err, src.updateErr) {
		t.Fatalf("err = %v, want backend error", err)
	}
	if len(rec.changes) != 1 || rec.changes[0].Succeeded || rec.changes[0].Error != "backend down" {
		t.Errorf("recorded = %+v", rec.changes)
	}
}

func TestSetStatusRejectsBadInput(t *testing.T) {
	src := sampleSource()
	m := NewManager(src, nil, "")
	ctx := context.Background()
	if err := m.SetStatus(ctx, "gift", "x", models.StatusShipped, 1); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("kind: %v", err)
	}
	if err := m.SetStatus(ctx, models.KindProduct, "x", "Lost", 1); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("status: %v", err)
	}
	if err := m.SetStatus(ctx, models.KindProduct, "", models.StatusShipped, 1); !errors.Is(err, ErrMissingID) {
		t.Errorf("id: %v", err)
	}
	if len(src.updates) != 0 {
		t.Errorf("invalid input reached the backend: %+v", src.updates)
	}
}

func TestCancel(t *testing.T) {
	src := sampleSource()
	if err := NewManager(src, nil, "").Cancel(context.Background(), models.KindProduct, "p1", 1); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if src.updates[0].Status != models.StatusCancelled {
		t.Errorf("cancel sent %q", src.updates[0].Status)
	}
}

func TestStatusCounts(t *testing.T) {
	src := sampleSource()
	src.custom = append(src.custom, models.CustomOrder{ID: "c2", OrderStatus: "On Hold"})
	counts := NewManager(src, nil, "").Load(context.Background()).StatusCounts()
	got := map[models.OrderStatus]int{}
	for _, c := range counts {
		got[c.Status] = c.Count
	}
	if got[models.StatusProcessing] != 2 || got[models.StatusCancelled] != 1 || got["On Hold"] != 1 {
		t.Errorf("counts = %v", got)
	}
	if counts[0].Status != models.StatusOrderPlaced || counts[len(counts)-1].Status != "On Hold" {
		t.Errorf("order = %+v", counts)
	}
}
