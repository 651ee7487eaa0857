// Package orders is the order-management workflow shared by both order
// classes: load the two collections, change a status, record the change.
package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Pranav-019/spices-admin-panel/internal/models"
)

// FetchFailedMessage is the notification shown when either collection
// could not be loaded.
const FetchFailedMessage = "Failed to fetch orders"

var (
	ErrUnknownKind   = errors.New("unknown order kind")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrMissingID     = errors.New("missing order id")
)

// Source is the slice of the backend client this package needs.
type Source interface {
	ListProductOrders(ctx context.Context) ([]models.ProductOrder, error)
	ListCustomOrders(ctx context.Context) ([]models.CustomOrder, error)
	UpdateOrderStatus(ctx context.Context, kind models.OrderKind, id string, status models.OrderStatus) error
}

// Recorder persists the audit trail of status changes.
type Recorder interface {
	RecordStatusChange(ctx context.Context, change models.StatusChange) error
}

type Manager struct {
	source      Source
	recorder    Recorder
	customLabel string
	now         func() time.Time
}

// NewManager wires a Manager. recorder may be nil; customLabel names the
// second order class ("Custom Orders" or "Pre-booking Orders").
func NewManager(source Source, recorder Recorder, customLabel string) *Manager {
	if customLabel == "" {
		customLabel = "Custom Orders"
	}
	return &Manager{
		source:      source,
		recorder:    recorder,
		customLabel: customLabel,
		now:         time.Now,
	}
}

// Load fetches both collections concurrently. A failure in one does not
// hide the other; it only adds to Errors and sets Notice. Loading is always
// false once Load returns.
func (m *Manager) Load(ctx context.Context) *Board {
	b := &Board{customLabel: m.customLabel, Loading: true}
	defer func() { b.Loading = false }()

	var (
		wg                    sync.WaitGroup
		productErr, customErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		b.ProductOrders, productErr = m.source.ListProductOrders(ctx)
	}()
	go func() {
		defer wg.Done()
		b.CustomOrders, customErr = m.source.ListCustomOrders(ctx)
	}()
	wg.Wait()

	if productErr != nil {
		slog.Error("Failed to fetch product orders", "error", productErr)
		b.Errors = append(b.Errors, fmt.Errorf("product orders: %w", productErr))
	}
	if customErr != nil {
		slog.Error("Failed to fetch custom orders", "error", customErr)
		b.Errors = append(b.Errors, fmt.Errorf("custom orders: %w", customErr))
	}
	if len(b.Errors) > 0 {
		b.Notice = FetchFailedMessage
	}
	b.FetchedAt = m.now()
	return b
}

// SetStatus issues exactly one update for the order and records the
// outcome. Any status in the fixed set may follow any other.
func (m *Manager) SetStatus(ctx context.Context, kind models.OrderKind, id string, status models.OrderStatus, userID int) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if id == "" {
		return ErrMissingID
	}

	err := m.source.UpdateOrderStatus(ctx, kind, id, status)
	if err != nil {
		slog.Error("Failed to update order status", "kind", kind, "order_id", id, "status", status, "error", err)
	} else {
		slog.Info("Order status updated", "kind", kind, "order_id", id, "status", status, "user_id", userID)
	}
	m.record(ctx, models.StatusChange{
		Kind:      kind,
		OrderID:   id,
		Status:    status,
		UserID:    userID,
		Succeeded: err == nil,
		Error:     errString(err),
		CreatedAt: m.now(),
	})
	return err
}

// Cancel is SetStatus with the terminal Cancelled status.
func (m *Manager) Cancel(ctx context.Context, kind models.OrderKind, id string, userID int) error {
	return m.SetStatus(ctx, kind, id, models.StatusCancelled, userID)
}

func (m *Manager) record(ctx context.Context, change models.StatusChange) {
	if m.recorder == nil {
		return
	}
	if err := m.recorder.RecordStatusChange(ctx, change); err != nil {
		slog.Warn("Failed to record status change", "order_id", change.OrderID, "error", err)
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
