package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Pranav-019/spices-admin-panel/internal/models"
	"github.com/Pranav-019/spices-admin-panel/internal/orders"
)

const (
	statusUpdatedMessage = "Order status updated successfully!"
	statusFailedMessage  = "Failed to update status"
)

type OrderHandler struct {
	Base
	Orders   *orders.Manager
	PageSize int
}

// List loads both collections and renders the selected tab, paginated.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind := models.OrderKind(q.Get("tab"))
	if !kind.Valid() {
		kind = models.KindProduct
	}
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	limit = orders.NormalizePageSize(limit, h.PageSize)

	board := h.Orders.Load(r.Context())
	active := board.Collection(kind)
	totalHeader := "Total Amount"
	if kind == models.KindCustom {
		totalHeader = "Amount"
	}

	h.render(w, r, http.StatusOK, "orders.html", map[string]interface{}{
		"Title":       "Orders",
		"Board":       board,
		"Tabs":        board.Collections(),
		"Active":      active,
		"Page":        orders.Paginate(active.Rows, page, limit),
		"PageSizes":   orders.PageSizes,
		"Statuses":    models.OrderStatuses(),
		"TotalHeader": totalHeader,
	})
}

// UpdateStatus sets the posted status and redirects back to the table,
// whose GET refetches both collections whatever the outcome.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	kind := models.OrderKind(r.FormValue("kind"))
	status := models.OrderStatus(r.FormValue("status"))
	err := h.Orders.SetStatus(r.Context(), kind, r.FormValue("id"), status, h.userID(r))
	h.finishMutation(w, r, kind, err)
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	kind := models.OrderKind(r.FormValue("kind"))
	err := h.Orders.Cancel(r.Context(), kind, r.FormValue("id"), h.userID(r))
	h.finishMutation(w, r, kind, err)
}

func (h *OrderHandler) finishMutation(w http.ResponseWriter, r *http.Request, kind models.OrderKind, err error) {
	if err != nil {
		// Backend failures are logged by the manager; only rejections are logged here.
		if errors.Is(err, orders.ErrInvalidStatus) || errors.Is(err, orders.ErrUnknownKind) || errors.Is(err, orders.ErrMissingID) {
			slog.Warn("Rejected status change", "error", err)
		}
		h.flash(w, r, "error", statusFailedMessage)
	} else {
		h.flash(w, r, "success", statusUpdatedMessage)
	}

	http.Redirect(w, r, ordersTarget(r, kind), http.StatusSeeOther)
}

// ordersTarget is the table view the mutation came from: its tab, page and
// page size. Values that are not positive integers are dropped.
func ordersTarget(r *http.Request, kind models.OrderKind) string {
	q := url.Values{}
	if kind.Valid() {
		q.Set("tab", string(kind))
	}
	for _, key := range []string{"page", "limit"} {
		if n, err := strconv.Atoi(r.FormValue(key)); err == nil && n > 0 {
			q.Set(key, strconv.Itoa(n))
		}
	}
	if len(q) == 0 {
		return "/admin/orders"
	}
	return "/admin/orders?" + q.Encode()
}
