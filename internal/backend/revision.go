package backend

import (
	"fmt"

	"github.com/Pranav-019/spices-admin-panel/internal/models"
)

// Revision selects between the two generations of backend paths seen in
// production. v1 has no category listing and updates orders at /:id;
// v2 lists categories and updates at /:id/status.
type Revision string

const (
	RevisionV1 Revision = "v1"
	RevisionV2 Revision = "v2"
)

func ParseRevision(s string) (Revision, error) {
	r := Revision(s)
	if !r.valid() {
		return "", fmt.Errorf("unknown backend revision %q (want v1 or v2)", s)
	}
	return r, nil
}

func (r Revision) valid() bool {
	return r == RevisionV1 || r == RevisionV2
}

// HasCategories reports whether GET /api/products/categories exists.
func (r Revision) HasCategories() bool {
	return r == RevisionV2
}

// CustomOrdersLabel is how the second order class is called in this revision.
func (r Revision) CustomOrdersLabel() string {
	if r == RevisionV1 {
		return "Custom Orders"
	}
	return "Pre-booking Orders"
}

func (r Revision) ordersCollectionPath(kind models.OrderKind) string {
	if kind == models.KindProduct {
		return "/api/productorder"
	}
	return "/api/orders"
}

func (r Revision) orderStatusPath(kind models.OrderKind, id string) string {
	p := r.ordersCollectionPath(kind) + "/" + id
	if r == RevisionV2 {
		p += "/status"
	}
	return p
}
