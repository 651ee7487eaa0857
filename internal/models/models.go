package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"_id,omitempty"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image,omitempty"` // URL served by the backend
}

// NewProduct is what the catalog form submits. Image is optional.
type NewProduct struct {
	Category    string
	Name        string
	Price       decimal.Decimal
	Description string
	Image       *Upload
}

type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // Store hashed password
}

// StatusChange is one audited status mutation issued from the order table.
type StatusChange struct {
	ID        int         `json:"id"`
	Kind      OrderKind   `json:"kind"`
	OrderID   string      `json:"order_id"`
	Status    OrderStatus `json:"status"`
	UserID    int         `json:"user_id"`
	Succeeded bool        `json:"succeeded"`
	Error     string      `json:"error,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
