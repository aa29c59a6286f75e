package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/pegi/backend/internal/domain/partner"
	"github.com/pegi/backend/internal/domain/shared"
)

// ErrDuplicateOrderNumber is returned by Place when the generated order
// number collides with an existing one. The caller regenerates and retries.
var ErrDuplicateOrderNumber = shared.NewDomainError("DUPLICATE_ORDER_NUMBER", "Order number already exists")

// OrderRepository defines persistence operations for the order ledger
type OrderRepository interface {
	// Place atomically upserts the buyer by email, persists the order with
	// its items and decrements book stock (floored at zero). On success the
	// surviving customer identity is written back into buyer and order.
	// A mid-sequence failure leaves no partial order behind.
	Place(ctx context.Context, buyer *partner.Customer, order *Order) error

	// FindWithCustomer returns an order joined with its buyer
	FindWithCustomer(ctx context.Context, id uuid.UUID) (*Order, *partner.Customer, error)

	// FindInvoiceLines returns the order's items joined with book titles
	FindInvoiceLines(ctx context.Context, orderID uuid.UUID) ([]InvoiceLine, error)

	// ListRecent returns up to limit order summaries, most recent first
	ListRecent(ctx context.Context, limit int) ([]Summary, error)

	// UpdateStatus unconditionally overwrites the order's status
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
