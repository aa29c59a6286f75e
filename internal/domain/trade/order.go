package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/pegi/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StatusNew is the initial status of every order. Status is otherwise a
// free-form string overwritten by operators without transition rules.
const StatusNew = "new"

// Payment methods and derived payment statuses
const (
	PaymentMethodCard = "card"

	PaymentStatusPending = "pending"
	PaymentStatusCOD     = "cod"
)

// OrderItem is one book/quantity/price line within an order.
// Price is the unit price snapshot taken at order time, so historical
// orders are immune to later catalog price changes.
type OrderItem struct {
	ID      uuid.UUID
	OrderID uuid.UUID
	BookID  uuid.UUID
	Qty     int
	Price   decimal.Decimal
}

// NewOrderItem creates an order line item with a price snapshot
func NewOrderItem(bookID uuid.UUID, qty int, price decimal.Decimal) (*OrderItem, error) {
	if bookID == uuid.Nil {
		return nil, shared.NewValidationError("Item book id is required")
	}
	if qty <= 0 {
		return nil, shared.NewValidationError("Item quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewValidationError("Item price cannot be negative")
	}
	return &OrderItem{
		ID:     uuid.New(),
		BookID: bookID,
		Qty:    qty,
		Price:  price,
	}, nil
}

// LineTotal returns price multiplied by quantity
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// Order is the aggregate root of the order ledger. Subtotal, tax,
// shipping and total are derived at placement and never recomputed.
type Order struct {
	shared.BaseEntity
	OrderNumber   string
	CustomerID    uuid.UUID
	Status        string
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Shipping      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	PaymentStatus string
	Items         []OrderItem
}

// NewOrder creates an order in status "new" with totals derived from the
// items and the given tax/shipping amounts. The payment status follows
// the payment method: "pending" for card, "cod" otherwise.
func NewOrder(orderNumber string, items []OrderItem, taxRate, shipping decimal.Decimal, paymentMethod string) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewValidationError("Order number is required")
	}
	if len(items) == 0 {
		return nil, shared.NewValidationError("Order must contain at least one item")
	}
	if paymentMethod == "" {
		paymentMethod = PaymentMethodCard
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	tax := subtotal.Mul(taxRate)

	paymentStatus := PaymentStatusCOD
	if paymentMethod == PaymentMethodCard {
		paymentStatus = PaymentStatusPending
	}

	order := &Order{
		BaseEntity:    shared.NewBaseEntity(),
		OrderNumber:   orderNumber,
		Status:        StatusNew,
		Subtotal:      subtotal,
		Tax:           tax,
		Shipping:      shipping,
		Total:         subtotal.Add(tax).Add(shipping),
		PaymentMethod: paymentMethod,
		PaymentStatus: paymentStatus,
		Items:         items,
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	return order, nil
}

// Summary is an order joined with buyer fields for operator listings
type Summary struct {
	ID          uuid.UUID
	OrderNumber string
	CreatedAt   time.Time
	Status      string
	Total       decimal.Decimal
	BuyerName   string
	BuyerEmail  string
	BuyerAddr   string
}

// InvoiceLine is an order item joined with its book title
type InvoiceLine struct {
	Title string
	Qty   int
	Price decimal.Decimal
}

// LineTotal returns price multiplied by quantity
func (l *InvoiceLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}
