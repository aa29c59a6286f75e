package trade

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewOrderItem(t *testing.T) {
	t.Run("create item successfully", func(t *testing.T) {
		bookID := uuid.New()
		item, err := NewOrderItem(bookID, 2, decimal.NewFromInt(10))

		assert.NoError(t, err)
		assert.Equal(t, bookID, item.BookID)
		assert.Equal(t, 2, item.Qty)
		assert.True(t, item.LineTotal().Equal(decimal.NewFromInt(20)))
	})

	t.Run("reject nil book id", func(t *testing.T) {
		_, err := NewOrderItem(uuid.Nil, 1, decimal.NewFromInt(10))
		assert.Error(t, err)
	})

	t.Run("reject non-positive quantity", func(t *testing.T) {
		_, err := NewOrderItem(uuid.New(), 0, decimal.NewFromInt(10))
		assert.Error(t, err)
	})

	t.Run("reject negative price", func(t *testing.T) {
		_, err := NewOrderItem(uuid.New(), 1, decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	vatRate := decimal.NewFromFloat(0.18)
	shipping := decimal.NewFromFloat(2.5)

	t.Run("derive totals from items", func(t *testing.T) {
		item, _ := NewOrderItem(uuid.New(), 2, decimal.NewFromInt(10))
		order, err := NewOrder("PEGI-2026-AB12", []OrderItem{*item}, vatRate, shipping, PaymentMethodCard)

		assert.NoError(t, err)
		assert.Equal(t, StatusNew, order.Status)
		assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(20)))
		assert.True(t, order.Tax.Equal(decimal.NewFromFloat(3.6)))
		assert.True(t, order.Shipping.Equal(shipping))
		assert.True(t, order.Total.Equal(decimal.NewFromFloat(26.1)))
	})

	t.Run("payment status follows method", func(t *testing.T) {
		item, _ := NewOrderItem(uuid.New(), 1, decimal.NewFromInt(5))

		card, _ := NewOrder("PEGI-2026-AB12", []OrderItem{*item}, vatRate, shipping, "card")
		assert.Equal(t, PaymentStatusPending, card.PaymentStatus)

		cash, _ := NewOrder("PEGI-2026-AB13", []OrderItem{*item}, vatRate, shipping, "cash")
		assert.Equal(t, PaymentStatusCOD, cash.PaymentStatus)
	})

	t.Run("default payment method is card", func(t *testing.T) {
		item, _ := NewOrderItem(uuid.New(), 1, decimal.NewFromInt(5))
		order, err := NewOrder("PEGI-2026-AB14", []OrderItem{*item}, vatRate, shipping, "")

		assert.NoError(t, err)
		assert.Equal(t, PaymentMethodCard, order.PaymentMethod)
		assert.Equal(t, PaymentStatusPending, order.PaymentStatus)
	})

	t.Run("reject empty items", func(t *testing.T) {
		_, err := NewOrder("PEGI-2026-AB15", nil, vatRate, shipping, "card")
		assert.Error(t, err)
	})

	t.Run("items carry the order id", func(t *testing.T) {
		item, _ := NewOrderItem(uuid.New(), 1, decimal.NewFromInt(5))
		order, _ := NewOrder("PEGI-2026-AB16", []OrderItem{*item}, vatRate, shipping, "card")

		assert.Equal(t, order.ID, order.Items[0].OrderID)
	})
}

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^PEGI-2026-[0-9A-Z]{4}$`)

	for i := 0; i < 50; i++ {
		number := NewOrderNumber(now)
		assert.Regexp(t, pattern, number)
	}
}
