package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/pegi/backend/internal/domain/trade"
)

// BuyerInput is the buyer block of an incoming order
type BuyerInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderItemInput is a single requested line of an incoming order.
// ID references the ordered book.
type OrderItemInput struct {
	BookID uuid.UUID `json:"id"`
	Qty    int       `json:"qty"`
	Price  float64   `json:"price"`
}

// PlaceOrderRequest carries everything needed to place an order
type PlaceOrderRequest struct {
	Buyer         BuyerInput       `json:"buyer"`
	Items         []OrderItemInput `json:"items"`
	PaymentMethod string           `json:"payment_method"`
}

// PlaceOrderResponse acknowledges a placed order
type PlaceOrderResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	Total       float64   `json:"total"`
}

// OrderSummaryResponse is one row of the admin order listing
type OrderSummaryResponse struct {
	ID           uuid.UUID `json:"id"`
	OrderNumber  string    `json:"order_number"`
	CreatedAt    time.Time `json:"created_at"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	BuyerName    string    `json:"buyer_name"`
	BuyerEmail   string    `json:"buyer_email"`
	BuyerAddress string    `json:"buyer_address"`
}

// ToOrderSummaryResponse converts a domain Summary to its API representation
func ToOrderSummaryResponse(s *trade.Summary) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:           s.ID,
		OrderNumber:  s.OrderNumber,
		CreatedAt:    s.CreatedAt,
		Status:       s.Status,
		Total:        s.Total.InexactFloat64(),
		BuyerName:    s.BuyerName,
		BuyerEmail:   s.BuyerEmail,
		BuyerAddress: s.BuyerAddr,
	}
}
