package trade

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pegi/backend/internal/domain/partner"
	"github.com/pegi/backend/internal/domain/shared"
	"github.com/pegi/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// adminOrderLimit caps the admin listing to the most recent orders
const adminOrderLimit = 500

// maxOrderNumberAttempts bounds regeneration when a generated order
// number collides with an existing one
const maxOrderNumberAttempts = 3

// Config carries the store-level pricing parameters
type Config struct {
	VATRate      decimal.Decimal
	FlatShipping decimal.Decimal
}

// OrderService handles order-related business operations
type OrderService struct {
	orderRepo trade.OrderRepository
	config    Config
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository, config Config, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		orderRepo: orderRepo,
		config:    config,
		logger:    logger,
	}
}

// PlaceOrder validates the request, derives totals from the submitted
// prices and persists the order atomically. Validation failures surface
// before any storage effect.
func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*PlaceOrderResponse, error) {
	buyer, err := partner.NewCustomer(req.Buyer.Name, req.Buyer.Email, req.Buyer.Phone, req.Buyer.Address)
	if err != nil {
		return nil, err
	}

	if len(req.Items) == 0 {
		return nil, shared.NewValidationError("Missing fields")
	}

	items := make([]trade.OrderItem, 0, len(req.Items))
	for _, input := range req.Items {
		item, err := trade.NewOrderItem(input.BookID, input.Qty, decimal.NewFromFloat(input.Price))
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		order, err := trade.NewOrder(trade.NewOrderNumber(time.Now()), items,
			s.config.VATRate, s.config.FlatShipping, req.PaymentMethod)
		if err != nil {
			return nil, err
		}

		if err := s.orderRepo.Place(ctx, buyer, order); err != nil {
			if errors.Is(err, trade.ErrDuplicateOrderNumber) {
				s.logger.Warn("order number collision, regenerating",
					zap.String("orderNumber", order.OrderNumber))
				continue
			}
			return nil, err
		}

		s.logger.Info("order placed",
			zap.String("id", order.ID.String()),
			zap.String("orderNumber", order.OrderNumber),
			zap.String("total", order.Total.String()))

		return &PlaceOrderResponse{
			ID:          order.ID,
			OrderNumber: order.OrderNumber,
			Total:       order.Total.InexactFloat64(),
		}, nil
	}

	return nil, trade.ErrDuplicateOrderNumber
}

// ListOrders returns up to 500 order summaries, most recent first
func (s *OrderService) ListOrders(ctx context.Context) ([]OrderSummaryResponse, error) {
	summaries, err := s.orderRepo.ListRecent(ctx, adminOrderLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderSummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = ToOrderSummaryResponse(&summary)
	}
	return responses, nil
}

// SetStatus overwrites an order's status. Any non-empty string is
// accepted; there are no transition rules.
func (s *OrderService) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	if strings.TrimSpace(status) == "" {
		return shared.NewValidationError("Missing fields")
	}
	return s.orderRepo.UpdateStatus(ctx, id, status)
}
