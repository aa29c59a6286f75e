package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pegi/backend/internal/domain/partner"
	"github.com/pegi/backend/internal/domain/shared"
	"github.com/pegi/backend/internal/domain/trade"
	"github.com/pegi/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Place persists an order atomically: the buyer is upserted by email,
// the order and its items are inserted, and stock is decremented for
// every line, floored at zero. Any failure rolls back the whole batch.
// A collision on the order number surfaces as ErrDuplicateOrderNumber.
func (r *GormOrderRepository) Place(ctx context.Context, buyer *partner.Customer, order *trade.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customerModel := models.CustomerModelFromDomain(buyer)
		if err := tx.Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "phone", "address", "updated_at"}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "id"}}},
		).Create(customerModel).Error; err != nil {
			return err
		}

		// The returning clause yields the surviving row's id, which
		// differs from the generated one when the email already existed.
		buyer.ID = customerModel.ID
		order.CustomerID = customerModel.ID

		orderModel := models.OrderModelFromDomain(order)
		if err := tx.Create(orderModel).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return trade.ErrDuplicateOrderNumber
			}
			return err
		}

		for _, item := range order.Items {
			if err := tx.Model(&models.BookModel{}).
				Where("id = ?", item.BookID).
				Update("stock", gorm.Expr("GREATEST(stock - ?, 0)", item.Qty)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FindWithCustomer returns an order with its items, joined with its buyer
func (r *GormOrderRepository) FindWithCustomer(ctx context.Context, id uuid.UUID) (*trade.Order, *partner.Customer, error) {
	var orderModel models.OrderModel
	if err := r.db.WithContext(ctx).Preload("Items").First(&orderModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, shared.ErrNotFound
		}
		return nil, nil, err
	}

	var customerModel models.CustomerModel
	if err := r.db.WithContext(ctx).First(&customerModel, "id = ?", orderModel.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, shared.ErrNotFound
		}
		return nil, nil, err
	}

	return orderModel.ToDomain(), customerModel.ToDomain(), nil
}

// FindInvoiceLines returns the order's items joined with book titles
func (r *GormOrderRepository) FindInvoiceLines(ctx context.Context, orderID uuid.UUID) ([]trade.InvoiceLine, error) {
	var lines []trade.InvoiceLine
	if err := r.db.WithContext(ctx).
		Table("order_items").
		Select("books.title AS title, order_items.qty AS qty, order_items.price AS price").
		Joins("JOIN books ON books.id = order_items.book_id").
		Where("order_items.order_id = ?", orderID).
		Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// ListRecent returns up to limit order summaries, most recent first
func (r *GormOrderRepository) ListRecent(ctx context.Context, limit int) ([]trade.Summary, error) {
	var summaries []trade.Summary
	if err := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.id, orders.order_number, orders.created_at, orders.status, orders.total, " +
			"customers.name AS buyer_name, customers.email AS buyer_email, customers.address AS buyer_addr").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Order("orders.created_at DESC").
		Limit(limit).
		Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// UpdateStatus unconditionally overwrites the order's status
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)
