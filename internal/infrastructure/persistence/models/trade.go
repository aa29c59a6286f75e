package models

import (
	"github.com/google/uuid"
	"github.com/pegi/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for orders
type OrderModel struct {
	BaseModel
	OrderNumber   string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status        string          `gorm:"type:varchar(30);not null"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Tax           decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Shipping      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Total         decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(30);not null"`
	PaymentStatus string          `gorm:"type:varchar(30);not null"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName specifies the table name for OrderModel
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the persistence model for order line items
type OrderItemModel struct {
	ID      uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	BookID  uuid.UUID       `gorm:"type:uuid;not null"`
	Qty     int             `gorm:"not null"`
	Price   decimal.Decimal `gorm:"type:numeric(18,2);not null"`
}

// TableName specifies the table name for OrderItemModel
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts OrderModel to domain Order
func (m *OrderModel) ToDomain() *trade.Order {
	items := make([]trade.OrderItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = *item.ToDomain()
	}
	return &trade.Order{
		BaseEntity:    m.BaseModel.ToDomain(),
		OrderNumber:   m.OrderNumber,
		CustomerID:    m.CustomerID,
		Status:        m.Status,
		Subtotal:      m.Subtotal,
		Tax:           m.Tax,
		Shipping:      m.Shipping,
		Total:         m.Total,
		PaymentMethod: m.PaymentMethod,
		PaymentStatus: m.PaymentStatus,
		Items:         items,
	}
}

// OrderModelFromDomain converts domain Order to OrderModel
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = *OrderItemModelFromDomain(&item)
	}
	model := &OrderModel{
		OrderNumber:   o.OrderNumber,
		CustomerID:    o.CustomerID,
		Status:        o.Status,
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		Shipping:      o.Shipping,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		Items:         items,
	}
	model.FromDomainBaseEntity(o.BaseEntity)
	return model
}

// ToDomain converts OrderItemModel to domain OrderItem
func (m *OrderItemModel) ToDomain() *trade.OrderItem {
	return &trade.OrderItem{
		ID:      m.ID,
		OrderID: m.OrderID,
		BookID:  m.BookID,
		Qty:     m.Qty,
		Price:   m.Price,
	}
}

// OrderItemModelFromDomain converts domain OrderItem to OrderItemModel
func OrderItemModelFromDomain(i *trade.OrderItem) *OrderItemModel {
	return &OrderItemModel{
		ID:      i.ID,
		OrderID: i.OrderID,
		BookID:  i.BookID,
		Qty:     i.Qty,
		Price:   i.Price,
	}
}
