package models

import (
	"github.com/pegi/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// BookModel is the persistence model for books
type BookModel struct {
	BaseModel
	Title    string          `gorm:"type:varchar(300);not null"`
	Author   string          `gorm:"type:varchar(200);not null"`
	Category string          `gorm:"type:varchar(100)"`
	ISBN     string          `gorm:"type:varchar(20)"`
	Price    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Stock    int             `gorm:"not null;default:0"`
}

// TableName specifies the table name for BookModel
func (BookModel) TableName() string {
	return "books"
}

// ToDomain converts BookModel to domain Book
func (m *BookModel) ToDomain() *catalog.Book {
	return &catalog.Book{
		BaseEntity: m.BaseModel.ToDomain(),
		Title:      m.Title,
		Author:     m.Author,
		Category:   m.Category,
		ISBN:       m.ISBN,
		Price:      m.Price,
		Stock:      m.Stock,
	}
}

// BookModelFromDomain converts domain Book to BookModel
func BookModelFromDomain(b *catalog.Book) *BookModel {
	model := &BookModel{
		Title:    b.Title,
		Author:   b.Author,
		Category: b.Category,
		ISBN:     b.ISBN,
		Price:    b.Price,
		Stock:    b.Stock,
	}
	model.FromDomainBaseEntity(b.BaseEntity)
	return model
}
