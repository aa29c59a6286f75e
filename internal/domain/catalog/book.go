package catalog

import (
	"strings"

	"github.com/pegi/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Book represents a purchasable title in the catalog.
// It is the aggregate root for catalog operations.
type Book struct {
	shared.BaseEntity
	Title    string
	Author   string
	Category string
	ISBN     string
	Price    decimal.Decimal
	Stock    int
}

// NewBook creates a new book with required fields
func NewBook(title, author, category, isbn string, price decimal.Decimal, stock int) (*Book, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if strings.TrimSpace(author) == "" {
		return nil, shared.NewDomainError("INVALID_AUTHOR", "Author cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	return &Book{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Author:     author,
		Category:   category,
		ISBN:       isbn,
		Price:      price,
		Stock:      stock,
	}, nil
}
