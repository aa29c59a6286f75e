package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/pegi/backend/internal/domain/catalog"
)

// SearchBooksRequest carries the catalog search filters
type SearchBooksRequest struct {
	Query    string
	Category string
	Author   string
}

// BookResponse is the API representation of a book
type BookResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	ISBN      string    `json:"isbn,omitempty"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
}

// ToBookResponse converts a domain Book to its API representation
func ToBookResponse(b *catalog.Book) BookResponse {
	return BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Category:  b.Category,
		ISBN:      b.ISBN,
		Price:     b.Price.InexactFloat64(),
		Stock:     b.Stock,
		CreatedAt: b.CreatedAt,
	}
}
