package catalog

import "context"

// SearchFilter narrows a catalog search. Query is a case-insensitive
// substring match across title, author, category and ISBN; Category and
// Author are exact-match filters applied only when non-empty.
type SearchFilter struct {
	Query    string
	Category string
	Author   string
}

// BookRepository defines persistence operations for books
type BookRepository interface {
	// Search returns books matching the filter, most recently added first
	Search(ctx context.Context, filter SearchFilter) ([]Book, error)
	// Count returns the total number of books in the catalog
	Count(ctx context.Context) (int64, error)
	// SaveAll persists a batch of books
	SaveAll(ctx context.Context, books []Book) error
}
