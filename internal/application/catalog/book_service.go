package catalog

import (
	"context"

	"github.com/pegi/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// BookService handles catalog-related business operations
type BookService struct {
	bookRepo catalog.BookRepository
	logger   *zap.Logger
}

// NewBookService creates a new BookService
func NewBookService(bookRepo catalog.BookRepository, logger *zap.Logger) *BookService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookService{
		bookRepo: bookRepo,
		logger:   logger,
	}
}

// Search returns books matching the request filters, newest first
func (s *BookService) Search(ctx context.Context, req SearchBooksRequest) ([]BookResponse, error) {
	books, err := s.bookRepo.Search(ctx, catalog.SearchFilter{
		Query:    req.Query,
		Category: req.Category,
		Author:   req.Author,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]BookResponse, len(books))
	for i, book := range books {
		responses[i] = ToBookResponse(&book)
	}
	return responses, nil
}

// Seed populates the catalog with the default title list when the
// books table is empty. Returns the number of seeded books.
func (s *BookService) Seed(ctx context.Context) (int, error) {
	count, err := s.bookRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	books, err := defaultCatalog()
	if err != nil {
		return 0, err
	}

	if err := s.bookRepo.SaveAll(ctx, books); err != nil {
		return 0, err
	}

	s.logger.Info("catalog seeded", zap.Int("books", len(books)))
	return len(books), nil
}
