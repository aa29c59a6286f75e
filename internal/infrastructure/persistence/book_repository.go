package persistence

import (
	"context"
	"strings"

	"github.com/pegi/backend/internal/domain/catalog"
	"github.com/pegi/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormBookRepository implements BookRepository using GORM
type GormBookRepository struct {
	db *gorm.DB
}

// NewGormBookRepository creates a new GormBookRepository
func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// Search returns books matching the filter, newest first.
// The free-text query matches a concatenation of title, author,
// category and ISBN, case-insensitively. Category and author
// filters match exactly.
func (r *GormBookRepository) Search(ctx context.Context, filter catalog.SearchFilter) ([]catalog.Book, error) {
	query := r.db.WithContext(ctx).Model(&models.BookModel{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(title || ' ' || author || ' ' || category || ' ' || COALESCE(isbn, '')) LIKE ?",
			pattern,
		)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Author != "" {
		query = query.Where("author = ?", filter.Author)
	}

	var bookModels []models.BookModel
	if err := query.Order("created_at DESC").Find(&bookModels).Error; err != nil {
		return nil, err
	}

	books := make([]catalog.Book, len(bookModels))
	for i, model := range bookModels {
		books[i] = *model.ToDomain()
	}
	return books, nil
}

// Count counts all books
func (r *GormBookRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BookModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SaveAll persists a batch of books
func (r *GormBookRepository) SaveAll(ctx context.Context, books []catalog.Book) error {
	if len(books) == 0 {
		return nil
	}
	bookModels := make([]*models.BookModel, len(books))
	for i := range books {
		bookModels[i] = models.BookModelFromDomain(&books[i])
	}
	return r.db.WithContext(ctx).Create(bookModels).Error
}

// Ensure GormBookRepository implements BookRepository
var _ catalog.BookRepository = (*GormBookRepository)(nil)
