package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/pegi/backend/internal/application/catalog"
)

// BookHandler handles catalog API endpoints
type BookHandler struct {
	BaseHandler
	bookService *catalogapp.BookService
}

// NewBookHandler creates a new BookHandler
func NewBookHandler(bookService *catalogapp.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// RegisterRoutes registers catalog routes
func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/books", h.Search)
}

// Search returns the catalog filtered by the optional q, category and
// author query parameters, newest first.
func (h *BookHandler) Search(c *gin.Context) {
	req := catalogapp.SearchBooksRequest{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Author:   c.Query("author"),
	}

	books, err := h.bookService.Search(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, books)
}
