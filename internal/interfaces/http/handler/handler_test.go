package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pegi/backend/internal/domain/catalog"
	"github.com/pegi/backend/internal/domain/partner"
	"github.com/pegi/backend/internal/domain/trade"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockBookRepository is a mock implementation of catalog.BookRepository
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Search(ctx context.Context, filter catalog.SearchFilter) ([]catalog.Book, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Book), args.Error(1)
}

func (m *MockBookRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookRepository) SaveAll(ctx context.Context, books []catalog.Book) error {
	args := m.Called(ctx, books)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Place(ctx context.Context, buyer *partner.Customer, order *trade.Order) error {
	args := m.Called(ctx, buyer, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindWithCustomer(ctx context.Context, id uuid.UUID) (*trade.Order, *partner.Customer, error) {
	args := m.Called(ctx, id)
	var order *trade.Order
	var customer *partner.Customer
	if args.Get(0) != nil {
		order = args.Get(0).(*trade.Order)
	}
	if args.Get(1) != nil {
		customer = args.Get(1).(*partner.Customer)
	}
	return order, customer, args.Error(2)
}

func (m *MockOrderRepository) FindInvoiceLines(ctx context.Context, orderID uuid.UUID) ([]trade.InvoiceLine, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.InvoiceLine), args.Error(1)
}

func (m *MockOrderRepository) ListRecent(ctx context.Context, limit int) ([]trade.Summary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Summary), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// newAPIEngine builds a gin engine with the given registrars mounted
// under /api, mirroring the production router setup.
func newAPIEngine(registrars ...interface {
	RegisterRoutes(rg *gin.RouterGroup)
}) *gin.Engine {
	engine := gin.New()
	api := engine.Group("/api")
	for _, r := range registrars {
		r.RegisterRoutes(api)
	}
	return engine
}

func performJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}
