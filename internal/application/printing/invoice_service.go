package printing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pegi/backend/internal/domain/trade"
	infra "github.com/pegi/backend/internal/infrastructure/printing"
	"go.uber.org/zap"
)

// InvoiceService renders order invoices as PDF documents. It is a pure
// read path: rendering an invoice never mutates the order ledger.
type InvoiceService struct {
	orderRepo      trade.OrderRepository
	templateEngine *infra.TemplateEngine
	pdfRenderer    infra.PDFRenderer
	seller         infra.SellerData
	logger         *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	orderRepo trade.OrderRepository,
	templateEngine *infra.TemplateEngine,
	pdfRenderer infra.PDFRenderer,
	seller infra.SellerData,
	logger *zap.Logger,
) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{
		orderRepo:      orderRepo,
		templateEngine: templateEngine,
		pdfRenderer:    pdfRenderer,
		seller:         seller,
		logger:         logger,
	}
}

// RenderInvoice loads the order with its buyer and line items and
// renders the invoice PDF. A missing order surfaces as ErrNotFound.
func (s *InvoiceService) RenderInvoice(ctx context.Context, orderID uuid.UUID) (*InvoiceDocument, error) {
	order, customer, err := s.orderRepo.FindWithCustomer(ctx, orderID)
	if err != nil {
		return nil, err
	}

	lines, err := s.orderRepo.FindInvoiceLines(ctx, orderID)
	if err != nil {
		return nil, err
	}

	data := &infra.InvoiceData{
		Seller: s.seller,
		Buyer: infra.BuyerData{
			Name:    customer.Name,
			Email:   customer.Email,
			Address: customer.Address,
		},
		OrderNumber: order.OrderNumber,
		IssuedAt:    order.CreatedAt,
		Subtotal:    order.Subtotal,
		Tax:         order.Tax,
		Shipping:    order.Shipping,
		Total:       order.Total,
	}
	for _, line := range lines {
		data.Lines = append(data.Lines, infra.InvoiceLineData{
			Title: line.Title,
			Qty:   line.Qty,
			Price: line.Price,
			Total: line.LineTotal(),
		})
	}

	html, err := s.templateEngine.RenderInvoice(data)
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice template: %w", err)
	}

	result, err := s.pdfRenderer.Render(ctx, &infra.RenderRequest{
		HTML:    html,
		Title:   "Faturë " + order.OrderNumber,
		Margins: infra.DefaultInvoiceMargins(),
	})
	if err != nil {
		s.logger.Error("invoice PDF rendering failed",
			zap.Error(err),
			zap.String("orderId", orderID.String()))
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}

	s.logger.Info("invoice rendered",
		zap.String("orderNumber", order.OrderNumber),
		zap.Int("bytes", len(result.PDFData)))

	return &InvoiceDocument{
		PDF:      result.PDFData,
		Filename: fmt.Sprintf("invoice-%s.pdf", order.OrderNumber),
	}, nil
}
