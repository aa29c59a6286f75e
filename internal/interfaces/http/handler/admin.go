package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	printingapp "github.com/pegi/backend/internal/application/printing"
	tradeapp "github.com/pegi/backend/internal/application/trade"
)

// AdminHandler handles the back-office order endpoints
type AdminHandler struct {
	BaseHandler
	orderService   *tradeapp.OrderService
	invoiceService *printingapp.InvoiceService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(orderService *tradeapp.OrderService, invoiceService *printingapp.InvoiceService) *AdminHandler {
	return &AdminHandler{
		orderService:   orderService,
		invoiceService: invoiceService,
	}
}

// RegisterRoutes registers admin routes
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.GET("/orders", h.ListOrders)
	admin.PUT("/orders/:id/status", h.UpdateStatus)
	admin.GET("/orders/:id/invoice", h.Invoice)
}

// UpdateStatusRequest is the body of a status change
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListOrders returns the most recent orders with buyer details
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, orders)
}

// UpdateStatus sets the workflow status of an order
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Missing fields")
		return
	}

	if err := h.orderService.SetStatus(c.Request.Context(), orderID, req.Status); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Invoice renders the PDF invoice of an order and streams it inline
func (h *AdminHandler) Invoice(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order id")
		return
	}

	doc, err := h.invoiceService.RenderInvoice(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.PDF)
}
