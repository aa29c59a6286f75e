package printing

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoiceData() *InvoiceData {
	return &InvoiceData{
		Seller: SellerData{
			Name:    "Botime Pegi",
			Address: "Rruga e Durrësit, Tirana",
			Email:   "info@botimepegi.al",
			Phone:   "+355 4 240 0000",
		},
		Buyer: BuyerData{
			Name:    "Arta Dema",
			Email:   "arta@example.com",
			Address: "Rruga e Elbasanit, Tirana",
		},
		OrderNumber: "PEGI-2026-AB12",
		IssuedAt:    time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC),
		Lines: []InvoiceLineData{
			{Title: "Kronikë në gur", Qty: 2, Price: decimal.NewFromInt(10), Total: decimal.NewFromInt(20)},
		},
		Subtotal: decimal.NewFromInt(20),
		Tax:      decimal.NewFromFloat(3.6),
		Shipping: decimal.NewFromFloat(2.5),
		Total:    decimal.NewFromFloat(26.1),
	}
}

func TestTemplateEngine_RenderInvoice(t *testing.T) {
	engine, err := NewTemplateEngine("€")
	require.NoError(t, err)

	t.Run("renders invoice with all sections", func(t *testing.T) {
		html, err := engine.RenderInvoice(sampleInvoiceData())

		require.NoError(t, err)
		assert.Contains(t, html, "PEGI-2026-AB12")
		assert.Contains(t, html, "Botime Pegi")
		assert.Contains(t, html, "Arta Dema")
		assert.Contains(t, html, "Kronikë në gur")
		assert.Contains(t, html, "Nën-totali")
		assert.Contains(t, html, "TVSH")
		assert.Contains(t, html, "Dërgesa")
		assert.Contains(t, html, "Totali")
	})

	t.Run("formats money with two decimals and currency", func(t *testing.T) {
		html, err := engine.RenderInvoice(sampleInvoiceData())

		require.NoError(t, err)
		assert.Contains(t, html, "20.00€")
		assert.Contains(t, html, "3.60€")
		assert.Contains(t, html, "2.50€")
		assert.Contains(t, html, "26.10€")
	})

	t.Run("formats the issue date day first", func(t *testing.T) {
		html, err := engine.RenderInvoice(sampleInvoiceData())

		require.NoError(t, err)
		assert.Contains(t, html, "31.08.2026")
	})

	t.Run("escapes html in buyer fields", func(t *testing.T) {
		data := sampleInvoiceData()
		data.Buyer.Name = "<script>alert(1)</script>"

		html, err := engine.RenderInvoice(data)

		require.NoError(t, err)
		assert.NotContains(t, html, "<script>alert(1)</script>")
	})

	t.Run("omits empty optional seller fields", func(t *testing.T) {
		data := sampleInvoiceData()
		data.Seller.Phone = ""
		data.Seller.FiscalID = ""

		html, err := engine.RenderInvoice(data)

		require.NoError(t, err)
		assert.NotContains(t, html, "NIPT")
	})
}

func TestStubRenderer(t *testing.T) {
	renderer := NewStubRenderer()
	defer renderer.Close()

	t.Run("produces a pdf document", func(t *testing.T) {
		result, err := renderer.Render(context.Background(), &RenderRequest{HTML: "<p>faturë</p>"})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(result.PDFData), "%PDF-"))
	})

	t.Run("rejects empty html", func(t *testing.T) {
		_, err := renderer.Render(context.Background(), &RenderRequest{HTML: "  "})
		assert.Error(t, err)
	})
}
