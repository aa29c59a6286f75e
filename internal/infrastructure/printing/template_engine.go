package printing

import (
	"bytes"
	"html/template"
	"time"

	"github.com/shopspring/decimal"
)

// SellerData identifies the issuing bookstore on the invoice
type SellerData struct {
	Name     string
	Address  string
	Email    string
	Phone    string
	FiscalID string
}

// BuyerData identifies the customer on the invoice
type BuyerData struct {
	Name    string
	Email   string
	Address string
}

// InvoiceLineData is a single rendered invoice row
type InvoiceLineData struct {
	Title string
	Qty   int
	Price decimal.Decimal
	Total decimal.Decimal
}

// InvoiceData carries everything the invoice template needs
type InvoiceData struct {
	Seller      SellerData
	Buyer       BuyerData
	OrderNumber string
	IssuedAt    time.Time
	Lines       []InvoiceLineData
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Shipping    decimal.Decimal
	Total       decimal.Decimal
}

// TemplateEngine renders invoice HTML from a parsed template
type TemplateEngine struct {
	tmpl *template.Template
}

// NewTemplateEngine parses the invoice template with the given currency
// symbol baked into the money formatter.
func NewTemplateEngine(currency string) (*TemplateEngine, error) {
	funcMap := template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return d.StringFixed(2) + currency
		},
		"date": func(t time.Time) string {
			return t.Format("02.01.2006")
		},
	}

	tmpl, err := template.New("invoice").Funcs(funcMap).Parse(invoiceTemplate)
	if err != nil {
		return nil, err
	}
	return &TemplateEngine{tmpl: tmpl}, nil
}

// RenderInvoice renders the invoice HTML for the given data
func (e *TemplateEngine) RenderInvoice(data *InvoiceData) (string, error) {
	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
