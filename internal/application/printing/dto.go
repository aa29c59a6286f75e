package printing

// InvoiceDocument is a rendered invoice ready to be served
type InvoiceDocument struct {
	// PDF is the raw document content
	PDF []byte
	// Filename is the suggested download name, derived from the order number
	Filename string
}
