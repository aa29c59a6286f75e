package printing

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// StubRenderer is a PDFRenderer for environments without a Chrome
// binary. It emits a minimal single-page PDF that ignores the HTML
// layout but remains a valid document.
type StubRenderer struct{}

// NewStubRenderer creates a new StubRenderer
func NewStubRenderer() *StubRenderer {
	return &StubRenderer{}
}

// Render produces a minimal valid PDF
func (r *StubRenderer) Render(_ context.Context, req *RenderRequest) (*RenderResult, error) {
	if req == nil {
		return nil, NewRenderError(ErrCodeInvalidHTML, "render request is nil", nil)
	}
	if strings.TrimSpace(req.HTML) == "" {
		return nil, NewRenderError(ErrCodeInvalidHTML, "HTML content is empty", nil)
	}

	start := time.Now()

	var buf strings.Builder
	buf.WriteString("%PDF-1.4\n")
	buf.WriteString("1 0 obj<</Type/Catalog/Pages 2 0 R>>endobj\n")
	buf.WriteString("2 0 obj<</Type/Pages/Kids[3 0 R]/Count 1>>endobj\n")
	buf.WriteString("3 0 obj<</Type/Page/Parent 2 0 R/MediaBox[0 0 595 842]>>endobj\n")
	if req.Title != "" {
		buf.WriteString(fmt.Sprintf("%% %s\n", req.Title))
	}
	buf.WriteString("trailer<</Root 1 0 R>>\n%%EOF\n")

	return &RenderResult{
		PDFData:        []byte(buf.String()),
		RenderDuration: time.Since(start),
	}, nil
}

// Close is a no-op for the stub renderer
func (r *StubRenderer) Close() error {
	return nil
}

// Ensure StubRenderer implements PDFRenderer
var _ PDFRenderer = (*StubRenderer)(nil)
