package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Result holds the output of a successful PDF text extraction.
type Result struct {
	Text      string
	PageCount int
}

// Extractor is the narrow contract the service consumes: raw PDF bytes in,
// newline-joined page text and a page count out.
type Extractor interface {
	Extract(data []byte) (*Result, error)
}

// PDFExtractor implements Extractor on top of github.com/ledongthuc/pdf.
type PDFExtractor struct{}

func (PDFExtractor) Extract(data []byte) (*Result, error) {
	return PDF(data)
}

// PDF extracts the plain text of every page in the given PDF payload,
// newline-joined in page order. Any parse failure, on the document or on a
// single page, fails the whole extraction; there is no partial recovery.
func PDF(data []byte) (*Result, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	numPages := reader.NumPage()
	var sb strings.Builder
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			return nil, fmt.Errorf("read pdf page %d: missing page object", i)
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("read pdf page %d: %w", i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return &Result{
		Text:      strings.TrimSpace(sb.String()),
		PageCount: numPages,
	}, nil
}
