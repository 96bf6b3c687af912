package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pdfqa/internal/model"
	"pdfqa/internal/repository"
)

// DocumentFS implements repository.DocumentStore on local disk, one JSON
// file per document named by its identifier. It is the fallback tier used
// when the cache store is unreachable.
type DocumentFS struct {
	dir string
}

// NewDocumentFS returns a store rooted at dir. The directory is created
// lazily on first save.
func NewDocumentFS(dir string) *DocumentFS {
	return &DocumentFS{dir: dir}
}

func (s *DocumentFS) path(pdfID string) string {
	return filepath.Join(s.dir, pdfID+".json")
}

// Save writes the JSON-encoded record to <dir>/<pdf_id>.json.
func (s *DocumentFS) Save(ctx context.Context, doc *model.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(s.path(doc.PDFID), payload, 0o644); err != nil {
		return fmt.Errorf("write document file: %w", err)
	}
	return nil
}

// Fetch reads a record back from disk; a missing file maps to
// repository.ErrNotFound.
func (s *DocumentFS) Fetch(ctx context.Context, pdfID string) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(s.path(pdfID))
	if os.IsNotExist(err) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read document file: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", pdfID, err)
	}
	return &doc, nil
}
