package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfqa/internal/model"
	"pdfqa/internal/repository"
)

func TestDocumentFS_SaveAndFetch(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "uploads") // not pre-created on purpose
	store := NewDocumentFS(dir)

	doc := &model.Document{
		PDFID:     "doc-1",
		Filename:  "report.pdf",
		PageCount: 2,
		Text:      "page one\npage two",
	}

	require.NoError(t, store.Save(ctx, doc))

	// One file per document, named by identifier, flat JSON record.
	raw, err := os.ReadFile(filepath.Join(dir, "doc-1.json"))
	require.NoError(t, err)

	var onDisk map[string]any
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Equal(t, "doc-1", onDisk["pdf_id"])
	assert.Equal(t, "report.pdf", onDisk["filename"])
	assert.Equal(t, float64(2), onDisk["page_count"])
	assert.Equal(t, "page one\npage two", onDisk["text"])

	got, err := store.Fetch(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestDocumentFS_FetchMissing(t *testing.T) {
	store := NewDocumentFS(t.TempDir())

	_, err := store.Fetch(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDocumentFS_CancelledContext(t *testing.T) {
	store := NewDocumentFS(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Save(ctx, &model.Document{PDFID: "doc-1"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = store.Fetch(ctx, "doc-1")
	assert.ErrorIs(t, err, context.Canceled)
}
