package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"pdfqa/internal/model"
)

// ErrNotFound is returned by DocumentStore.Fetch when a store tier has no
// record for the requested identifier.
var ErrNotFound = errors.New("document not found")

// DocumentStore defines persistence for document records in one storage tier.
// The two-tier fallback (cache store, then filesystem) is composed by the
// service layer, so each implementation reports only its own outcome.
type DocumentStore interface {
	// Save persists a document record.
	Save(ctx context.Context, doc *model.Document) error

	// Fetch returns the record for the given identifier, or ErrNotFound.
	Fetch(ctx context.Context, pdfID string) (*model.Document, error)
}

// CacheResult is the explicit outcome of an answer-cache lookup. Backend
// unavailability is its own state rather than an error so calling code can
// treat it as a miss by a deliberate branch.
type CacheResult int

const (
	CacheHit CacheResult = iota
	CacheMiss
	CacheUnavailable
)

// String returns the metric label for the lookup outcome.
func (r CacheResult) String() string {
	switch r {
	case CacheHit:
		return "hit"
	case CacheMiss:
		return "miss"
	default:
		return "unavailable"
	}
}

// AnswerCache stores generated answers keyed by (document, question).
// Every operation is best-effort: implementations must never let cache-layer
// failures escalate beyond their return values. Cached answers carry no
// expiry; eviction is delegated entirely to the backing store's own memory
// policy.
type AnswerCache interface {
	// GetAnswer looks up the cached answer for the exact question text.
	// The answer string is meaningful only when the result is CacheHit.
	GetAnswer(ctx context.Context, pdfID, question string) (string, CacheResult)

	// PutAnswer caches a generated answer. The returned error is for
	// logging only; callers must not fail the request on it.
	PutAnswer(ctx context.Context, pdfID, question, answer string) error
}

// AnswerKey derives the composite cache key for a (document, question) pair:
// the document identifier joined with a hex-encoded SHA-256 fingerprint of
// the raw question bytes. Byte-identical questions always share a key.
func AnswerKey(pdfID, question string) string {
	sum := sha256.Sum256([]byte(question))
	return pdfID + ":" + hex.EncodeToString(sum[:])
}
