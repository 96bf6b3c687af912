package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"pdfqa/internal/model"
	"pdfqa/internal/repository"
)

// DocumentRedis implements repository.DocumentStore and
// repository.AnswerCache on a Redis-compatible key-value store.
//
// Document records are stored as JSON under their identifier; answers under
// the composite key from repository.AnswerKey. Neither carries a TTL at this
// layer: eviction is entirely delegated to the store's own policy.
type DocumentRedis struct {
	client redis.Cmdable
}

// NewDocumentRedis wraps an already-connected client.
func NewDocumentRedis(client redis.Cmdable) *DocumentRedis {
	return &DocumentRedis{client: client}
}

// Save writes the JSON-encoded record under the document identifier.
// A store failure is returned to the caller, which decides whether the
// filesystem tier absorbed the write.
func (r *DocumentRedis) Save(ctx context.Context, doc *model.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := r.client.Set(ctx, doc.PDFID, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Fetch reads a record by identifier. A missing key maps to
// repository.ErrNotFound; connectivity failures are returned as-is so the
// caller can distinguish "absent here" from "store down" if it needs to.
func (r *DocumentRedis) Fetch(ctx context.Context, pdfID string) (*model.Document, error) {
	payload, err := r.client.Get(ctx, pdfID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", pdfID, err)
	}
	return &doc, nil
}

// GetAnswer looks up the cached answer for the exact question text.
// Store unreachability yields CacheUnavailable, never an error.
func (r *DocumentRedis) GetAnswer(ctx context.Context, pdfID, question string) (string, repository.CacheResult) {
	answer, err := r.client.Get(ctx, repository.AnswerKey(pdfID, question)).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.CacheMiss
	}
	if err != nil {
		return "", repository.CacheUnavailable
	}
	return answer, repository.CacheHit
}

// PutAnswer caches the raw answer text. No TTL is set.
func (r *DocumentRedis) PutAnswer(ctx context.Context, pdfID, question, answer string) error {
	if err := r.client.Set(ctx, repository.AnswerKey(pdfID, question), answer, 0).Err(); err != nil {
		return fmt.Errorf("redis set answer: %w", err)
	}
	return nil
}
