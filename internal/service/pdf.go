package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"pdfqa/internal/extract"
	"pdfqa/internal/llm"
	"pdfqa/internal/model"
	"pdfqa/internal/repository"
	"pdfqa/internal/storage"
)

var (
	ErrEmptyUpload      = errors.New("upload is empty")
	ErrExtractionFailed = errors.New("pdf extraction failed")
)

// PDFService defines the use cases for uploaded PDFs.
type PDFService interface {
	// Upload extracts text from the PDF payload, persists the document
	// record (cache store, else filesystem fallback), and returns the record
	// with its generated identifier.
	Upload(ctx context.Context, data []byte, filename string) (*model.Document, error)

	// Ask answers a question about a stored document, consulting the answer
	// cache before delegating to the provider. Returns
	// repository.ErrNotFound when no store tier has the document.
	Ask(ctx context.Context, pdfID, question string) (string, error)
}

// Metrics holds the service-level prometheus instruments.
type Metrics struct {
	cacheLookups *prometheus.CounterVec
}

// NewMetrics registers the service metrics on the given registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "answer_cache_lookups_total",
				Help: "Answer cache lookup outcomes (hit, miss, unavailable).",
			},
			[]string{"result"},
		),
	}
	if err := reg.Register(m.cacheLookups); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observeCacheLookup(res repository.CacheResult) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(res.String()).Inc()
}

// Deps bundles the collaborators of the PDF service. Archive and Metrics
// are optional; everything else is required.
type Deps struct {
	Primary   repository.DocumentStore
	Fallback  repository.DocumentStore
	Cache     repository.AnswerCache
	Extractor extract.Extractor
	LLM       llm.Client
	Archive   storage.Archive
	Metrics   *Metrics
}

// pdfService is a concrete implementation of PDFService. It holds no
// mutable state of its own; all cross-request state lives in the stores.
type pdfService struct {
	deps Deps
}

// NewPDFService constructs a new PDFService.
func NewPDFService(deps Deps) PDFService {
	return &pdfService{deps: deps}
}

func (s *pdfService) Upload(ctx context.Context, data []byte, filename string) (*model.Document, error) {
	if len(data) == 0 {
		return nil, ErrEmptyUpload
	}

	res, err := s.deps.Extractor.Extract(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrExtractionFailed, err)
	}

	doc := &model.Document{
		PDFID:     uuid.NewString(),
		Filename:  filename,
		PageCount: res.PageCount,
		Text:      res.Text,
	}

	if err := s.deps.Primary.Save(ctx, doc); err != nil {
		log.Printf("warn: cache store save failed for %s, using filesystem fallback: %v", doc.PDFID, err)
		if fbErr := s.deps.Fallback.Save(ctx, doc); fbErr != nil {
			return nil, fmt.Errorf("save document: store: %v; fallback: %w", err, fbErr)
		}
	}

	s.archiveRaw(ctx, doc, data)
	return doc, nil
}

// archiveRaw keeps the original PDF bytes in object storage. Best-effort:
// a failure is logged and the upload still succeeds.
func (s *pdfService) archiveRaw(ctx context.Context, doc *model.Document, data []byte) {
	if s.deps.Archive == nil {
		return
	}
	key := path.Join("pdfs", doc.PDFID+".pdf")
	_, err := s.deps.Archive.Put(ctx, key, bytes.NewReader(data), int64(len(data)), "application/pdf", map[string]string{
		"original-filename": doc.Filename,
	})
	if err != nil {
		log.Printf("warn: raw pdf archive failed for %s: %v", doc.PDFID, err)
	}
}

func (s *pdfService) Ask(ctx context.Context, pdfID, question string) (string, error) {
	doc, err := s.deps.Primary.Fetch(ctx, pdfID)
	if err != nil {
		// Absent from the store and store-unreachable both fall through to
		// the filesystem tier; only a miss on both is not-found.
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("warn: cache store fetch failed for %s, trying filesystem: %v", pdfID, err)
		}
		doc, err = s.deps.Fallback.Fetch(ctx, pdfID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return "", repository.ErrNotFound
			}
			return "", fmt.Errorf("fetch document %s: %w", pdfID, err)
		}
	}

	answer, res := s.deps.Cache.GetAnswer(ctx, pdfID, question)
	s.deps.Metrics.observeCacheLookup(res)
	if res == repository.CacheHit {
		return answer, nil
	}
	// CacheUnavailable degrades to a miss here: generation must still run
	// when the cache backend is down.

	generated, err := s.deps.LLM.Answer(ctx, doc.Text, question)
	if err != nil {
		return "", err
	}

	if err := s.deps.Cache.PutAnswer(ctx, pdfID, question, generated); err != nil {
		log.Printf("warn: answer cache write failed for %s: %v", pdfID, err)
	}
	return generated, nil
}
