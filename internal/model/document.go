package model

// Document is the persisted record for one uploaded PDF.
// This is a pure domain model with no storage-specific dependencies; the JSON
// shape is shared by the cache store and the filesystem fallback, so both
// tiers stay interchangeable on read.
type Document struct {
	PDFID     string `json:"pdf_id"`
	Filename  string `json:"filename"`
	PageCount int    `json:"page_count"`
	Text      string `json:"text"`
}
