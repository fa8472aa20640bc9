package driven

import (
	"context"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
)

// DocumentStore archives assembled documents.
// Backed by SQLite; an in-memory implementation serves tests.
type DocumentStore interface {
	// SaveDocument stores or replaces a document with all its groups.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID, rebuilding its type index.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// DeleteDocument removes a document and its groups.
	DeleteDocument(ctx context.Context, id string) error

	// ListDocuments returns summaries of stored documents, oldest first.
	ListDocuments(ctx context.Context) ([]domain.DocumentSummary, error)
}
