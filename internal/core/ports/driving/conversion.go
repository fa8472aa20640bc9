package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
)

// ConversionService turns RESP text into assembled SEED record sets.
type ConversionService interface {
	// Convert reads RESP lines from r and assembles them.
	// Per-group problems are reported, not returned as errors; the error
	// is only for read failures, cancellation or persistence.
	Convert(ctx context.Context, source string, r io.Reader, opts ConvertOptions) (*ConversionReport, error)

	// Templates lists the registered group templates.
	Templates() []TemplateSummary

	// Template returns the flattened template for a group type.
	Template(gt domain.GroupType) (domain.Template, error)

	// Documents lists archived documents.
	Documents(ctx context.Context) ([]domain.DocumentSummary, error)

	// Document retrieves an archived document.
	Document(ctx context.Context, id string) (*domain.Document, error)

	// DeleteDocument removes an archived document.
	DeleteDocument(ctx context.Context, id string) error
}

// ConvertOptions tunes a single conversion.
type ConvertOptions struct {
	// SeedVolume pre-populates the volume identifier and unit abbreviations.
	SeedVolume bool

	// Save archives the document after assembly.
	Save bool
}

// ConversionReport is the outcome of a conversion.
type ConversionReport struct {
	Document *domain.Document

	// Problems holds one error per group or line that was dropped.
	Problems []error

	// Saved is true when the document was archived.
	Saved bool
}

// TemplateSummary describes a registered template for display.
type TemplateSummary struct {
	Type     domain.GroupType
	Name     string
	Category domain.Category
	// Slots is the flattened descriptor count.
	Slots int
}
