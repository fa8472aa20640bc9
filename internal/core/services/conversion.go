package services

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
	"github.com/custodia-labs/resp2seed/internal/core/ports/driven"
	"github.com/custodia-labs/resp2seed/internal/core/ports/driving"
	"github.com/custodia-labs/resp2seed/internal/logger"
	"github.com/custodia-labs/resp2seed/internal/resp"
)

// Ensure ConversionService implements the interface.
var _ driving.ConversionService = (*ConversionService)(nil)

// ConversionService converts RESP input and archives the results.
type ConversionService struct {
	registry driven.SchemaRegistry
	docStore driven.DocumentStore
	units    []resp.Unit
}

// NewConversionService creates a conversion service.
// docStore may be nil, in which case Save requests fail and listing
// returns domain.ErrNotFound.
func NewConversionService(registry driven.SchemaRegistry, docStore driven.DocumentStore) *ConversionService {
	return &ConversionService{
		registry: registry,
		docStore: docStore,
		units:    resp.DefaultUnits,
	}
}

// SetUnits replaces the unit abbreviations used by later conversions.
func (s *ConversionService) SetUnits(units []resp.Unit) {
	s.units = units
}

// Convert tokenizes and assembles RESP text read from r.
func (s *ConversionService) Convert(
	ctx context.Context,
	source string,
	r io.Reader,
	opts driving.ConvertOptions,
) (*driving.ConversionReport, error) {
	if r == nil {
		return nil, domain.ErrInvalidInput
	}

	logger.Section("Assemble " + source)
	assembler := resp.NewAssembler(s.registry,
		resp.WithUnits(s.units),
		resp.WithSeedVolume(opts.SeedVolume),
	)

	tok := resp.NewTokenizer(r)
	res, err := assembler.Assemble(ctx, source, tok.Events())
	if err != nil {
		if res == nil {
			return nil, fmt.Errorf("assembling %s: %w", source, err)
		}
		// Cancelled: report what was flushed before the interruption.
		return &driving.ConversionReport{Document: res.Document, Problems: res.Problems},
			fmt.Errorf("assembling %s: %w", source, err)
	}
	if err := tok.Err(); err != nil {
		return nil, fmt.Errorf("assembling %s: %w", source, err)
	}

	report := &driving.ConversionReport{
		Document: res.Document,
		Problems: res.Problems,
	}
	logger.Info("%s: %d header, %d lookup, %d entity groups, %d problems",
		source, len(res.Document.Header), len(res.Document.Lookup), len(res.Document.Entity), len(res.Problems))

	if opts.Save {
		if s.docStore == nil {
			return report, fmt.Errorf("saving document: %w", domain.ErrInvalidInput)
		}
		if err := s.docStore.SaveDocument(ctx, res.Document); err != nil {
			return report, fmt.Errorf("saving document: %w", err)
		}
		report.Saved = true
	}

	return report, nil
}

// Templates lists the registered templates in type order.
func (s *ConversionService) Templates() []driving.TemplateSummary {
	types := s.registry.Types()
	out := make([]driving.TemplateSummary, 0, len(types))
	for _, gt := range types {
		tmpl, err := s.registry.Template(gt)
		if err != nil {
			continue
		}
		category, err := s.registry.CategoryOf(gt)
		if err != nil {
			continue
		}
		out = append(out, driving.TemplateSummary{
			Type:     gt,
			Name:     tmpl.Name,
			Category: category,
			Slots:    len(tmpl.Fields),
		})
	}
	return out
}

// Template returns the flattened template for a group type.
func (s *ConversionService) Template(gt domain.GroupType) (domain.Template, error) {
	tmpl, err := s.registry.Template(gt)
	if err != nil {
		return domain.Template{}, err
	}
	category, err := s.registry.CategoryOf(gt)
	if err != nil {
		return domain.Template{}, err
	}
	tmpl.Category = category
	return tmpl, nil
}

// Documents lists archived documents.
func (s *ConversionService) Documents(ctx context.Context) ([]domain.DocumentSummary, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotFound
	}
	return s.docStore.ListDocuments(ctx)
}

// Document retrieves an archived document.
func (s *ConversionService) Document(ctx context.Context, id string) (*domain.Document, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotFound
	}
	return s.docStore.GetDocument(ctx, id)
}

// DeleteDocument removes an archived document.
func (s *ConversionService) DeleteDocument(ctx context.Context, id string) error {
	if s.docStore == nil {
		return domain.ErrNotFound
	}
	return s.docStore.DeleteDocument(ctx, id)
}
