package resp

import (
	"fmt"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
)

// Partial is a group whose explicit values are bound. Unused lists the
// slots that still need a default.
type Partial struct {
	Template domain.Template
	Bindings []domain.Binding
	Unused   []int
}

// Matcher binds triples to template slots.
type Matcher struct {
	abbreviations Abbreviations
}

// NewMatcher creates a matcher substituting values found in abbreviations.
func NewMatcher(abbreviations Abbreviations) *Matcher {
	return &Matcher{abbreviations: abbreviations}
}

// Match binds each triple to the first unbound slot with the same field
// id, in input order, so repeated loop fields fill their slots in the
// order the values appear. tmpl must already be flattened.
func (m *Matcher) Match(tmpl domain.Template, triples []domain.Triple) (*Partial, error) {
	fields := tmpl.Fields
	bindings := make([]domain.Binding, len(fields))
	bound := make([]bool, len(fields))

	for _, t := range triples {
		slot := -1
		for i, f := range fields {
			if !bound[i] && f.ID == t.Field {
				slot = i
				break
			}
		}
		if slot < 0 {
			return nil, m.noSlot(tmpl, t)
		}

		value, length := m.transform(fields[slot], t.Value)
		bindings[slot] = domain.Binding{
			Slot:   slot,
			Field:  fields[slot],
			Value:  value,
			Length: length,
		}
		bound[slot] = true
	}

	unused := make([]int, 0, len(fields))
	for i := range fields {
		if !bound[i] {
			unused = append(unused, i)
		}
	}

	return &Partial{Template: tmpl, Bindings: bindings, Unused: unused}, nil
}

// transform applies the terminator, abbreviation substitution and length
// widening, in that order.
func (m *Matcher) transform(f domain.FieldDescriptor, raw string) (string, int) {
	value := raw
	if f.Kind == domain.FieldVariable {
		value += domain.Terminator
	}
	if code, ok := m.abbreviations.Lookup(value); ok {
		value = code
	}

	// RESP does not keep SEED's fixed widths, floats especially.
	length := f.Length
	if length < len(value) {
		length = len(value)
	}
	return value, length
}

func (m *Matcher) noSlot(tmpl domain.Template, t domain.Triple) error {
	if tmpl.Has(t.Field) {
		return &domain.MalformedLineError{
			Line:    t.Line,
			Content: t.String(),
			Reason:  fmt.Sprintf("group %s has no free slot left for field %d", tmpl.Type, t.Field),
			Cause:   domain.ErrRepeatOverflow,
		}
	}
	return &domain.UnknownFieldError{Group: tmpl.Type, Field: t.Field, Line: t.Line}
}
