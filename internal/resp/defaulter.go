package resp

import "github.com/custodia-labs/resp2seed/internal/core/domain"

// Fill binds every unused slot of p to its template default and returns
// the completed group. Defaults get the string terminator but are neither
// abbreviated nor widened.
func Fill(p *Partial, line int) domain.GroupInstance {
	bindings := make([]domain.Binding, len(p.Bindings))
	copy(bindings, p.Bindings)

	for _, slot := range p.Unused {
		f := p.Template.Fields[slot]
		value := f.Default
		if f.Kind == domain.FieldVariable {
			value += domain.Terminator
		}
		bindings[slot] = domain.Binding{
			Slot:      slot,
			Field:     f,
			Value:     value,
			Length:    f.Length,
			Defaulted: true,
		}
	}

	return domain.GroupInstance{
		Type:     p.Template.Type,
		Name:     p.Template.Name,
		Category: p.Template.Category,
		Line:     line,
		Bindings: bindings,
	}
}
