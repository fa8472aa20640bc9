package schema

import (
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
	"github.com/custodia-labs/resp2seed/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.SchemaRegistry = (*Registry)(nil)

// Registry maps group types to templates.
type Registry struct {
	mu        sync.RWMutex
	templates map[domain.GroupType]domain.Template
	flat      map[domain.GroupType]domain.Template
}

// NewRegistry creates a registry holding the given templates.
func NewRegistry(templates ...domain.Template) (*Registry, error) {
	r := &Registry{
		templates: make(map[domain.GroupType]domain.Template),
		flat:      make(map[domain.GroupType]domain.Template),
	}
	for _, t := range templates {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Builtin returns a registry of the built-in SEED templates.
func Builtin() *Registry {
	r, err := NewRegistry(builtinTemplates()...)
	if err != nil {
		// The table is static; a failure is a programming error.
		panic(fmt.Sprintf("schema: invalid builtin table: %v", err))
	}
	return r
}

// Register adds or replaces a template.
func (r *Registry) Register(t domain.Template) error {
	if err := validate(t); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[t.Type] = t
	delete(r.flat, t.Type)
	return nil
}

// Template returns the flattened template for a group type.
func (r *Registry) Template(gt domain.GroupType) (domain.Template, error) {
	r.mu.RLock()
	flat, ok := r.flat[gt]
	r.mu.RUnlock()
	if ok {
		return flat, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.templates[gt]
	if !ok {
		return domain.Template{}, &domain.UnknownGroupTypeError{Group: gt}
	}
	flat = t.Flattened()
	r.flat[gt] = flat
	return flat, nil
}

// CategoryOf returns the category of a group type.
func (r *Registry) CategoryOf(gt domain.GroupType) (domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[gt]
	if !ok {
		return domain.CategoryUnknown, &domain.UnknownGroupTypeError{Group: gt}
	}
	return t.Category, nil
}

// Types returns the registered group types in ascending order.
func (r *Registry) Types() []domain.GroupType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]domain.GroupType, 0, len(r.templates))
	for gt := range r.templates {
		types = append(types, gt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// validate checks a template before registration.
func validate(t domain.Template) error {
	if t.Type <= 0 {
		return fmt.Errorf("%w: template type %d", domain.ErrInvalidInput, int(t.Type))
	}
	if t.Category == domain.CategoryUnknown {
		return fmt.Errorf("%w: template %s has no category", domain.ErrInvalidInput, t.Type)
	}
	return validateFields(t.Type, t.Fields)
}

func validateFields(gt domain.GroupType, fields []domain.FieldDescriptor) error {
	for _, f := range fields {
		if f.Kind == domain.FieldLoop {
			if len(f.Fields) == 0 {
				return fmt.Errorf("%w: template %s has an empty loop %q", domain.ErrInvalidInput, gt, f.Name)
			}
			if f.Repeat < 0 {
				return fmt.Errorf("%w: template %s loop %q repeats %d times", domain.ErrInvalidInput, gt, f.Name, f.Repeat)
			}
			if err := validateFields(gt, f.Fields); err != nil {
				return err
			}
			continue
		}
		if f.ID <= 0 {
			return fmt.Errorf("%w: template %s field %q has id %d", domain.ErrInvalidInput, gt, f.Name, f.ID)
		}
	}
	return nil
}
