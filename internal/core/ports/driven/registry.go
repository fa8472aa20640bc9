package driven

import "github.com/custodia-labs/resp2seed/internal/core/domain"

// SchemaRegistry resolves group types to their templates.
// The registry is read-only to the core.
type SchemaRegistry interface {
	// Template returns the loop-flattened template for a group type.
	// Returns *domain.UnknownGroupTypeError if none is registered.
	Template(t domain.GroupType) (domain.Template, error)

	// CategoryOf returns the structural bucket of a group type.
	CategoryOf(t domain.GroupType) (domain.Category, error)

	// Types lists registered group types in ascending order.
	Types() []domain.GroupType
}
