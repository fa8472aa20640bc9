package domain

import (
	"fmt"
	"strings"
)

// GroupType identifies a group template (a SEED blockette number).
type GroupType int

// String renders the type the way RESP files tag it, e.g. "050".
func (g GroupType) String() string {
	return fmt.Sprintf("%03d", int(g))
}

// Category is the structural section of a document a group belongs to.
type Category int

const (
	// CategoryUnknown is the zero value and never a valid classification.
	CategoryUnknown Category = iota
	// CategoryHeader groups describe the volume (SEED record type "V").
	CategoryHeader
	// CategoryLookup groups are abbreviation dictionaries (record type "A").
	CategoryLookup
	// CategoryEntity groups describe stations and channels (record type "S").
	CategoryEntity
)

// String returns the lower-case category name.
func (c Category) String() string {
	switch c {
	case CategoryHeader:
		return "header"
	case CategoryLookup:
		return "lookup"
	case CategoryEntity:
		return "entity"
	default:
		return "unknown"
	}
}

// RecordType returns the single-letter SEED record type for the category.
func (c Category) RecordType() string {
	switch c {
	case CategoryHeader:
		return "V"
	case CategoryLookup:
		return "A"
	case CategoryEntity:
		return "S"
	default:
		return ""
	}
}

// ParseCategory accepts either the category name or its record type letter.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "header", "volume", "v":
		return CategoryHeader, nil
	case "lookup", "abbreviation", "abbreviations", "a":
		return CategoryLookup, nil
	case "entity", "station", "stations", "s":
		return CategoryEntity, nil
	}
	return CategoryUnknown, fmt.Errorf("%w: category %q", ErrInvalidInput, s)
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts anything ParseCategory does, plus "unknown".
func (c *Category) UnmarshalText(text []byte) error {
	if strings.EqualFold(strings.TrimSpace(string(text)), "unknown") {
		*c = CategoryUnknown
		return nil
	}
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// FieldKind distinguishes the shapes a template slot can take.
type FieldKind int

const (
	// FieldFixed is a fixed-width scalar (numbers, fixed strings).
	FieldFixed FieldKind = iota
	// FieldVariable is a variable-length string closed by Terminator.
	FieldVariable
	// FieldLoop is a repeating run of inner descriptors.
	FieldLoop
)

// Terminator closes every variable-length string in the binary encoding.
const Terminator = "~"

// String returns the kind name used in template files.
func (k FieldKind) String() string {
	switch k {
	case FieldFixed:
		return "fixed"
	case FieldVariable:
		return "variable"
	case FieldLoop:
		return "loop"
	default:
		return "unknown"
	}
}

// ParseFieldKind parses a template file kind name.
func ParseFieldKind(s string) (FieldKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed", "scalar":
		return FieldFixed, nil
	case "variable", "string":
		return FieldVariable, nil
	case "loop":
		return FieldLoop, nil
	}
	return FieldFixed, fmt.Errorf("%w: field kind %q", ErrInvalidInput, s)
}

// MarshalText encodes the kind by name.
func (k FieldKind) MarshalText() ([]byte, error) {
	if k < FieldFixed || k > FieldLoop {
		return nil, fmt.Errorf("%w: field kind %d", ErrInvalidInput, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name.
func (k *FieldKind) UnmarshalText(text []byte) error {
	parsed, err := ParseFieldKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// GroupInstance is one fully assembled group. Bindings cover every slot of
// the flattened template in template order.
type GroupInstance struct {
	Type     GroupType `json:"type"`
	Name     string    `json:"name"`
	Category Category  `json:"category"`
	// Line is the input line the group started on; 0 for seeded groups.
	Line     int       `json:"line"`
	Bindings []Binding `json:"bindings"`
}

// Value returns the first value bound to fieldID.
func (g GroupInstance) Value(fieldID int) (string, bool) {
	for _, b := range g.Bindings {
		if b.Field.ID == fieldID {
			return b.Value, true
		}
	}
	return "", false
}

// Values returns every value bound to fieldID in slot order.
func (g GroupInstance) Values(fieldID int) []string {
	var out []string
	for _, b := range g.Bindings {
		if b.Field.ID == fieldID {
			out = append(out, b.Value)
		}
	}
	return out
}

// Explicit counts the bindings that came from input rather than defaults.
func (g GroupInstance) Explicit() int {
	n := 0
	for _, b := range g.Bindings {
		if !b.Defaulted {
			n++
		}
	}
	return n
}
