package domain

// FieldDescriptor describes one slot of a group template.
type FieldDescriptor struct {
	ID   int       `json:"id"`
	Name string    `json:"name"`
	Kind FieldKind `json:"kind"`
	// Length is the nominal encoded width; bindings may widen it.
	Length  int    `json:"length"`
	Default string `json:"default"`

	// Loop only.
	Fields []FieldDescriptor `json:"fields,omitempty"`
	Repeat int               `json:"repeat,omitempty"`
}

// Template is the static definition of a group type.
type Template struct {
	Type     GroupType         `json:"type"`
	Name     string            `json:"name"`
	Category Category          `json:"category"`
	Fields   []FieldDescriptor `json:"fields"`
}

// Flatten unrolls loop descriptors into their inner descriptors, Repeat
// times each (once when Repeat is unset). Nested loops are unrolled
// recursively. The input is not modified.
func Flatten(fields []FieldDescriptor) []FieldDescriptor {
	out := make([]FieldDescriptor, 0, len(fields))
	for _, f := range fields {
		if f.Kind != FieldLoop {
			out = append(out, f)
			continue
		}
		inner := Flatten(f.Fields)
		repeat := f.Repeat
		if repeat < 1 {
			repeat = 1
		}
		for i := 0; i < repeat; i++ {
			out = append(out, inner...)
		}
	}
	return out
}

// Flattened returns a copy of t whose Fields contain no loops.
func (t Template) Flattened() Template {
	flat := t
	flat.Fields = Flatten(t.Fields)
	return flat
}

// Has reports whether any descriptor of the template carries fieldID.
func (t Template) Has(fieldID int) bool {
	for _, f := range Flatten(t.Fields) {
		if f.ID == fieldID {
			return true
		}
	}
	return false
}
