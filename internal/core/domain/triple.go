package domain

import "fmt"

// Triple is one field value extracted from a RESP line.
type Triple struct {
	Group GroupType
	Field int
	Value string
	// Line is the 1-based input line the value was read from.
	Line int
}

// String renders the triple in RESP tag form.
func (t Triple) String() string {
	return fmt.Sprintf("B%sF%02d %s", t.Group, t.Field, t.Value)
}

// Binding pairs a template slot with the value assigned to it.
type Binding struct {
	// Slot is the position of the descriptor in the flattened template.
	Slot  int             `json:"slot"`
	Field FieldDescriptor `json:"field"`
	Value string          `json:"value"`
	// Length is the effective width: the nominal length, widened to fit
	// explicit values that are longer.
	Length    int  `json:"length"`
	Defaulted bool `json:"defaulted"`
}
