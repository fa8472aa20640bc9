package domain

import (
	"fmt"
	"time"
)

// Document is the record set assembled from one RESP input. Groups are
// bucketed by category; ByType indexes every group by its type.
//
// Entity groups are kept in one flat list even when the input describes
// more than one station.
type Document struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`

	Header []GroupInstance `json:"header"`
	Lookup []GroupInstance `json:"lookup"`
	Entity []GroupInstance `json:"entity"`

	ByType map[GroupType][]GroupInstance `json:"-"`
}

// NewDocument creates an empty document.
func NewDocument(id, source string, createdAt time.Time) *Document {
	return &Document{
		ID:        id,
		Source:    source,
		CreatedAt: createdAt,
		ByType:    make(map[GroupType][]GroupInstance),
	}
}

// Append adds a group to its category bucket and to the type index.
func (d *Document) Append(g GroupInstance) error {
	switch g.Category {
	case CategoryHeader:
		d.Header = append(d.Header, g)
	case CategoryLookup:
		d.Lookup = append(d.Lookup, g)
	case CategoryEntity:
		d.Entity = append(d.Entity, g)
	default:
		return fmt.Errorf("%w: group %s has category %s", ErrInvalidInput, g.Type, g.Category)
	}
	if d.ByType == nil {
		d.ByType = make(map[GroupType][]GroupInstance)
	}
	d.ByType[g.Type] = append(d.ByType[g.Type], g)
	return nil
}

// Groups returns every group in encoder order: header, lookup, entity.
func (d *Document) Groups() []GroupInstance {
	out := make([]GroupInstance, 0, d.Len())
	out = append(out, d.Header...)
	out = append(out, d.Lookup...)
	out = append(out, d.Entity...)
	return out
}

// OfType returns the groups of the given type in input order.
func (d *Document) OfType(t GroupType) []GroupInstance {
	return d.ByType[t]
}

// Len returns the number of groups across all buckets.
func (d *Document) Len() int {
	return len(d.Header) + len(d.Lookup) + len(d.Entity)
}

// Summary returns the listing view of the document.
func (d *Document) Summary() DocumentSummary {
	return DocumentSummary{
		ID:        d.ID,
		Source:    d.Source,
		CreatedAt: d.CreatedAt,
		Header:    len(d.Header),
		Lookup:    len(d.Lookup),
		Entity:    len(d.Entity),
	}
}

// DocumentSummary describes a stored document without its groups.
type DocumentSummary struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	Header    int       `json:"header"`
	Lookup    int       `json:"lookup"`
	Entity    int       `json:"entity"`
}
