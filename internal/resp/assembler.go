package resp

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
	"github.com/custodia-labs/resp2seed/internal/core/ports/driven"
	"github.com/custodia-labs/resp2seed/internal/logger"
)

// Group types the volume seed writes.
const (
	volumeIdentifier  domain.GroupType = 10
	unitsAbbreviation domain.GroupType = 34
)

// Option configures an Assembler.
type Option func(*Assembler)

// WithUnits replaces the unit abbreviations used for substitution and
// for the seeded abbreviation groups.
func WithUnits(units []Unit) Option {
	return func(a *Assembler) {
		a.units = units
		a.matcher = NewMatcher(NewAbbreviations(units))
	}
}

// WithSeedVolume makes every document start with an empty volume
// identifier group and one units abbreviation group per unit.
func WithSeedVolume(seed bool) Option {
	return func(a *Assembler) {
		a.seedVolume = seed
	}
}

// WithClock overrides the document creation time source.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		a.now = now
	}
}

// Assembler groups tokenizer events and builds group instances.
type Assembler struct {
	registry   driven.SchemaRegistry
	matcher    *Matcher
	units      []Unit
	seedVolume bool
	now        func() time.Time
}

// NewAssembler creates an assembler resolving templates from registry.
func NewAssembler(registry driven.SchemaRegistry, opts ...Option) *Assembler {
	a := &Assembler{
		registry: registry,
		matcher:  NewMatcher(NewAbbreviations(DefaultUnits)),
		units:    DefaultUnits,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Result is the outcome of one assembly pass.
type Result struct {
	Document *domain.Document

	// Problems holds a *domain.GroupError per dropped group.
	Problems []error

	// Groups counts the groups detected in the input, dropped ones included.
	Groups int
}

// pending is the group being accumulated.
type pending struct {
	active  bool
	group   domain.GroupType
	line    int
	triples []domain.Triple
	err     error
}

// Assemble consumes events until they run out or ctx is cancelled.
// Cancellation returns the groups flushed so far together with ctx.Err();
// the group being accumulated at that point is discarded.
func (a *Assembler) Assemble(ctx context.Context, source string, events iter.Seq[Event]) (*Result, error) {
	res := &Result{
		Document: domain.NewDocument(uuid.New().String(), source, a.now()),
	}
	if a.seedVolume {
		a.seed(res)
	}

	var cur pending
	for ev := range events {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		switch ev.Kind {
		case EventBoundary:
			a.flush(res, &cur)
		case EventField, EventMalformed:
			if cur.active && ev.Group != cur.group {
				a.flush(res, &cur)
			}
			if !cur.active {
				cur = pending{active: true, group: ev.Group, line: ev.Line}
			}
			if ev.Kind == EventMalformed {
				if cur.err == nil {
					cur.err = ev.Err
				}
				continue
			}
			cur.triples = append(cur.triples, ev.Triple)
		}
	}
	a.flush(res, &cur)

	logger.Debug("assembled %s: %d groups, %d dropped", source, res.Groups, len(res.Problems))
	return res, nil
}

// flush closes the pending group. A group is appended whole or not at all.
func (a *Assembler) flush(res *Result, cur *pending) {
	if !cur.active {
		return
	}
	g := *cur
	*cur = pending{}
	res.Groups++

	if g.err != nil {
		res.report(g.group, g.line, g.err)
		return
	}

	inst, err := a.build(g.group, g.line, g.triples)
	if err != nil {
		res.report(g.group, g.line, err)
		return
	}
	if err := res.Document.Append(inst); err != nil {
		res.report(g.group, g.line, err)
		return
	}
	logger.Debug("group %s (%s) at line %d: %d slots, %d explicit",
		inst.Type, inst.Category, g.line, len(inst.Bindings), inst.Explicit())
}

// build matches and defaults one group.
func (a *Assembler) build(gt domain.GroupType, line int, triples []domain.Triple) (domain.GroupInstance, error) {
	tmpl, err := a.registry.Template(gt)
	if err != nil {
		return domain.GroupInstance{}, err
	}
	category, err := a.registry.CategoryOf(gt)
	if err != nil {
		return domain.GroupInstance{}, err
	}
	tmpl.Category = category

	partial, err := a.matcher.Match(tmpl, triples)
	if err != nil {
		return domain.GroupInstance{}, err
	}
	return Fill(partial, line), nil
}

// seedGroup is a group synthesised rather than read from input.
type seedGroup struct {
	gt      domain.GroupType
	triples []domain.Triple
}

// seed writes the volume identifier and the unit dictionary.
func (a *Assembler) seed(res *Result) {
	groups := []seedGroup{{gt: volumeIdentifier}}
	for _, u := range a.units {
		groups = append(groups, seedGroup{
			gt: unitsAbbreviation,
			triples: []domain.Triple{
				{Group: unitsAbbreviation, Field: 3, Value: u.Code},
				{Group: unitsAbbreviation, Field: 4, Value: u.Name},
				{Group: unitsAbbreviation, Field: 5, Value: u.Description},
			},
		})
	}

	for _, g := range groups {
		inst, err := a.build(g.gt, 0, g.triples)
		if err == nil {
			err = res.Document.Append(inst)
		}
		if err != nil {
			res.report(g.gt, 0, err)
		}
	}
}

func (r *Result) report(gt domain.GroupType, line int, err error) {
	gerr := &domain.GroupError{Group: gt, Line: line, Err: err}
	logger.Warn("%v", gerr)
	r.Problems = append(r.Problems, gerr)
}
