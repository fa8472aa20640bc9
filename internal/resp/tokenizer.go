package resp

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
)

var (
	fieldLinePattern = regexp.MustCompile(`^B(\d+)F(\d+)(?:-(\d+))?(.*)`)
	valuePattern     = regexp.MustCompile(`:\s*(\S*)`)
	boundaryPattern  = regexp.MustCompile(`^#.*\+`)
)

// maxLineSize bounds a single RESP line.
const maxLineSize = 1024 * 1024

// EventKind classifies tokenizer output.
type EventKind int

const (
	// EventField carries one field triple.
	EventField EventKind = iota + 1
	// EventBoundary is a "#...+" comment line that closes the current group.
	EventBoundary
	// EventMalformed is a field line that could not be tokenized.
	// Group is set so the line still participates in group detection.
	EventMalformed
)

// Event is one unit of tokenizer output.
type Event struct {
	Kind   EventKind
	Line   int
	Group  domain.GroupType
	Triple domain.Triple
	Err    error
}

// TokenizeLine turns one line into events. Lines that are neither field
// lines nor boundary markers produce nothing. A range line yields one
// event per field of the range.
func TokenizeLine(n int, line string) []Event {
	line = strings.TrimRight(line, "\r")

	m := fieldLinePattern.FindStringSubmatch(line)
	if m == nil {
		if boundaryPattern.MatchString(line) {
			return []Event{{Kind: EventBoundary, Line: n}}
		}
		return nil
	}

	group, err := strconv.Atoi(m[1])
	if err != nil {
		return []Event{malformed(n, 0, line, fmt.Sprintf("group tag %q: %v", m[1], err))}
	}
	gt := domain.GroupType(group)
	first, err := strconv.Atoi(m[2])
	if err != nil {
		return []Event{malformed(n, gt, line, fmt.Sprintf("field tag %q: %v", m[2], err))}
	}

	if m[3] == "" {
		v := valuePattern.FindStringSubmatch(m[4])
		if v == nil {
			return []Event{malformed(n, gt, line, "missing ':' before value")}
		}
		return []Event{field(n, gt, first, v[1])}
	}

	last, err := strconv.Atoi(m[3])
	if err != nil {
		return []Event{malformed(n, gt, line, fmt.Sprintf("field tag %q: %v", m[3], err))}
	}
	if last < first {
		return []Event{malformed(n, gt, line, fmt.Sprintf("field range %d-%d is reversed", first, last))}
	}

	want := last - first + 1
	tokens := strings.Fields(m[4])
	if len(tokens) < want {
		return []Event{malformed(n, gt, line,
			fmt.Sprintf("field range %d-%d needs %d values, found %d", first, last, want, len(tokens)))}
	}

	values := tokens[len(tokens)-want:]
	events := make([]Event, 0, want)
	for i, v := range values {
		events = append(events, field(n, gt, first+i, v))
	}
	return events
}

func field(n int, gt domain.GroupType, id int, value string) Event {
	return Event{
		Kind:   EventField,
		Line:   n,
		Group:  gt,
		Triple: domain.Triple{Group: gt, Field: id, Value: value, Line: n},
	}
}

func malformed(n int, gt domain.GroupType, line, reason string) Event {
	return Event{
		Kind:  EventMalformed,
		Line:  n,
		Group: gt,
		Err:   &domain.MalformedLineError{Line: n, Content: line, Reason: reason},
	}
}

// Lines returns the events of an in-memory line slice. Each range over
// the returned sequence starts again from the first line.
func Lines(lines []string) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for i, line := range lines {
			for _, ev := range TokenizeLine(i+1, line) {
				if !yield(ev) {
					return
				}
			}
		}
	}
}

// Text splits s on newlines and tokenizes the result.
func Text(s string) iter.Seq[Event] {
	return Lines(strings.Split(s, "\n"))
}

// Tokenizer streams events from a reader. It can be consumed once.
//
//	tok := resp.NewTokenizer(r)
//	for tok.Next() {
//		ev := tok.Event()
//	}
//	if err := tok.Err(); err != nil { ... }
type Tokenizer struct {
	scanner *bufio.Scanner
	line    int
	pending []Event
	current Event
	err     error
}

// NewTokenizer creates a tokenizer over r.
func NewTokenizer(r io.Reader) *Tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Tokenizer{scanner: sc}
}

// Next advances to the next event, reading lines as needed.
func (t *Tokenizer) Next() bool {
	for len(t.pending) == 0 {
		if t.err != nil || !t.scanner.Scan() {
			if t.err == nil {
				t.err = t.scanner.Err()
			}
			return false
		}
		t.line++
		t.pending = TokenizeLine(t.line, t.scanner.Text())
	}
	t.current = t.pending[0]
	t.pending = t.pending[1:]
	return true
}

// Event returns the event Next advanced to.
func (t *Tokenizer) Event() Event {
	return t.current
}

// Err returns the first read error, if any.
func (t *Tokenizer) Err() error {
	if t.err != nil {
		return fmt.Errorf("reading line %d: %w", t.line+1, t.err)
	}
	return nil
}

// Events adapts the tokenizer to a range-over-func sequence.
func (t *Tokenizer) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for t.Next() {
			if !yield(t.current) {
				return
			}
		}
	}
}
