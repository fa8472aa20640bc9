package resp

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
)

func triples(events []Event) []domain.Triple {
	var out []domain.Triple
	for _, ev := range events {
		if ev.Kind == EventField {
			out = append(out, ev.Triple)
		}
	}
	return out
}

func collect(seq func(func(Event) bool)) []Event {
	var out []Event
	seq(func(ev Event) bool {
		out = append(out, ev)
		return true
	})
	return out
}

func TestTokenizeLine_SingleField(t *testing.T) {
	events := TokenizeLine(1, "B050F03     Network:  XX")

	require.Len(t, events, 1)
	assert.Equal(t, EventField, events[0].Kind)
	assert.Equal(t, domain.Triple{Group: 50, Field: 3, Value: "XX", Line: 1}, events[0].Triple)
}

func TestTokenizeLine_ValueIsFirstWordAfterColon(t *testing.T) {
	events := TokenizeLine(4, "B052F22     Start date:  2006,001,00:00:00.0000")

	require.Len(t, events, 1)
	assert.Equal(t, "2006,001,00:00:00.0000", events[0].Triple.Value)
	assert.Equal(t, 22, events[0].Triple.Field)
}

func TestTokenizeLine_EmptyValue(t *testing.T) {
	events := TokenizeLine(1, "B052F03     Location:    ")

	require.Len(t, events, 1)
	assert.Equal(t, EventField, events[0].Kind)
	assert.Equal(t, "", events[0].Triple.Value)
}

func TestTokenizeLine_RangeExpansion(t *testing.T) {
	events := TokenizeLine(9, "B050F22-24  foo bar baz")

	assert.Equal(t, []domain.Triple{
		{Group: 50, Field: 22, Value: "foo", Line: 9},
		{Group: 50, Field: 23, Value: "bar", Line: 9},
		{Group: 50, Field: 24, Value: "baz", Line: 9},
	}, triples(events))
}

func TestTokenizeLine_RangeTakesTrailingTokens(t *testing.T) {
	events := TokenizeLine(30, "B053F10-13    0  1.000000E+00  2.000000E+00  0.000000E+00  0.000000E+00")

	got := triples(events)
	require.Len(t, got, 4)
	assert.Equal(t, "1.000000E+00", got[0].Value)
	assert.Equal(t, 10, got[0].Field)
	assert.Equal(t, 13, got[3].Field)
}

func TestTokenizeLine_RangeTooFewTokens(t *testing.T) {
	line := "B053F10-13    0  1.0"
	events := TokenizeLine(5, line)

	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, EventMalformed, ev.Kind)
	assert.Equal(t, domain.GroupType(53), ev.Group)

	var merr *domain.MalformedLineError
	require.True(t, errors.As(ev.Err, &merr))
	assert.Equal(t, 5, merr.Line)
	assert.Equal(t, line, merr.Content)
	assert.Contains(t, merr.Reason, "needs 4 values, found 2")
}

func TestTokenizeLine_ReversedRange(t *testing.T) {
	events := TokenizeLine(1, "B053F13-10  a b c d")

	require.Len(t, events, 1)
	assert.Equal(t, EventMalformed, events[0].Kind)
	assert.ErrorIs(t, events[0].Err, domain.ErrMalformedLine)
}

func TestTokenizeLine_MissingColon(t *testing.T) {
	events := TokenizeLine(2, "B050F03 Network XX")

	require.Len(t, events, 1)
	assert.Equal(t, EventMalformed, events[0].Kind)
	assert.ErrorIs(t, events[0].Err, domain.ErrMalformedLine)
}

func TestTokenizeLine_Boundary(t *testing.T) {
	events := TokenizeLine(3, "#                    +")

	require.Len(t, events, 1)
	assert.Equal(t, EventBoundary, events[0].Kind)
	assert.Equal(t, 3, events[0].Line)
}

func TestTokenizeLine_Ignored(t *testing.T) {
	for _, line := range []string{
		"",
		"#",
		"#  Response type:  A",
		"   B050F03 Network: XX",
		"some free text",
	} {
		assert.Empty(t, TokenizeLine(1, line), "line %q", line)
	}
}

func TestTokenizeLine_StripsCarriageReturn(t *testing.T) {
	events := TokenizeLine(1, "B050F16     Station:  ABCD\r")

	require.Len(t, events, 1)
	assert.Equal(t, "ABCD", events[0].Triple.Value)
}

func TestLines_Restartable(t *testing.T) {
	seq := Lines([]string{"B050F03 Network: XX", "#  +", "B050F16 Station: ABCD"})

	first := collect(seq)
	second := collect(seq)

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, first[2].Line)
}

func TestLines_StopsEarly(t *testing.T) {
	seq := Lines([]string{"B050F22-24 a b c"})

	var seen int
	seq(func(Event) bool {
		seen++
		return seen < 2
	})

	assert.Equal(t, 2, seen)
}

func TestTokenizer_Reader(t *testing.T) {
	input := "B050F03     Network:  XX\r\nB050F16     Station:  ABCD\n#  +\n"
	tok := NewTokenizer(strings.NewReader(input))

	var events []Event
	for tok.Next() {
		events = append(events, tok.Event())
	}

	require.NoError(t, tok.Err())
	require.Len(t, events, 3)
	assert.Equal(t, "XX", events[0].Triple.Value)
	assert.Equal(t, 2, events[1].Line)
	assert.Equal(t, EventBoundary, events[2].Kind)
	assert.False(t, tok.Next())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestTokenizer_ReadError(t *testing.T) {
	tok := NewTokenizer(failingReader{})

	assert.Empty(t, collect(tok.Events()))
	err := tok.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}
