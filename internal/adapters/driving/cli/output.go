package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
)

// preferJSON reports whether output should be JSON: when asked for, or when
// stdout is a file or pipe rather than a terminal.
func preferJSON(w io.Writer, asked bool) bool {
	if asked {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return !term.IsTerminal(int(f.Fd()))
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printGroups writes one line per group of doc, by bucket.
func printGroups(w io.Writer, doc *domain.Document) {
	buckets := []struct {
		title  string
		groups []domain.GroupInstance
	}{
		{"Header", doc.Header},
		{"Lookup", doc.Lookup},
		{"Entity", doc.Entity},
	}
	for _, b := range buckets {
		if len(b.groups) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s (%d):\n", b.title, len(b.groups))
		for i := range b.groups {
			g := &b.groups[i]
			fmt.Fprintf(w, "  B%s  %-32s %3d slots, %3d explicit", g.Type, g.Name, len(g.Bindings), g.Explicit())
			if g.Line > 0 {
				fmt.Fprintf(w, "  (line %d)", g.Line)
			}
			fmt.Fprintln(w)
		}
	}
}

// printBindings writes every slot of every group of doc.
func printBindings(w io.Writer, doc *domain.Document) {
	for _, g := range doc.Groups() {
		fmt.Fprintf(w, "B%s %s [%s]\n", g.Type, g.Name, g.Category.RecordType())
		for _, b := range g.Bindings {
			mark := " "
			if b.Defaulted {
				mark = "*"
			}
			fmt.Fprintf(w, "  %sF%02d %-36s %q (%d)\n", mark, b.Field.ID, b.Field.Name, b.Value, b.Length)
		}
	}
}
