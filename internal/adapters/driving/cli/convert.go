package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
	"github.com/custodia-labs/resp2seed/internal/core/ports/driving"
)

var (
	convertJSON       bool
	convertSeedVolume bool
	convertStrict     bool
	convertSave       bool
	convertShowFields bool
)

// errProblems marks a strict conversion that dropped groups.
var errProblems = errors.New("conversion dropped groups")

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a RESP file into SEED groups",
	Long: `Reads a RESP response file and assembles the SEED groups it describes.
Use "-" to read from standard input. Groups that cannot be assembled are
reported and skipped unless --strict is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "output the document as JSON")
	convertCmd.Flags().BoolVar(&convertSeedVolume, "seed-volume", false, "add a volume identifier and unit abbreviations")
	convertCmd.Flags().BoolVar(&convertStrict, "strict", false, "fail when any group is dropped")
	convertCmd.Flags().BoolVar(&convertSave, "save", false, "archive the document")
	convertCmd.Flags().BoolVarP(&convertShowFields, "fields", "f", false, "print every slot of every group")
	rootCmd.AddCommand(convertCmd)
}

// convertReport is the JSON form of a conversion.
type convertReport struct {
	Document *domain.Document `json:"document"`
	Problems []string         `json:"problems"`
	Saved    bool             `json:"saved"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	source, r, closeInput, err := openInput(cmd, args[0])
	if err != nil {
		return err
	}
	defer closeInput()

	configured := currentSettings()
	opts := driving.ConvertOptions{
		SeedVolume: flagOr(cmd, "seed-volume", convertSeedVolume, configured.SeedVolume),
		Save:       convertSave,
	}
	strict := flagOr(cmd, "strict", convertStrict, configured.Strict)

	report, err := conversionService.Convert(context.Background(), source, r, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if preferJSON(out, convertJSON) {
		problems := make([]string, 0, len(report.Problems))
		for _, p := range report.Problems {
			problems = append(problems, p.Error())
		}
		if err := writeJSON(out, convertReport{Document: report.Document, Problems: problems, Saved: report.Saved}); err != nil {
			return err
		}
	} else {
		printConversion(out, report)
	}

	for _, p := range report.Problems {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", p)
	}

	if strict && len(report.Problems) > 0 {
		return fmt.Errorf("%w: %d of %d", errProblems, len(report.Problems), len(report.Problems)+report.Document.Len())
	}
	return nil
}

func printConversion(w io.Writer, report *driving.ConversionReport) {
	doc := report.Document
	fmt.Fprintf(w, "Document: %s\n", doc.ID)
	fmt.Fprintf(w, "Source:   %s\n\n", doc.Source)

	if convertShowFields {
		printBindings(w, doc)
	} else {
		printGroups(w, doc)
	}

	fmt.Fprintf(w, "\n%d groups assembled, %d dropped\n", doc.Len(), len(report.Problems))
	if report.Saved {
		fmt.Fprintf(w, "Saved as %s\n", doc.ID)
	}
}

// openInput opens path, or stdin for "-".
func openInput(cmd *cobra.Command, path string) (string, io.Reader, func(), error) {
	if path == "-" {
		return "stdin", cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return "", nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return filepath.Base(path), f, func() { f.Close() }, nil
}

// flagOr returns the flag value when it was set on the command line and the
// configured value otherwise.
func flagOr(cmd *cobra.Command, name string, flag, configured bool) bool {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return configured
}
