package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
)

var templatesJSON bool

var templatesCmd = &cobra.Command{
	Use:   "templates [type]",
	Short: "List group templates",
	Long: `Lists the registered group templates, or the flattened fields of one
template when a group type is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplates,
}

func init() {
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid group type %q", args[0])
		}
		tmpl, err := conversionService.Template(domain.GroupType(n))
		if err != nil {
			return err
		}
		if preferJSON(out, templatesJSON) {
			return writeJSON(out, tmpl)
		}
		cmd.Printf("B%s %s (%s)\n\n", tmpl.Type, tmpl.Name, tmpl.Category)
		for i, f := range tmpl.Fields {
			cmd.Printf("  %3d  F%02d  %-40s %-8s %4d  %q\n", i, f.ID, f.Name, f.Kind, f.Length, f.Default)
		}
		return nil
	}

	templates := conversionService.Templates()
	if preferJSON(out, templatesJSON) {
		return writeJSON(out, templates)
	}
	if len(templates) == 0 {
		cmd.Println("No templates registered.")
		return nil
	}
	for _, t := range templates {
		cmd.Printf("  B%s  %-34s %-7s %3d slots\n", t.Type, t.Name, t.Category, t.Slots)
	}
	cmd.Printf("\nTotal: %d templates\n", len(templates))
	return nil
}
