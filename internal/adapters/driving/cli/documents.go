package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	documentsJSON   bool
	documentsDelete bool
)

var documentsCmd = &cobra.Command{
	Use:   "documents [doc-id]",
	Short: "List or show archived documents",
	Long: `Without arguments, lists the documents saved with "convert --save".
With a document ID, prints every slot of that document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocuments,
}

func init() {
	documentsCmd.Flags().BoolVar(&documentsJSON, "json", false, "output as JSON")
	documentsCmd.Flags().BoolVar(&documentsDelete, "delete", false, "delete the given document")
	rootCmd.AddCommand(documentsCmd)
}

func runDocuments(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}
	ctx := context.Background()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		if documentsDelete {
			return errors.New("--delete needs a document ID")
		}
		docs, err := conversionService.Documents(ctx)
		if err != nil {
			return fmt.Errorf("failed to list documents: %w", err)
		}
		if preferJSON(out, documentsJSON) {
			return writeJSON(out, docs)
		}
		if len(docs) == 0 {
			cmd.Println("No documents found.")
			return nil
		}
		for _, d := range docs {
			cmd.Printf("  %s  %-30s %s  H%d L%d E%d\n", d.ID, d.Source,
				d.CreatedAt.Format("2006-01-02 15:04:05"), d.Header, d.Lookup, d.Entity)
		}
		cmd.Printf("\nTotal: %d documents\n", len(docs))
		return nil
	}

	id := args[0]
	if documentsDelete {
		if err := conversionService.DeleteDocument(ctx, id); err != nil {
			return fmt.Errorf("failed to delete document: %w", err)
		}
		cmd.Printf("Deleted %s\n", id)
		return nil
	}

	doc, err := conversionService.Document(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}
	if preferJSON(out, documentsJSON) {
		return writeJSON(out, doc)
	}
	cmd.Printf("Document: %s\n", doc.ID)
	cmd.Printf("Source:   %s\n", doc.Source)
	cmd.Printf("Created:  %s\n\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
	printBindings(out, doc)
	return nil
}
