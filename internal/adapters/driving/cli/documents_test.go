package cli

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
	"github.com/custodia-labs/resp2seed/internal/core/ports/driving"
)

// saveTestDocument converts the ANMO sample into the archive.
func saveTestDocument(t *testing.T) string {
	t.Helper()
	f, err := os.Open(anmoFile)
	require.NoError(t, err)
	defer f.Close()

	report, err := conversionService.Convert(context.Background(), "RESP.IU.ANMO.00.BHZ", f, driving.ConvertOptions{Save: true})
	require.NoError(t, err)
	return report.Document.ID
}

func TestDocumentsCmd_Use(t *testing.T) {
	assert.Equal(t, "documents [doc-id]", documentsCmd.Use)
}

func TestDocumentsCmd_Empty(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, _, err := executeCommand("documents")

	require.NoError(t, err)
	assert.Contains(t, out, "No documents found.")
}

func TestDocumentsCmd_List(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	id := saveTestDocument(t)

	out, _, err := executeCommand("documents")

	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "H0 L0 E4")
	assert.Contains(t, out, "Total: 1 documents")
}

func TestDocumentsCmd_Show(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	id := saveTestDocument(t)

	out, _, err := executeCommand("documents", id)

	require.NoError(t, err)
	assert.Contains(t, out, "Document: "+id)
	assert.Contains(t, out, "B058 Channel Sensitivity Gain [S]")
	assert.Contains(t, out, `"+3.43480E+09"`)
}

func TestDocumentsCmd_ShowJSON(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	id := saveTestDocument(t)

	out, _, err := executeCommand("documents", "--json", id)
	require.NoError(t, err)

	var doc domain.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, id, doc.ID)
	assert.Len(t, doc.Entity, 4)
}

func TestDocumentsCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, _, err := executeCommand("documents", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentsCmd_Delete(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	id := saveTestDocument(t)

	out, _, err := executeCommand("documents", "--delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted "+id)

	_, _, err = executeCommand("documents", id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = executeCommand("documents", "--delete")
	assert.Error(t, err)
}
