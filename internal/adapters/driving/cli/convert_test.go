package cli

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
)

const anmoFile = "testdata/RESP.IU.ANMO.00.BHZ"

func TestConvertCmd_Use(t *testing.T) {
	assert.Equal(t, "convert [file]", convertCmd.Use)
}

func TestConvertCmd_Flags(t *testing.T) {
	for _, name := range []string{"json", "seed-volume", "strict", "save", "fields"} {
		flag := convertCmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, "false", flag.DefValue, name)
	}
}

func TestConvertCmd_RequiresExactlyOneArg(t *testing.T) {
	_, _, err := executeCommand("convert")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestConvertCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, _, err := executeCommand("convert", "testdata/does-not-exist")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "opening input")
}

func TestConvertCmd_Table(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, stderr, err := executeCommand("convert", anmoFile)

	require.NoError(t, err)
	assert.Contains(t, out, "Source:   RESP.IU.ANMO.00.BHZ")
	assert.Contains(t, out, "Entity (4):")
	assert.Contains(t, out, "B053  Response Poles and Zeros")
	assert.Contains(t, out, "4 groups assembled, 0 dropped")
	assert.NotContains(t, out, "Header (")
	assert.Empty(t, stderr)
}

func TestConvertCmd_Fields(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, _, err := executeCommand("convert", "--fields", anmoFile)

	require.NoError(t, err)
	assert.Contains(t, out, "B050 Station Identifier [S]")
	assert.Contains(t, out, `"ANMO"`)
	assert.Contains(t, out, `"2008,182,00:00:00.0000~"`)
}

func TestConvertCmd_JSON(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, _, err := executeCommand("convert", "--json", anmoFile)
	require.NoError(t, err)

	var report struct {
		Document domain.Document `json:"document"`
		Problems []string        `json:"problems"`
		Saved    bool            `json:"saved"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Document.Entity, 4)
	assert.Empty(t, report.Problems)
	assert.False(t, report.Saved)

	in, ok := report.Document.Entity[2].Value(5)
	require.True(t, ok)
	assert.Equal(t, "4", in)

	poles := report.Document.Entity[2].Values(15)
	require.GreaterOrEqual(t, len(poles), 2)
	assert.Equal(t, []string{"-5.92420E-02", "-3.70040E-02"}, poles[:2])
}

func TestConvertCmd_SeedVolume(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, _, err := executeCommand("convert", "--seed-volume", anmoFile)

	require.NoError(t, err)
	assert.Contains(t, out, "Header (1):")
	assert.Contains(t, out, "Lookup (3):")
	assert.Contains(t, out, "8 groups assembled")
}

func TestConvertCmd_SeedVolumeFromSettings(t *testing.T) {
	cleanup := setupTestServicesWith(t, domain.Settings{SeedVolume: true})
	defer cleanup()

	out, _, err := executeCommand("convert", anmoFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Header (1):")

	out, _, err = executeCommand("convert", "--seed-volume=false", anmoFile)
	require.NoError(t, err)
	assert.NotContains(t, out, "Header (")
}

func TestConvertCmd_ProblemsAreWarnings(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, stderr, err := executeCommand("convert", "testdata/broken.resp")

	require.NoError(t, err)
	assert.Contains(t, out, "2 groups assembled, 1 dropped")
	assert.Contains(t, stderr, "warning:")
	assert.Contains(t, stderr, "no template for group type 099")
}

func TestConvertCmd_Strict(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, _, err := executeCommand("convert", "--strict", "testdata/broken.resp")

	require.Error(t, err)
	assert.ErrorIs(t, err, errProblems)
	assert.Contains(t, err.Error(), "1 of 3")
}

func TestConvertCmd_StrictFromSettings(t *testing.T) {
	cleanup := setupTestServicesWith(t, domain.Settings{Strict: true})
	defer cleanup()

	_, _, err := executeCommand("convert", "testdata/broken.resp")
	assert.ErrorIs(t, err, errProblems)

	_, _, err = executeCommand("convert", "--strict=false", "testdata/broken.resp")
	assert.NoError(t, err)
}

func TestConvertCmd_Stdin(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	data, err := os.ReadFile(anmoFile)
	require.NoError(t, err)
	rootCmd.SetIn(strings.NewReader(string(data)))

	out, _, err := executeCommand("convert", "-")

	require.NoError(t, err)
	assert.Contains(t, out, "Source:   stdin")
	assert.Contains(t, out, "Entity (4):")
}

func TestConvertCmd_Save(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, _, err := executeCommand("convert", "--save", anmoFile)

	require.NoError(t, err)
	assert.Contains(t, out, "Saved as ")

	docs, err := conversionService.Documents(t.Context())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Contains(t, out, docs[0].ID)
	assert.Equal(t, "RESP.IU.ANMO.00.BHZ", docs[0].Source)
}
