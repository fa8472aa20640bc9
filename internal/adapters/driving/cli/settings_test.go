package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resp2seed/internal/adapters/driven/config/file"
	"github.com/custodia-labs/resp2seed/internal/core/domain"
)

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range settingsCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "get")
	assert.Contains(t, names, "set")
}

func TestSettingsCmd_Show(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, _, err := executeCommand("settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Config file: "+configStore.Path())
	for _, k := range settingKeys {
		assert.Contains(t, out, k.key)
	}
}

func TestSettingsCmd_SetAndGetBool(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, _, err := executeCommand("settings", "get", domain.KeySeedVolume)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, _, err = executeCommand("settings", "set", domain.KeySeedVolume, "true")
	require.NoError(t, err)
	assert.Equal(t, "convert.seed_volume = true\n", out)

	out, _, err = executeCommand("settings", "get", domain.KeySeedVolume)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
	assert.True(t, currentSettings().SeedVolume)
}

func TestSettingsCmd_SetSchemaPaths(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, _, err := executeCommand("settings", "set", domain.KeySchemaPaths, "a.toml,b.yaml", "c.toml")
	require.NoError(t, err)

	out, _, err := executeCommand("settings", "get", domain.KeySchemaPaths)
	require.NoError(t, err)
	assert.Equal(t, "a.toml,b.yaml,c.toml\n", out)
	assert.Equal(t, []string{"a.toml", "b.yaml", "c.toml"}, currentSettings().SchemaPaths)

	_, _, err = executeCommand("settings", "set", domain.KeySchemaPaths, "")
	require.NoError(t, err)
	assert.Empty(t, currentSettings().SchemaPaths)
}

func TestSettingsCmd_Persists(t *testing.T) {
	dir := t.TempDir()
	cfg, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	SetServices(nil, cfg)
	defer SetServices(nil, nil)

	_, _, err = executeCommand("settings", "set", domain.KeyStrict, "true")
	require.NoError(t, err)
	_, _, err = executeCommand("settings", "set", domain.KeyStorageDir, filepath.Join(dir, "archive"))
	require.NoError(t, err)

	reopened, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	s := reopened.Settings()
	assert.True(t, s.Strict)
	assert.Equal(t, filepath.Join(dir, "archive"), s.StorageDir)
}

func TestSettingsCmd_StrictAppliesToConvert(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, _, err := executeCommand("convert", "testdata/broken.resp")
	require.NoError(t, err)

	_, _, err = executeCommand("settings", "set", domain.KeyStrict, "yes")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = executeCommand("settings", "set", domain.KeyStrict, "true")
	require.NoError(t, err)

	_, _, err = executeCommand("convert", "testdata/broken.resp")
	assert.ErrorIs(t, err, errProblems)
}

func TestSettingsCmd_UnknownKey(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, _, err := executeCommand("settings", "set", "convert.speed", "fast")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "unknown setting")

	_, _, err = executeCommand("settings", "get", "convert.speed")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCmd_BoolTakesOneValue(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, _, err := executeCommand("settings", "set", domain.KeyStrict, "true", "false")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
