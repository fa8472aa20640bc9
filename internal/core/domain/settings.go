package domain

// Configuration keys, in dot notation.
const (
	KeySchemaPaths = "schema.paths"
	KeySeedVolume  = "convert.seed_volume"
	KeyStrict      = "convert.strict"
	KeyStorageDir  = "storage.dir"
)

// Settings is the resolved application configuration.
type Settings struct {
	// SchemaPaths lists template files loaded over the built-in table.
	SchemaPaths []string
	// SeedVolume pre-seeds the header and lookup buckets.
	SeedVolume bool
	// Strict treats any dropped group as a failed conversion.
	Strict bool
	// StorageDir is where the document archive lives. Empty selects the default.
	StorageDir string
}
