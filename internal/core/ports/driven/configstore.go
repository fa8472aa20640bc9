package driven

import "github.com/custodia-labs/resp2seed/internal/core/domain"

// ConfigStore provides access to application configuration.
// Keys use dot notation ("convert.strict"); implementations map them onto
// whatever nesting their file format uses.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice configuration value.
	// Returns nil if key doesn't exist or isn't a slice.
	GetStringSlice(key string) []string

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Settings resolves the known keys into domain settings.
	Settings() domain.Settings

	// Path returns the configuration file path.
	Path() string
}
