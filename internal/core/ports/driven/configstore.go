package driven

// ConfigStore provides access to persistent CLI defaults.
// Implementations handle persistence (e.g., TOML files) and type conversion.
//
// Recognised keys:
//
//	index_path   default index directory, overridden by --index-path
//	corpus_path  external corpus JSON file; empty means the embedded corpus
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// Set stores a configuration value and persists it immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
