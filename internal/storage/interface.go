package storage

// Provider is a durable key-value store for JSON-serialized records. Keys are
// logical: one global key for the medication list, one key per calendar date
// for that date's dose state, one key for settings.
//
// Read-modify-write sequences across keys are not transactional; the app
// assumes a single active caller (no multi-device sync).
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the stored value and whether the key was present.
	Get(key string) ([]byte, bool, error)
	// Set fully overwrites any prior value for the key.
	Set(key string, value []byte) error
	Delete(key string) error
	// Clear wipes all keys (factory reset).
	Clear() error

	// Utils
	GetConfigPath() string
}
