// Package store provides the local key-value persistence boundary.
//
// The journal, the capital amount and the UI settings are three
// independent entries; each is stored as an opaque string payload.
package store

// Well-known entry keys.
const (
	KeyJournal  = "tradeJournal"
	KeyCapital  = "tradeCapital"
	KeySettings = "app-settings"
)

// KV is a minimal key-value store. Get returns ErrKeyNotFound from the
// errors package when the key has never been written.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
