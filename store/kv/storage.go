// Package kv provides a string key-value store with wholesale overwrite semantics.
package kv

// Storage maps string keys to string values.
// SetItem replaces any previous value under the key.
type Storage interface {
	// GetItem returns the value stored under key; ok is false when the key is absent.
	GetItem(key string) (value string, ok bool, err error)

	// SetItem stores value under key, overwriting any previous value.
	SetItem(key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(key string) error
}
