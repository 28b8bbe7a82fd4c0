package kvstore

import "errors"

// Store is a small persistent key-value area. The attendance workflow keeps
// one record per daily key in it; a new day simply means a key that has
// never been written.
type Store interface {
	// Load returns the value for key. The boolean is false when the key
	// has never been saved or was removed.
	Load(key string) ([]byte, bool, error)

	// Save writes the value for key, replacing any previous value.
	Save(key string, value []byte) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}

var ErrInvalidKey = errors.New("invalid store key")
