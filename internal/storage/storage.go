package storage

// KV is the flat blob namespace the stores persist into. Every store writes
// its whole serialized state under one key (write-through), mirroring the
// browser-local storage layout this service replaces.
type KV interface {
	// Get returns the blob stored under key, or domain.ErrNotFound.
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	// Delete removes the blob under key; absent keys are a no-op.
	Delete(key string) error
}
