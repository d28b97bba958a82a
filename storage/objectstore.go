package storage

import "context"

// ObjectReader reads whole objects by storage path.
type ObjectReader interface {
	// Get returns the object data. A missing object is reported as
	// ErrNotFound.
	Get(ctx context.Context, path string) ([]byte, error)
}

type ObjectWriter interface {
	// Put creates or replaces the object at path. tags are recorded where
	// the backend supports them and ignored otherwise.
	Put(ctx context.Context, path string, data []byte, tags map[string]string) error
}

type ObjectReaderWriter interface {
	ObjectReader
	ObjectWriter
}
