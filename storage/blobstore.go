package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
)

// blobReaderWriter is the part of *azblob.Storer the BlobStore needs.
type blobReaderWriter interface {
	Reader(ctx context.Context, identity string, opts ...azblob.Option) (*azblob.ReaderResponse, error)
	Put(ctx context.Context, identity string, source io.ReadSeekCloser, opts ...azblob.Option) (*azblob.WriteResponse, error)
}

// BlobStore keeps objects as blobs in a single container. Storage paths are
// used as blob names and tags become blob index tags.
type BlobStore struct {
	log   logger.Logger
	store blobReaderWriter
}

func NewBlobStore(log logger.Logger, store blobReaderWriter) *BlobStore {
	return &BlobStore{log: log, store: store}
}

func (s *BlobStore) Get(ctx context.Context, storagePath string) ([]byte, error) {
	rr, err := s.store.Reader(ctx, storagePath)
	if err != nil {
		return nil, WrapBlobNotFound(err)
	}
	if rr == nil || rr.Reader == nil {
		return nil, fmt.Errorf("%w: %s: no content", ErrNotFound, storagePath)
	}
	defer rr.Reader.Close()

	data, err := io.ReadAll(rr.Reader)
	if err != nil {
		return nil, err
	}
	s.log.Debugf("read %d bytes from blob %s", len(data), storagePath)
	return data, nil
}

func (s *BlobStore) Put(ctx context.Context, storagePath string, data []byte, tags map[string]string) error {
	var opts []azblob.Option
	if len(tags) > 0 {
		opts = append(opts, azblob.WithTags(tags))
	}
	_, err := s.store.Put(ctx, storagePath, azblob.NewBytesReaderCloser(data), opts...)
	if err != nil {
		return err
	}
	s.log.Debugf("wrote %d bytes to blob %s", len(data), storagePath)
	return nil
}
