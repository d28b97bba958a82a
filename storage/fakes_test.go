package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/datatrails/go-datatrails-common/azblob"
)

// fakeBlobs is an in memory stand in for *azblob.Storer.
type fakeBlobs struct {
	blobs   map[string][]byte
	puts    int
	readErr error
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{blobs: map[string][]byte{}}
}

func (f *fakeBlobs) Reader(ctx context.Context, identity string, opts ...azblob.Option) (*azblob.ReaderResponse, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	data, ok := f.blobs[identity]
	if !ok {
		return nil, fmt.Errorf("%s: %w", identity, ErrNotFound)
	}
	return &azblob.ReaderResponse{
		Reader:        io.NopCloser(bytes.NewReader(data)),
		ContentLength: int64(len(data)),
	}, nil
}

func (f *fakeBlobs) Put(ctx context.Context, identity string, source io.ReadSeekCloser, opts ...azblob.Option) (*azblob.WriteResponse, error) {
	defer source.Close()
	data, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}
	f.blobs[identity] = data
	f.puts++
	return &azblob.WriteResponse{}, nil
}

// countingStore records calls made through the ObjectReaderWriter interface.
type countingStore struct {
	ObjectReaderWriter
	gets int
	tags map[string]map[string]string
}

func (c *countingStore) Get(ctx context.Context, path string) ([]byte, error) {
	c.gets++
	return c.ObjectReaderWriter.Get(ctx, path)
}

func (c *countingStore) Put(ctx context.Context, path string, data []byte, tags map[string]string) error {
	if c.tags == nil {
		c.tags = map[string]map[string]string{}
	}
	c.tags[path] = tags
	return c.ObjectReaderWriter.Put(ctx, path, data, tags)
}
