package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-skiplog/skipfile"
	"github.com/forestrie/go-skiplog/skiplist"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	TagLevel = "skiplevel"
	TagSize  = "skipsize"
)

// ListStore saves and loads whole skip lists through an object store.
//
// Loaded data is cached in encoded form, keyed by storage path, so every
// Load returns an independent list. Save drops the cached copy for its path
// before writing.
type ListStore struct {
	log   logger.Logger
	store ObjectReaderWriter
	opts  Options
	cache *lru.Cache[string, []byte]
}

func NewListStore(log logger.Logger, store ObjectReaderWriter, opts ...Option) (*ListStore, error) {
	s := &ListStore{
		log:   log,
		store: store,
		opts:  Options{CacheSize: DefaultCacheSize},
	}
	for _, o := range opts {
		o(&s.opts)
	}
	if s.opts.CacheSize < 0 {
		return nil, fmt.Errorf("cache size %d is negative", s.opts.CacheSize)
	}
	if s.opts.CacheSize > 0 {
		cache, err := lru.New[string, []byte](s.opts.CacheSize)
		if err != nil {
			return nil, err
		}
		s.cache = cache
	}
	return s, nil
}

// Create saves l under a freshly allocated list identity.
func (s *ListStore) Create(ctx context.Context, l *skiplist.List) (uuid.UUID, string, error) {
	listID, storagePath := NewListPath()
	if err := s.Save(ctx, storagePath, l); err != nil {
		return uuid.Nil, "", err
	}
	return listID, storagePath, nil
}

// Save encodes l and writes it to storagePath.
func (s *ListStore) Save(ctx context.Context, storagePath string, l *skiplist.List) error {
	data, err := skipfile.Marshal(l)
	if err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Remove(storagePath)
	}

	tags := map[string]string{
		TagLevel: strconv.Itoa(l.Level()),
		TagSize:  strconv.Itoa(l.Len()),
	}
	if err = s.store.Put(ctx, storagePath, data, tags); err != nil {
		return err
	}
	s.log.Infof("saved skip list %s: %d entries, level %d, %d bytes", storagePath, l.Len(), l.Level(), len(data))
	return nil
}

// Load reads and decodes the list at storagePath.
func (s *ListStore) Load(ctx context.Context, storagePath string) (*skiplist.List, error) {
	data, cached := s.cached(storagePath)
	if !cached {
		var err error
		if data, err = s.store.Get(ctx, storagePath); err != nil {
			return nil, err
		}
	}

	l, err := skipfile.Unmarshal(data, s.opts.ListOptions...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", storagePath, err)
	}
	if !cached && s.cache != nil {
		s.cache.Add(storagePath, data)
	}
	s.log.Debugf("loaded skip list %s: %d entries, cached %v", storagePath, l.Len(), cached)
	return l, nil
}

// LoadRaw returns the encoded list at storagePath without decoding it. The
// result may be shared with the cache and must not be modified.
func (s *ListStore) LoadRaw(ctx context.Context, storagePath string) ([]byte, error) {
	if data, ok := s.cached(storagePath); ok {
		return data, nil
	}
	return s.store.Get(ctx, storagePath)
}

func (s *ListStore) cached(storagePath string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(storagePath)
}
