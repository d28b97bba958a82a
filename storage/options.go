package storage

import "github.com/forestrie/go-skiplog/skiplist"

const (
	DefaultCacheSize = 16
)

type Options struct {
	// CacheSize is the number of encoded lists ListStore keeps in memory.
	// Zero disables the cache.
	CacheSize int

	// ListOptions apply to every list ListStore loads.
	ListOptions []skiplist.Option
}

type Option func(*Options)

func WithCacheSize(size int) Option {
	return func(o *Options) {
		o.CacheSize = size
	}
}

func WithListOptions(opts ...skiplist.Option) Option {
	return func(o *Options) {
		o.ListOptions = append(o.ListOptions, opts...)
	}
}
