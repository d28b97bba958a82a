//go:build integration && azurite

package storage

import (
	"context"
	"testing"

	"github.com/forestrie/go-skiplog/skiplist"
	"github.com/forestrie/go-skiplog/skiptesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAzuriteListStore(t *testing.T) {
	tc := skiptesting.NewTestContext(t, skiptesting.TestConfig{
		TestLabelPrefix: "TestAzuriteListStore",
		LogLevel:        "INFO",
	})
	ctx := context.Background()

	blobs := NewBlobStore(tc.Log, tc.NewAzuriteStorer("TestAzuriteListStore"))
	s, err := NewListStore(tc.Log, blobs, WithCacheSize(0))
	require.NoError(t, err)

	l, err := skiplist.New()
	require.NoError(t, err)
	l.MustInsert("a", 10).MustInsert("b", 20).MustInsert("c", 15).MustInsert("d", 6)

	_, path, err := s.Create(ctx, l)
	require.NoError(t, err)

	loaded, err := s.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, l.Entries(), loaded.Entries())

	_, err = s.Load(ctx, ListPath([16]byte{0xff}))
	assert.ErrorIs(t, err, ErrNotFound)
}
