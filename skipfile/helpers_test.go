package skipfile

import (
	"testing"

	"github.com/forestrie/go-skiplog/skiplist"
	"github.com/stretchr/testify/require"
)

// levelSequence hands out fixed levels in order.
type levelSequence []int

func (s *levelSequence) Level(maxLevel, size int) int {
	level := (*s)[0]
	*s = (*s)[1:]
	return level
}

func withLevels(levels ...int) skiplist.Option {
	seq := levelSequence(levels)
	return skiplist.WithLevelPolicy(&seq)
}

func laneValues(l *skiplist.List, level int) []uint32 {
	var values []uint32
	for _, ref := range l.Lane(level) {
		values = append(values, l.Node(ref).Value)
	}
	return values
}

// scenarioList is a10, b20, c15, d6 with levels 1, 0, 2, 0.
func scenarioList(t *testing.T) *skiplist.List {
	t.Helper()
	l, err := skiplist.New(skiplist.WithMaxLevel(4), withLevels(1, 0, 2, 0))
	require.NoError(t, err)
	return l.MustInsert("a", 10).MustInsert("b", 20).MustInsert("c", 15).MustInsert("d", 6)
}

// fileBuilder writes records directly so tests can produce files Marshal
// never would.
type fileBuilder struct {
	t *testing.T
	b []byte
}

func newFile(t *testing.T, level uint32) *fileBuilder {
	return &fileBuilder{t: t, b: AppendHeader(nil, Header{Level: level})}
}

func (f *fileBuilder) node(index uint32, n skiplist.Node) *fileBuilder {
	payload, err := n.MarshalBinary()
	require.NoError(f.t, err)
	return f.rawNode(index, payload)
}

func (f *fileBuilder) rawNode(index uint32, payload []byte) *fileBuilder {
	f.b = append(f.b, TagNode)
	f.b = appendU32LE(f.b, index)
	f.b = appendU32LE(f.b, uint32(len(payload)))
	f.b = append(f.b, payload...)
	return f
}

func (f *fileBuilder) head(index uint32, maxLevel int) *fileBuilder {
	return f.node(index, skiplist.NewHead(maxLevel))
}

func (f *fileBuilder) lane(level uint32, indices ...uint32) *fileBuilder {
	f.b = append(f.b, TagLane)
	f.b = appendU32LE(f.b, level)
	f.b = appendU32LE(f.b, uint32(len(indices)))
	for _, idx := range indices {
		f.b = appendU32LE(f.b, idx)
	}
	return f
}

func (f *fileBuilder) raw(b ...byte) *fileBuilder {
	f.b = append(f.b, b...)
	return f
}

func (f *fileBuilder) end() []byte {
	return append(f.b, EndMarker...)
}
