package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arena builds head + valued nodes; node i+1 gets values[i] and caps[i] slots.
func arena(maxLevel int, values []uint32, caps []int) []Node {
	nodes := []Node{NewHead(maxLevel)}
	for i, v := range values {
		nodes = append(nodes, NewNode(string(rune('a'+i)), v, caps[i]-1))
	}
	return nodes
}

// link chains refs on level starting from the head at ref 0.
func link(nodes []Node, level int, refs ...Ref) {
	cur := Ref(0)
	for _, ref := range refs {
		nodes[cur].Forwards[level] = ref
		cur = ref
	}
}

func TestRestore(t *testing.T) {
	nodes := arena(3, []uint32{6, 10, 15, 20}, []int{1, 2, 3, 1})
	link(nodes, 0, 1, 2, 3, 4)
	link(nodes, 1, 2, 3)
	link(nodes, 2, 3)

	l, err := Restore(nodes, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, 4, l.Len())
	assert.Equal(t, 2, l.Level())
	assert.Equal(t, DefaultMaxLevel, l.MaxLevel())
	assert.Equal(t, DefaultMaxLevel+1, l.Node(l.Head()).LevelCapacity())
	assert.Equal(t, []uint32{10, 15}, laneValues(l, 1))
	assert.True(t, l.Search(15))
	requireInvariants(t, l)

	// the restored list keeps working
	require.NoError(t, l.Insert("e", 12))
	removed, err := l.Remove(15)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []uint32{6, 10, 12, 20}, laneValues(l, 0))
	requireInvariants(t, l)
}

func TestRestoreAdoptsHeadCapacity(t *testing.T) {
	nodes := arena(5, []uint32{1}, []int{6})
	for level := 0; level <= 5; level++ {
		link(nodes, level, 1)
	}

	l, err := Restore(nodes, 0, 5, WithMaxLevel(2))
	require.NoError(t, err)
	assert.Equal(t, 5, l.MaxLevel())
	assert.Equal(t, 5, l.Level())
}

func TestRestoreNormalizesLevelAndFreesUnreachable(t *testing.T) {
	nodes := arena(4, []uint32{1, 2}, []int{1, 3})
	link(nodes, 0, 1)

	l, err := Restore(nodes, 0, 3, WithMaxLevel(4))
	require.NoError(t, err)
	assert.Equal(t, 0, l.Level())
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, []Ref{2}, l.free)
	_, ok := l.Lookup("b")
	assert.False(t, ok)
}

func TestRestoreRejects(t *testing.T) {
	tests := []struct {
		name    string
		build   func() ([]Node, Ref, int)
		wantErr error
	}{
		{
			name: "head out of range",
			build: func() ([]Node, Ref, int) {
				return arena(2, nil, nil), 3, 0
			},
			wantErr: ErrEmptyStructure,
		},
		{
			name: "head is a valued node",
			build: func() ([]Node, Ref, int) {
				return arena(2, []uint32{1}, []int{1}), 1, 0
			},
			wantErr: ErrEmptyStructure,
		},
		{
			name: "level above max",
			build: func() ([]Node, Ref, int) {
				return arena(2, nil, nil), 0, DefaultMaxLevel + 1
			},
			wantErr: ErrCorruptLane,
		},
		{
			name: "ref out of range",
			build: func() ([]Node, Ref, int) {
				nodes := arena(2, []uint32{1}, []int{1})
				link(nodes, 0, 7)
				return nodes, 0, 0
			},
			wantErr: ErrCorruptLane,
		},
		{
			name: "lane out of order",
			build: func() ([]Node, Ref, int) {
				nodes := arena(2, []uint32{5, 3}, []int{1, 1})
				link(nodes, 0, 1, 2)
				return nodes, 0, 0
			},
			wantErr: ErrCorruptLane,
		},
		{
			name: "cycle",
			build: func() ([]Node, Ref, int) {
				nodes := arena(2, []uint32{5, 6}, []int{1, 1})
				link(nodes, 0, 1, 2, 1)
				return nodes, 0, 0
			},
			wantErr: ErrCorruptLane,
		},
		{
			name: "linked above capacity",
			build: func() ([]Node, Ref, int) {
				nodes := arena(2, []uint32{5}, []int{1})
				link(nodes, 0, 1)
				nodes[0].Forwards[1] = 1
				return nodes, 0, 1
			},
			wantErr: ErrCorruptLane,
		},
		{
			name: "node capacity above max level",
			build: func() ([]Node, Ref, int) {
				nodes := arena(2, []uint32{5}, []int{DefaultMaxLevel + 2})
				link(nodes, 0, 1)
				return nodes, 0, 0
			},
			wantErr: ErrCorruptLane,
		},
		{
			name: "higher lane not on level 0",
			build: func() ([]Node, Ref, int) {
				nodes := arena(2, []uint32{5, 6}, []int{2, 2})
				link(nodes, 0, 1)
				link(nodes, 1, 2)
				return nodes, 0, 1
			},
			wantErr: ErrCorruptLane,
		},
		{
			name: "populated above level",
			build: func() ([]Node, Ref, int) {
				nodes := arena(2, []uint32{5}, []int{2})
				link(nodes, 0, 1)
				link(nodes, 1, 1)
				return nodes, 0, 0
			},
			wantErr: ErrCorruptLane,
		},
		{
			name: "head linked to itself",
			build: func() ([]Node, Ref, int) {
				nodes := arena(2, nil, nil)
				nodes[0].Forwards[0] = 0
				return nodes, 0, 0
			},
			wantErr: ErrCorruptLane,
		},
		{
			name: "duplicate key",
			build: func() ([]Node, Ref, int) {
				nodes := arena(2, []uint32{5, 6}, []int{1, 1})
				nodes[2].Key = nodes[1].Key
				link(nodes, 0, 1, 2)
				return nodes, 0, 0
			},
			wantErr: ErrDuplicateKey,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, head, level := tt.build()
			_, err := Restore(nodes, head, level)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
