package skiplist

// Node is a single arena record.
//
// Forwards has one slot per level the node participates in. Slot i is the
// Ref of the successor on level i, or NoRef.
type Node struct {
	Key      string
	Value    uint32
	HasValue bool
	Forwards []Ref
}

// NewNode returns a valued node linked on levels 0..level, all slots empty.
func NewNode(key string, value uint32, level int) Node {
	return Node{
		Key:      key,
		Value:    value,
		HasValue: true,
		Forwards: emptyForwards(level + 1),
	}
}

// NewHead returns the sentinel head with a slot for every level up to maxLevel.
func NewHead(maxLevel int) Node {
	return Node{
		Key:      HeadKey,
		Forwards: emptyForwards(maxLevel + 1),
	}
}

// LevelCapacity returns the number of forward slots.
func (n Node) LevelCapacity() int {
	return len(n.Forwards)
}

// Next returns the successor on level, or NoRef if the node is not linked
// that high.
func (n Node) Next(level int) Ref {
	if level >= len(n.Forwards) {
		return NoRef
	}
	return n.Forwards[level]
}

// IsHead reports whether n is the sentinel head.
func (n Node) IsHead() bool {
	return n.Key == HeadKey && !n.HasValue
}

func emptyForwards(n int) []Ref {
	fwd := make([]Ref, n)
	for i := range fwd {
		fwd[i] = NoRef
	}
	return fwd
}
