package skiplist

import (
	"fmt"
	"unicode/utf8"
)

// List is a skip list over an arena of nodes.
//
// The zero value has no head and every mutating operation on it fails with
// ErrEmptyStructure. Use New or Restore.
type List struct {
	nodes []Node
	free  []Ref
	keys  map[string]Ref

	head     Ref
	maxLevel int
	level    int
	size     int
	policy   LevelPolicy
}

// New returns an empty list holding only the head.
func New(opts ...Option) (*List, error) {
	o, err := checkedOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &List{
		nodes:    []Node{NewHead(o.MaxLevel)},
		keys:     map[string]Ref{},
		head:     0,
		maxLevel: o.MaxLevel,
		policy:   o.Policy,
	}, nil
}

// Head returns the arena index of the head node.
func (l *List) Head() Ref { return l.head }

// Node returns the record for ref. The Forwards slice is shared with the
// list and must not be modified. Out of range refs panic.
func (l *List) Node(ref Ref) Node { return l.nodes[ref] }

// Level returns the highest level holding at least one real node, or 0.
func (l *List) Level() int { return l.level }

// MaxLevel returns the configured level ceiling.
func (l *List) MaxLevel() int { return l.maxLevel }

// Len returns the number of real nodes.
func (l *List) Len() int { return l.size }

// HasHead reports whether the list was initialized with a head node. It is
// false only for the zero value.
func (l *List) HasHead() bool {
	return int(l.head) < len(l.nodes)
}

// Insert adds key with ordering value.
//
// Values are unique: inserting a value that is already present fails with
// ErrDuplicateValue and leaves the list unchanged. Keys are unique too, and
// must be valid UTF-8 so the list can be encoded.
func (l *List) Insert(key string, value uint32) error {
	if !l.HasHead() {
		return ErrEmptyStructure
	}
	if key == HeadKey {
		return fmt.Errorf("%w: %q", ErrReservedKey, key)
	}
	if !utf8.ValidString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if _, ok := l.keys[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}

	update := make([]Ref, l.maxLevel+1)
	cur := l.findUpdates(value, update)
	if next := l.nodes[cur].Forwards[0]; next != NoRef && l.nodes[next].Value == value {
		return fmt.Errorf("%w: %d", ErrDuplicateValue, value)
	}

	level := l.drawLevel()
	if level > l.level {
		for i := l.level + 1; i <= level; i++ {
			update[i] = l.head
		}
		l.level = level
	}

	ref := l.alloc(NewNode(key, value, level))
	for i := 0; i <= level; i++ {
		prev := &l.nodes[update[i]]
		l.nodes[ref].Forwards[i] = prev.Forwards[i]
		prev.Forwards[i] = ref
	}
	l.keys[key] = ref
	l.size++
	return nil
}

// MustInsert is Insert for callers that know the insert cannot fail. It
// returns the list so inserts can be chained.
func (l *List) MustInsert(key string, value uint32) *List {
	if err := l.Insert(key, value); err != nil {
		panic(err)
	}
	return l
}

// Search reports whether value is present.
func (l *List) Search(value uint32) bool {
	_, ok := l.Find(value)
	return ok
}

// Find returns the key stored with value.
func (l *List) Find(value uint32) (string, bool) {
	if !l.HasHead() {
		return "", false
	}
	cur := l.findUpdates(value, nil)
	next := l.nodes[cur].Forwards[0]
	if next == NoRef || l.nodes[next].Value != value {
		return "", false
	}
	return l.nodes[next].Key, true
}

// Lookup returns the value stored with key.
func (l *List) Lookup(key string) (uint32, bool) {
	ref, ok := l.keys[key]
	if !ok {
		return 0, false
	}
	return l.nodes[ref].Value, true
}

// Remove unlinks the node holding value from every level it occupies.
//
// A value that is not present returns false and leaves the list unchanged.
// If an update node on one of the target's levels does not point at the
// target the list is corrupt and ErrNodeMismatch is returned before anything
// is relinked.
func (l *List) Remove(value uint32) (bool, error) {
	if !l.HasHead() {
		return false, ErrEmptyStructure
	}

	update := make([]Ref, l.maxLevel+1)
	for i := range update {
		update[i] = NoRef
	}
	cur := l.findUpdates(value, update)

	target := l.nodes[cur].Forwards[0]
	if target == NoRef || l.nodes[target].Value != value {
		return false, nil
	}
	victim := l.nodes[target]

	for i := l.maxLevel; i >= 0; i-- {
		if i >= victim.LevelCapacity() {
			continue
		}
		if update[i] == NoRef || l.nodes[update[i]].Forwards[i] != target {
			return false, fmt.Errorf(
				"%w: value=%d, level=%d, capacity=%d",
				ErrNodeMismatch, value, i, victim.LevelCapacity())
		}
	}
	for i := 0; i < min(victim.LevelCapacity(), len(update)); i++ {
		l.nodes[update[i]].Forwards[i] = victim.Forwards[i]
	}

	l.release(target)
	for l.level > 0 && l.nodes[l.head].Forwards[l.level] == NoRef {
		l.level--
	}
	l.size--
	return true, nil
}

// Lane returns the refs linked on level in chain order, excluding the head.
func (l *List) Lane(level int) []Ref {
	if !l.HasHead() || level < 0 || level > l.maxLevel {
		return nil
	}
	var lane []Ref
	for next := l.nodes[l.head].Forwards[level]; next != NoRef; next = l.nodes[next].Forwards[level] {
		lane = append(lane, next)
	}
	return lane
}

// Entries returns every key/value pair in ascending value order.
func (l *List) Entries() []Entry {
	lane := l.Lane(0)
	entries := make([]Entry, 0, len(lane))
	for _, ref := range lane {
		entries = append(entries, Entry{Key: l.nodes[ref].Key, Value: l.nodes[ref].Value})
	}
	return entries
}

// findUpdates descends from the top populated level. On each level it
// advances while the successor's value is less than value and records the
// node it stops at in update (when update is not nil). It returns the level
// 0 stopping node.
func (l *List) findUpdates(value uint32, update []Ref) Ref {
	cur := l.head
	for i := l.level; i >= 0; i-- {
		for {
			next := l.nodes[cur].Forwards[i]
			if next == NoRef || l.nodes[next].Value >= value {
				break
			}
			cur = next
		}
		if update != nil {
			update[i] = cur
		}
	}
	return cur
}

func (l *List) drawLevel() int {
	level := l.policy.Level(l.maxLevel, l.size)
	return min(max(level, 0), l.maxLevel)
}

func (l *List) alloc(n Node) Ref {
	if len(l.free) > 0 {
		ref := l.free[len(l.free)-1]
		l.free = l.free[:len(l.free)-1]
		l.nodes[ref] = n
		return ref
	}
	l.nodes = append(l.nodes, n)
	return Ref(len(l.nodes) - 1)
}

func (l *List) release(ref Ref) {
	if cur, ok := l.keys[l.nodes[ref].Key]; ok && cur == ref {
		delete(l.keys, l.nodes[ref].Key)
	}
	l.nodes[ref] = Node{}
	l.free = append(l.free, ref)
}
