package skipfile

import (
	"fmt"

	"github.com/forestrie/go-skiplog/skiplist"
)

// decoder rebuilds the node arena from the records reported by Scan.
type decoder struct {
	nodes   []skiplist.Node
	refs    map[uint32]skiplist.Ref
	head    skiplist.Ref
	headIdx uint32
	hasHead bool
}

// Unmarshal decodes a skip list previously produced by Marshal.
//
// Node records become the arena, lane records rebuild the forward slots and
// the result is handed to skiplist.Restore, which checks ordering and
// reachability. Any structural problem is reported as ErrFormatViolation,
// wrapping the more specific skiplist error where there is one. opts apply
// to the restored list; the max level is never less than the head capacity
// recorded in the file.
func Unmarshal(data []byte, opts ...skiplist.Option) (*skiplist.List, error) {
	d := decoder{refs: map[uint32]skiplist.Ref{}}
	h, err := Scan(data, d.visit)
	if err != nil {
		return nil, err
	}
	if !d.hasHead {
		return nil, fmt.Errorf("%w: %w: no head record", ErrFormatViolation, skiplist.ErrEmptyStructure)
	}

	l, err := skiplist.Restore(d.nodes, d.head, int(h.Level), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormatViolation, err)
	}
	return l, nil
}

func (d *decoder) visit(rec Record) error {
	if rec.Tag == TagNode {
		return d.addNode(rec)
	}
	return d.linkLane(rec)
}

func (d *decoder) addNode(rec Record) error {
	if rec.Index >= NoIndex {
		return fmt.Errorf("%w: node index %d out of range", ErrFormatViolation, rec.Index)
	}
	if _, dup := d.refs[rec.Index]; dup {
		return fmt.Errorf("%w: duplicate node index %d", ErrFormatViolation, rec.Index)
	}

	ref := skiplist.Ref(len(d.nodes))
	switch {
	case rec.Node.IsHead() && d.hasHead:
		return fmt.Errorf("%w: second head record at index %d", ErrFormatViolation, rec.Index)
	case rec.Node.IsHead():
		d.head, d.headIdx, d.hasHead = ref, rec.Index, true
	case !rec.Node.HasValue:
		return fmt.Errorf("%w: node index %d has no value", ErrFormatViolation, rec.Index)
	case rec.Node.Key == skiplist.HeadKey:
		return fmt.Errorf("%w: node index %d: %w", ErrFormatViolation, rec.Index, skiplist.ErrReservedKey)
	}

	d.refs[rec.Index] = ref
	d.nodes = append(d.nodes, rec.Node)
	return nil
}

// linkLane threads one lane. The entries are in list order; a leading head
// index and any NoIndex entries are skipped.
func (d *decoder) linkLane(rec Record) error {
	if !d.hasHead {
		return fmt.Errorf("%w: %w: lane before any head record", ErrFormatViolation, skiplist.ErrEmptyStructure)
	}

	level := int(rec.Level)
	cur := d.head
	for i, idx := range rec.Indices {
		if idx == NoIndex || (i == 0 && idx == d.headIdx) {
			continue
		}
		ref, ok := d.refs[idx]
		if !ok {
			return fmt.Errorf("%w: lane %d: unknown node index %d", ErrFormatViolation, level, idx)
		}
		if ref == d.head {
			return fmt.Errorf("%w: lane %d: head index at position %d", ErrFormatViolation, level, i)
		}
		if level >= d.nodes[cur].LevelCapacity() {
			return fmt.Errorf(
				"%w: lane %d: node %q has capacity %d",
				ErrFormatViolation, level, d.nodes[cur].Key, d.nodes[cur].LevelCapacity())
		}
		d.nodes[cur].Forwards[level] = ref
		cur = ref
	}
	return nil
}
