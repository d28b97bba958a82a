package skiplist

import "fmt"

// Restore adopts an arena whose forward slots were rebuilt from storage.
//
// nodes is taken over by the list. head must index the sentinel head record
// and level is the highest level the caller believes is populated. Every
// lane reachable from the head is checked: refs must be in range and values
// strictly increasing. Each node must have a slot for the lane it is linked
// on but no more slots than the max level allows. Every node on a higher
// lane must also be on level 0. Nodes that are not reachable on level 0 are
// released.
//
// The size is recomputed from level 0. The max level is the larger of
// WithMaxLevel and the head capacity, and the head is widened if needed.
func Restore(nodes []Node, head Ref, level int, opts ...Option) (*List, error) {
	o, err := checkedOptions(opts...)
	if err != nil {
		return nil, err
	}
	if int(head) >= len(nodes) || !nodes[head].IsHead() {
		return nil, fmt.Errorf("%w: head ref %d does not identify a head record", ErrEmptyStructure, head)
	}

	maxLevel := max(o.MaxLevel, nodes[head].LevelCapacity()-1)
	if maxLevel > MaxLevelLimit {
		return nil, fmt.Errorf("%w: head capacity %d", ErrBadMaxLevel, nodes[head].LevelCapacity())
	}
	if level < 0 || level > maxLevel {
		return nil, fmt.Errorf("%w: level %d outside [0, %d]", ErrCorruptLane, level, maxLevel)
	}
	if grow := maxLevel + 1 - nodes[head].LevelCapacity(); grow > 0 {
		nodes[head].Forwards = append(nodes[head].Forwards, emptyForwards(grow)...)
	}

	l := &List{
		nodes:    nodes,
		keys:     map[string]Ref{},
		head:     head,
		maxLevel: maxLevel,
		level:    level,
		policy:   o.Policy,
	}

	onLevel0 := make([]bool, len(nodes))
	for i := 0; i <= maxLevel; i++ {
		if i > level && nodes[head].Forwards[i] != NoRef {
			return nil, fmt.Errorf("%w: level %d populated above list level %d", ErrCorruptLane, i, level)
		}
		if err := l.checkLane(i, onLevel0); err != nil {
			return nil, err
		}
	}

	for ref := range nodes {
		if Ref(ref) != head && !onLevel0[ref] {
			l.nodes[ref] = Node{}
			l.free = append(l.free, Ref(ref))
		}
	}
	for l.level > 0 && nodes[head].Forwards[l.level] == NoRef {
		l.level--
	}
	return l, nil
}

// checkLane walks one lane from the head. Level 0 must be checked first, it
// fills in onLevel0, the key index and the size.
func (l *List) checkLane(level int, onLevel0 []bool) error {
	var prev uint32
	cur := l.head
	for {
		next := l.nodes[cur].Forwards[level]
		if next == NoRef {
			return nil
		}
		if int(next) >= len(l.nodes) {
			return fmt.Errorf("%w: level %d: ref %d out of range", ErrCorruptLane, level, next)
		}
		n := l.nodes[next]
		if next == l.head || !n.HasValue || n.Key == HeadKey {
			return fmt.Errorf("%w: level %d: ref %d is not a valued node", ErrCorruptLane, level, next)
		}
		if level >= n.LevelCapacity() {
			return fmt.Errorf(
				"%w: level %d: node %q has capacity %d", ErrCorruptLane, level, n.Key, n.LevelCapacity())
		}
		if n.LevelCapacity() > l.maxLevel+1 {
			return fmt.Errorf(
				"%w: node %q has capacity %d above max level %d", ErrCorruptLane, n.Key, n.LevelCapacity(), l.maxLevel)
		}
		if cur != l.head && n.Value <= prev {
			return fmt.Errorf(
				"%w: level %d: value %d does not follow %d", ErrCorruptLane, level, n.Value, prev)
		}

		if level == 0 {
			if _, dup := l.keys[n.Key]; dup {
				return fmt.Errorf("%w: %w: %q", ErrCorruptLane, ErrDuplicateKey, n.Key)
			}
			l.keys[n.Key] = next
			onLevel0[next] = true
			l.size++
		} else if !onLevel0[next] {
			return fmt.Errorf("%w: level %d: node %q is not on level 0", ErrCorruptLane, level, n.Key)
		}

		prev = n.Value
		cur = next
	}
}
