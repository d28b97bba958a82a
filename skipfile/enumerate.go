package skipfile

import "github.com/forestrie/go-skiplog/skiplist"

// Enumerate numbers every node reachable from the head.
//
// The traversal is breadth first over all non empty forward slots, in slot
// order, and a node is numbered the first time it is seen. order[i] is the
// ref of the node with index i, so order[0] is always the head. The returned
// map is the inverse.
func Enumerate(l *skiplist.List) ([]skiplist.Ref, map[skiplist.Ref]uint32) {
	head := l.Head()
	order := []skiplist.Ref{head}
	index := map[skiplist.Ref]uint32{head: 0}

	for next := 0; next < len(order); next++ {
		for _, fwd := range l.Node(order[next]).Forwards {
			if fwd == skiplist.NoRef {
				continue
			}
			if _, seen := index[fwd]; seen {
				continue
			}
			index[fwd] = uint32(len(order))
			order = append(order, fwd)
		}
	}
	return order, index
}
