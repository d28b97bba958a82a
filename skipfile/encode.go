package skipfile

import (
	"fmt"

	"github.com/forestrie/go-skiplog/skiplist"
)

// Marshal encodes l into a new buffer.
func Marshal(l *skiplist.List) ([]byte, error) {
	return AppendMarshal(make([]byte, 0, EncodedSize(l)), l)
}

// AppendMarshal appends the encoding of l to b.
func AppendMarshal(b []byte, l *skiplist.List) ([]byte, error) {
	if l == nil || !l.HasHead() {
		return b, skiplist.ErrEmptyStructure
	}

	order, index := Enumerate(l)
	if len(order) > int(NoIndex) {
		return b, fmt.Errorf("%w: %d reachable nodes, at most %d", ErrTooManyNodes, len(order), NoIndex)
	}

	b = AppendHeader(b, Header{Level: uint32(l.Level())})

	for i, ref := range order {
		n := l.Node(ref)
		b = append(b, TagNode)
		b = appendU32LE(b, uint32(i))
		b = appendU32LE(b, uint32(n.EncodedSize()))

		var err error
		if b, err = n.AppendBinary(b); err != nil {
			return b, fmt.Errorf("node index %d: %w", i, err)
		}
	}

	for level := l.Level(); level >= 0; level-- {
		lane := l.Lane(level)
		b = append(b, TagLane)
		b = appendU32LE(b, uint32(level))
		b = appendU32LE(b, uint32(len(lane)+1))
		b = appendU32LE(b, index[l.Head()])
		for _, ref := range lane {
			idx, ok := index[ref]
			if !ok {
				idx = NoIndex
			}
			b = appendU32LE(b, idx)
		}
	}

	return append(b, EndMarker...), nil
}

// EncodedSize returns the exact length Marshal produces for l.
func EncodedSize(l *skiplist.List) int {
	if l == nil || !l.HasHead() {
		return 0
	}
	order, _ := Enumerate(l)
	size := HeaderBytes + EndMarkerBytes
	for _, ref := range order {
		size += NodeRecordFixedBytes + l.Node(ref).EncodedSize()
	}
	for level := l.Level(); level >= 0; level-- {
		size += LaneRecordFixedBytes + IndexBytes*(len(l.Lane(level))+1)
	}
	return size
}
