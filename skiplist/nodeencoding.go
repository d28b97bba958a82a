package skiplist

import (
	"fmt"
	"unicode/utf8"
)

const (

	// Node payload layout, little endian
	//
	// .      | key len | key     | flags | value | level capacity |
	// bytes  |    4    | key len |   1   |   4   |       4        |
	//
	// The forward slots are not encoded. The file format carries them as lane
	// records and the decoder allocates LevelCapacity empty slots.

	NodeKeyLenBytes   = 4
	NodeFlagsBytes    = 1
	NodeValueBytes    = 4
	NodeCapacityBytes = 4

	// NodeFixedBytes is the payload size excluding the key bytes.
	NodeFixedBytes = NodeKeyLenBytes + NodeFlagsBytes + NodeValueBytes + NodeCapacityBytes

	// NodeFlagValuePresent is set when the node carries a value. It is clear
	// only for the head.
	NodeFlagValuePresent uint8 = 1
)

// EncodedSize returns the byte length of the node payload.
func (n Node) EncodedSize() int {
	return NodeFixedBytes + len(n.Key)
}

// AppendBinary appends the node payload to b.
func (n Node) AppendBinary(b []byte) ([]byte, error) {
	if !utf8.ValidString(n.Key) {
		return b, fmt.Errorf("%w: key is not valid utf-8", ErrMalformedNode)
	}
	if len(n.Forwards) == 0 {
		return b, fmt.Errorf("%w: node %q has no forward slots", ErrMalformedNode, n.Key)
	}

	var flags uint8
	var value uint32
	if n.HasValue {
		flags = NodeFlagValuePresent
		value = n.Value
	}

	b = appendU32LE(b, uint32(len(n.Key)))
	b = append(b, n.Key...)
	b = append(b, flags)
	b = appendU32LE(b, value)
	b = appendU32LE(b, uint32(len(n.Forwards)))
	return b, nil
}

// MarshalBinary returns the node payload.
func (n Node) MarshalBinary() ([]byte, error) {
	return n.AppendBinary(make([]byte, 0, n.EncodedSize()))
}

// UnmarshalBinary decodes a payload produced by MarshalBinary. The forward
// slots are allocated empty.
func (n *Node) UnmarshalBinary(b []byte) error {
	decoded, used, err := DecodeNode(b)
	if err != nil {
		return err
	}
	if used != len(b) {
		return fmt.Errorf("%w: %d trailing bytes", ErrMalformedNode, len(b)-used)
	}
	*n = decoded
	return nil
}

// DecodeNode decodes a node payload from the front of b and returns the node
// and the number of bytes consumed.
func DecodeNode(b []byte) (Node, int, error) {
	if len(b) < NodeKeyLenBytes {
		return Node{}, 0, fmt.Errorf("%w: node key length", ErrTruncatedRecord)
	}
	keyLen := uint64(readU32LE(b[0:4]))
	if uint64(len(b)) < uint64(NodeFixedBytes)+keyLen {
		return Node{}, 0, fmt.Errorf(
			"%w: node payload: want=%d, got=%d",
			ErrTruncatedRecord, uint64(NodeFixedBytes)+keyLen, len(b))
	}

	off := NodeKeyLenBytes
	key := b[off : off+int(keyLen)]
	if !utf8.Valid(key) {
		return Node{}, 0, fmt.Errorf("%w: key is not valid utf-8", ErrMalformedNode)
	}
	off += int(keyLen)

	flags := b[off]
	off += NodeFlagsBytes
	if flags&^NodeFlagValuePresent != 0 {
		return Node{}, 0, fmt.Errorf("%w: unknown flags %#02x", ErrMalformedNode, flags)
	}

	value := readU32LE(b[off : off+NodeValueBytes])
	off += NodeValueBytes

	capacity := readU32LE(b[off : off+NodeCapacityBytes])
	off += NodeCapacityBytes
	if capacity == 0 || capacity > MaxLevelLimit+1 {
		return Node{}, 0, fmt.Errorf("%w: level capacity %d", ErrMalformedNode, capacity)
	}

	n := Node{
		Key:      string(key),
		HasValue: flags&NodeFlagValuePresent != 0,
		Forwards: emptyForwards(int(capacity)),
	}
	if n.HasValue {
		n.Value = value
	} else if value != 0 {
		return Node{}, 0, fmt.Errorf("%w: value set without presence flag", ErrMalformedNode)
	}
	return n, off, nil
}
