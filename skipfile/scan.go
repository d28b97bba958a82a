package skipfile

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-skiplog/skiplist"
)

// Record is a single node or lane record as found by Scan.
type Record struct {
	Tag    byte
	Offset int // of the tag byte

	// TagNode
	Index uint32
	Node  skiplist.Node

	// TagLane
	Level   uint32
	Indices []uint32
}

// Scan checks the framing of data and calls visit for every record in file
// order. It verifies the magic, record lengths, that node records precede
// lane records, that lane levels do not exceed the header level, and that the
// end marker is present and final. It does not resolve indices; see
// Unmarshal.
//
// The first error, from the framing or from visit, stops the scan.
func Scan(data []byte, visit func(Record) error) (Header, error) {
	h, err := DecodeHeader(data)
	if err != nil {
		return Header{}, err
	}
	if h.Level > skiplist.MaxLevelLimit {
		return h, fmt.Errorf("%w: header level %d exceeds %d", ErrFormatViolation, h.Level, skiplist.MaxLevelLimit)
	}

	off := HeaderBytes
	for off < len(data) && !atEndMarker(data, off) && data[off] == TagNode {
		rec, next, err := scanNode(data, off)
		if err != nil {
			return h, err
		}
		if err = visit(rec); err != nil {
			return h, err
		}
		off = next
	}

	for off < len(data) && !atEndMarker(data, off) {
		if data[off] != TagLane {
			return h, fmt.Errorf("%w: offset %d: unexpected tag %#02x", ErrFormatViolation, off, data[off])
		}
		rec, next, err := scanLane(data, off)
		if err != nil {
			return h, err
		}
		if rec.Level > h.Level {
			return h, fmt.Errorf(
				"%w: offset %d: lane level %d above header level %d", ErrFormatViolation, off, rec.Level, h.Level)
		}
		if err = visit(rec); err != nil {
			return h, err
		}
		off = next
	}

	if !atEndMarker(data, off) {
		return h, fmt.Errorf("%w: missing end marker at offset %d", ErrFormatViolation, off)
	}
	if trailing := len(data) - off - EndMarkerBytes; trailing != 0 {
		return h, fmt.Errorf("%w: %d bytes after the end marker", ErrFormatViolation, trailing)
	}
	return h, nil
}

func scanNode(data []byte, off int) (Record, int, error) {
	if len(data)-off < NodeRecordFixedBytes {
		return Record{}, 0, fmt.Errorf("%w: node record at offset %d", ErrTruncatedRecord, off)
	}
	rec := Record{
		Tag:    TagNode,
		Offset: off,
		Index:  readU32LE(data[off+1 : off+5]),
	}
	payloadLen := uint64(readU32LE(data[off+5 : off+9]))
	start := off + NodeRecordFixedBytes
	if payloadLen > uint64(len(data)-start) {
		return Record{}, 0, fmt.Errorf(
			"%w: node index %d: payload of %d bytes at offset %d", ErrTruncatedRecord, rec.Index, payloadLen, start)
	}
	end := start + int(payloadLen)

	n, used, err := skiplist.DecodeNode(data[start:end])
	if err != nil {
		if errors.Is(err, skiplist.ErrMalformedNode) {
			return Record{}, 0, fmt.Errorf("%w: node index %d: %w", ErrFormatViolation, rec.Index, err)
		}
		return Record{}, 0, fmt.Errorf("node index %d: %w", rec.Index, err)
	}
	if used != int(payloadLen) {
		return Record{}, 0, fmt.Errorf(
			"%w: node index %d: payload length %d, node uses %d", ErrFormatViolation, rec.Index, payloadLen, used)
	}
	rec.Node = n
	return rec, end, nil
}

func scanLane(data []byte, off int) (Record, int, error) {
	if len(data)-off < LaneRecordFixedBytes {
		return Record{}, 0, fmt.Errorf("%w: lane record at offset %d", ErrTruncatedRecord, off)
	}
	rec := Record{
		Tag:    TagLane,
		Offset: off,
		Level:  readU32LE(data[off+1 : off+5]),
	}
	count := uint64(readU32LE(data[off+5 : off+9]))
	start := off + LaneRecordFixedBytes
	if count*IndexBytes > uint64(len(data)-start) {
		return Record{}, 0, fmt.Errorf(
			"%w: lane level %d: %d indices at offset %d", ErrTruncatedRecord, rec.Level, count, start)
	}

	rec.Indices = make([]uint32, count)
	for i := range rec.Indices {
		p := start + i*IndexBytes
		rec.Indices[i] = readU32LE(data[p : p+IndexBytes])
	}
	return rec, start + int(count)*IndexBytes, nil
}

func atEndMarker(data []byte, off int) bool {
	return len(data)-off >= EndMarkerBytes && string(data[off:off+EndMarkerBytes]) == EndMarker
}
