package skipfile

import (
	"errors"

	"github.com/forestrie/go-skiplog/skiplist"
)

const (
	Magic = "\xde\xad\xbe\xef"

	MagicBytes    = 4
	LevelBytes    = 4
	ReservedBytes = 3
	HeaderBytes   = MagicBytes + LevelBytes + ReservedBytes

	TagNode byte = 0xBE
	TagLane byte = 0xEF

	EndMarker      = "\xee\x0f"
	EndMarkerBytes = 2

	// NodeRecordFixedBytes is tag + index + payload length.
	NodeRecordFixedBytes = 1 + 4 + 4
	// LaneRecordFixedBytes is tag + level + count.
	LaneRecordFixedBytes = 1 + 4 + 4
	IndexBytes           = 4

	// NoIndex is the lane sentinel for "no node". It is also one more than
	// the largest index a file can hold.
	NoIndex uint32 = 0xFFFF
)

var (
	ErrIncompatibleFile = errors.New("skipfile: not a skip list file")
	ErrFormatViolation  = errors.New("skipfile: malformed skip list file")
	ErrTooManyNodes     = errors.New("skipfile: too many nodes to index")

	// ErrTruncatedRecord is returned when a declared length runs past the
	// end of the buffer. It is the same error the node decoder reports.
	ErrTruncatedRecord = skiplist.ErrTruncatedRecord
)
