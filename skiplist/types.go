package skiplist

import "errors"

// Ref is an arena index identifying a node within a List.
type Ref uint32

// NoRef marks an empty forward slot.
const NoRef = ^Ref(0)

const (
	// HeadKey is the reserved key of the sentinel head node.
	HeadKey = "head"

	// DefaultMaxLevel is the level ceiling used when WithMaxLevel is not given.
	DefaultMaxLevel = 16

	// MaxLevelLimit bounds the configurable ceiling. It also bounds the
	// LevelCapacity accepted when decoding a node record.
	MaxLevelLimit = 32
)

var (
	ErrEmptyStructure  = errors.New("skiplist: list has no head")
	ErrNodeMismatch    = errors.New("skiplist: forward pointer does not reference the node being removed")
	ErrDuplicateValue  = errors.New("skiplist: value already present")
	ErrDuplicateKey    = errors.New("skiplist: key already present")
	ErrReservedKey     = errors.New("skiplist: key is reserved for the head node")
	ErrInvalidKey      = errors.New("skiplist: key is not valid utf-8")
	ErrBadMaxLevel     = errors.New("skiplist: max level out of range")
	ErrTruncatedRecord = errors.New("skiplist: record shorter than its declared length")
	ErrMalformedNode   = errors.New("skiplist: malformed node record")
	ErrCorruptLane     = errors.New("skiplist: lane is not a valid forward chain")
)

// Entry is a key/value pair in level 0 order.
type Entry struct {
	Key   string
	Value uint32
}
