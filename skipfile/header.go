package skipfile

import "fmt"

type Header struct {
	Level    uint32
	Reserved [ReservedBytes]byte
}

// DecodeHeader decodes the fixed header at the start of data.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < MagicBytes || string(data[:MagicBytes]) != Magic {
		return Header{}, ErrIncompatibleFile
	}
	if len(data) < HeaderBytes {
		return Header{}, fmt.Errorf("%w: header: want=%d, got=%d", ErrTruncatedRecord, HeaderBytes, len(data))
	}

	var h Header
	h.Level = readU32LE(data[MagicBytes : MagicBytes+LevelBytes])
	copy(h.Reserved[:], data[MagicBytes+LevelBytes:HeaderBytes])
	return h, nil
}

// AppendHeader appends the fixed header to b.
func AppendHeader(b []byte, h Header) []byte {
	b = append(b, Magic...)
	b = appendU32LE(b, h.Level)
	return append(b, h.Reserved[:]...)
}

// EncodeHeader returns the fixed header for h.
func EncodeHeader(h Header) []byte {
	return AppendHeader(make([]byte, 0, HeaderBytes), h)
}
