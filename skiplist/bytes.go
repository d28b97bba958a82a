package skiplist

import "encoding/binary"

func readU32LE(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

func appendU32LE(b []byte, v uint32) []byte { return binary.LittleEndian.AppendUint32(b, v) }
