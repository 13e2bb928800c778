package digest

import "encoding/binary"

// Word is the chaining-state word type of an algorithm family.
type Word interface {
	uint32 | uint64
}

func wordSize[W Word]() int {
	var w W
	if _, ok := any(w).(uint32); ok {
		return 4
	}
	return 8
}

// wordOrder reads and appends words in one byte order.
type wordOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func byteOrder(bigEndian bool) wordOrder {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// loadBlock decodes sixteen words from p in the given byte order.
func loadBlock[W Word](dst *[16]W, p []byte, bigEndian bool) {
	order := byteOrder(bigEndian)
	switch x := any(dst).(type) {
	case *[16]uint32:
		for i := range x {
			x[i] = order.Uint32(p[4*i:])
		}
	case *[16]uint64:
		for i := range x {
			x[i] = order.Uint64(p[8*i:])
		}
	}
}

// appendWords serializes words onto dst in the given byte order.
func appendWords[W Word](dst []byte, words []W, bigEndian bool) []byte {
	order := byteOrder(bigEndian)
	switch s := any(words).(type) {
	case []uint32:
		for _, v := range s {
			dst = order.AppendUint32(dst, v)
		}
	case []uint64:
		for _, v := range s {
			dst = order.AppendUint64(dst, v)
		}
	}
	return dst
}
