// Package digest implements MD4, MD5, SHA-1, the SHA-2 family and the
// RIPEMD family on top of one incremental Merkle–Damgård engine.
//
// Every algorithm is described by a Descriptor: word width, initial state, output size,
// byte order and a compression function. A Hasher drives any descriptor:
//
//	sum := digest.NewSHA256().UpdateString("abc").Digest()
//
// Digest never mutates the hasher, so a running hasher can be sampled and
// then fed more data. Hashers are not safe for concurrent use; distinct
// hashers share no state.
package digest

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
)

// maxStateWords is the widest chaining state (RIPEMD-320).
const maxStateWords = 10

// ErrNotFixedSize is returned by UpdateValue when a value has no fixed-size
// binary encoding.
var ErrNotFixedSize = errors.New("digest: value has no fixed-size encoding")

// Descriptor describes one algorithm to the engine.
type Descriptor[W Word] struct {
	Name string
	// Size is the digest length in bytes. It may be shorter than the
	// serialized state, in which case the leading bytes are returned.
	Size int
	// BigEndian selects the byte order of block words, the length field and
	// the serialized state.
	BigEndian bool
	IV        []W
	// Compress absorbs one block of sixteen words into state.
	Compress func(state []W, x *[16]W)
}

// Hasher is the streaming engine for one Descriptor. The zero value is not
// usable; create hashers with New or one of the algorithm constructors.
//
// The total length is tracked in a uint64 byte counter, so a single message
// must stay below 2^64 bytes.
type Hasher[W Word] struct {
	desc  *Descriptor[W]
	count uint64
	block blockBuffer
	state [maxStateWords]W
}

var (
	_ hash.Hash = (*Hasher[uint32])(nil)
	_ hash.Hash = (*Hasher[uint64])(nil)
)

// New returns a hasher for d initialized with d's IV.
func New[W Word](d *Descriptor[W]) *Hasher[W] {
	if len(d.IV) == 0 || len(d.IV) > maxStateWords {
		panic(fmt.Sprintf("digest: %s: invalid state length %d", d.Name, len(d.IV)))
	}
	h := &Hasher[W]{desc: d, block: newBlock(wordSize[W]())}
	h.Reset()
	return h
}

// Name returns the algorithm name, e.g. "SHA-512/256".
func (h *Hasher[W]) Name() string { return h.desc.Name }

// Len returns the number of bytes absorbed so far.
func (h *Hasher[W]) Len() uint64 { return h.count }

func (h *Hasher[W]) Size() int { return h.desc.Size }

func (h *Hasher[W]) BlockSize() int { return h.block.size() }

// Reset restores the IV and forgets all input.
func (h *Hasher[W]) Reset() {
	h.count = 0
	h.block.scrub()
	clear(h.state[:])
	copy(h.state[:], h.desc.IV)
}

// Scrub zeroes the buffered input and the chaining state. The hasher must be
// Reset before it is used again.
func (h *Hasher[W]) Scrub() {
	h.block.scrub()
	clear(h.state[:])
	h.count = 0
}

// Clone returns an independent copy of h.
func (h *Hasher[W]) Clone() *Hasher[W] {
	c := *h
	return &c
}

// Update absorbs p.
func (h *Hasher[W]) Update(p []byte) *Hasher[W] {
	size := h.block.size()
	cursor := int(h.count % uint64(size))
	h.count += uint64(len(p))

	if cursor > 0 {
		n := copy(h.block.data[cursor:size], p)
		p = p[n:]
		if cursor+n < size {
			return h
		}
		h.compress(h.block.bytes())
	}
	for len(p) >= size {
		h.compress(p[:size])
		p = p[size:]
	}
	copy(h.block.data[:], p)
	return h
}

// UpdateRepeat absorbs n copies of b without materializing them.
func (h *Hasher[W]) UpdateRepeat(n uint64, b byte) *Hasher[W] {
	size := uint64(h.block.size())
	cursor := h.count % size
	h.count += n

	for n >= size-cursor {
		h.block.fill(int(cursor), int(size), b)
		h.compress(h.block.bytes())
		n -= size - cursor
		cursor = 0
	}
	h.block.fill(int(cursor), int(cursor+n), b)
	return h
}

// UpdateRepeatBytes absorbs n consecutive copies of p.
func (h *Hasher[W]) UpdateRepeatBytes(n uint64, p []byte) *Hasher[W] {
	if len(p) == 0 {
		return h
	}
	for ; n > 0; n-- {
		h.Update(p)
	}
	return h
}

// UpdateString absorbs the bytes of s.
func (h *Hasher[W]) UpdateString(s string) *Hasher[W] {
	return h.Update([]byte(s))
}

// UpdateCString absorbs p up to, not including, its first NUL byte. A slice
// without a NUL is absorbed whole.
func (h *Hasher[W]) UpdateCString(p []byte) *Hasher[W] {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	return h.Update(p)
}

// UpdateValue absorbs the little-endian encoding of a fixed-size value
// (fixed-width numbers, bools, arrays and structs of those, or slices of
// them). The hasher is unchanged when v has no fixed-size encoding.
func (h *Hasher[W]) UpdateValue(v any) error {
	return h.UpdateRepeatValue(1, v)
}

// UpdateRepeatValue absorbs n copies of the encoding of v.
func (h *Hasher[W]) UpdateRepeatValue(n uint64, v any) error {
	p, err := binary.Append(nil, binary.LittleEndian, v)
	if err != nil {
		return fmt.Errorf("%w: %T", ErrNotFixedSize, v)
	}
	h.UpdateRepeatBytes(n, p)
	return nil
}

// Write implements io.Writer. It never fails.
func (h *Hasher[W]) Write(p []byte) (int, error) {
	h.Update(p)
	return len(p), nil
}

// Sum appends the current digest to b without changing h.
func (h *Hasher[W]) Sum(b []byte) []byte {
	return append(b, h.Digest()...)
}

// Digest returns the digest of everything absorbed so far. h is not
// modified; padding is applied to a private copy.
func (h *Hasher[W]) Digest() []byte {
	d := *h
	defer d.Scrub()

	size := d.block.size()
	field := 2 * wordSize[W]()

	d.UpdateRepeat(1, 0x80)
	length := int(d.count%uint64(size)) + field
	factor := (length + size - 1) / size
	d.UpdateRepeat(uint64(factor*size-length), 0x00)

	// bit length of the message before padding
	var tail [16]byte
	lo, hi := h.count<<3, h.count>>61
	if d.desc.BigEndian {
		binary.BigEndian.PutUint64(tail[field-8:], lo)
		if field == 16 {
			binary.BigEndian.PutUint64(tail[:8], hi)
		}
	} else {
		binary.LittleEndian.PutUint64(tail[:8], lo)
		if field == 16 {
			binary.LittleEndian.PutUint64(tail[8:], hi)
		}
	}
	d.Update(tail[:field])

	n := len(d.desc.IV)
	out := appendWords(make([]byte, 0, n*wordSize[W]()), d.state[:n], d.desc.BigEndian)
	return out[:d.desc.Size]
}

func (h *Hasher[W]) compress(p []byte) {
	var x [16]W
	loadBlock(&x, p, h.desc.BigEndian)
	h.desc.Compress(h.state[:len(h.desc.IV)], &x)
}
