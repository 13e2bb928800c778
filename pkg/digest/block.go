package digest

// maxblockBufferSize is the largest block any supported algorithm compresses
// (sixteen 64-bit words).
const maxblockBufferSize = 128

// blockBuffer is the byte store for one compression input. It holds sixteen words
// of the algorithm's width, so its capacity is 64 or 128 bytes.
type blockBuffer struct {
	data [maxblockBufferSize]byte
	n    int
}

func newBlock(wordSize int) blockBuffer { return blockBuffer{n: 16 * wordSize} }

// size returns the capacity of the block in bytes.
func (b *blockBuffer) size() int { return b.n }

// bytes returns the whole block, filled or not.
func (b *blockBuffer) bytes() []byte { return b.data[:b.n] }

func (b *blockBuffer) fill(from, to int, v byte) {
	s := b.data[from:to]
	for i := range s {
		s[i] = v
	}
}

func (b *blockBuffer) scrub() { clear(b.data[:]) }
