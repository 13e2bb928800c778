package hashes

import (
	"hash"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"edu/digestkit/pkg/digest"
)

// ntlm is MD4 over the UTF-16LE form of UTF-8 input. Writes may split a
// rune; the incomplete tail waits for the next write.
type ntlm struct {
	md4     *digest.Hasher[uint32]
	enc     *encoding.Encoder
	pending []byte
}

func newNTLM() hash.Hash {
	return &ntlm{
		md4: digest.NewMD4(),
		enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder(),
	}
}

func (n *ntlm) Write(p []byte) (int, error) {
	n.pending = append(n.pending, p...)
	cut := len(n.pending)
	for i := 1; i < utf8.UTFMax && i <= len(n.pending); i++ {
		if tail := n.pending[len(n.pending)-i:]; utf8.RuneStart(tail[0]) {
			if !utf8.FullRune(tail) {
				cut = len(n.pending) - i
			}
			break
		}
	}
	if err := n.flush(n.md4, n.pending[:cut]); err != nil {
		return 0, err
	}
	n.pending = append(n.pending[:0], n.pending[cut:]...)
	return len(p), nil
}

func (n *ntlm) flush(h *digest.Hasher[uint32], p []byte) error {
	if len(p) == 0 {
		return nil
	}
	b, err := n.enc.Bytes(p)
	if err != nil {
		return err
	}
	h.Update(b)
	return nil
}

func (n *ntlm) Sum(b []byte) []byte {
	h := n.md4.Clone()
	// invalid trailing bytes encode as U+FFFD
	_ = n.flush(h, n.pending)
	return append(b, h.Digest()...)
}

func (n *ntlm) Reset() {
	n.md4.Reset()
	n.pending = n.pending[:0]
}

func (n *ntlm) Size() int      { return n.md4.Size() }
func (n *ntlm) BlockSize() int { return n.md4.BlockSize() }

func init() {
	Register(Algorithm{Name: "ntlm", Native: true, New: newNTLM})
}
