package digest

import "hash"

const (
	ipad = 0x36
	opad = 0x5c
)

// HMAC computes RFC 2104 message authentication codes over any hasher of
// this package.
type HMAC[W Word] struct {
	newHash func() *Hasher[W]
	inner   *Hasher[W]
	// keyed is the inner hasher right after absorbing K^ipad.
	keyed *Hasher[W]
	outer []byte // K^opad
}

var (
	_ hash.Hash = (*HMAC[uint32])(nil)
	_ hash.Hash = (*HMAC[uint64])(nil)
)

// NewHMAC returns an HMAC keyed with key. newHash selects the underlying
// algorithm, e.g. NewHMAC(NewSHA256, key). key is not retained.
func NewHMAC[W Word](newHash func() *Hasher[W], key []byte) *HMAC[W] {
	inner := newHash()
	size := inner.BlockSize()

	k := make([]byte, size)
	defer clear(k)
	if len(key) > size {
		copy(k, newHash().Update(key).Digest())
	} else {
		copy(k, key)
	}

	outer := make([]byte, size)
	for i, b := range k {
		outer[i] = b ^ opad
		k[i] = b ^ ipad
	}
	inner.Update(k)

	return &HMAC[W]{newHash: newHash, inner: inner, keyed: inner.Clone(), outer: outer}
}

// Name returns e.g. "HMAC-SHA-256".
func (m *HMAC[W]) Name() string { return "HMAC-" + m.inner.Name() }

func (m *HMAC[W]) Size() int { return m.inner.Size() }

func (m *HMAC[W]) BlockSize() int { return m.inner.BlockSize() }

// Update absorbs message bytes.
func (m *HMAC[W]) Update(p []byte) *HMAC[W] {
	m.inner.Update(p)
	return m
}

// UpdateRepeat absorbs n copies of b.
func (m *HMAC[W]) UpdateRepeat(n uint64, b byte) *HMAC[W] {
	m.inner.UpdateRepeat(n, b)
	return m
}

func (m *HMAC[W]) UpdateString(s string) *HMAC[W] {
	m.inner.UpdateString(s)
	return m
}

// UpdateRepeatBytes absorbs n consecutive copies of p.
func (m *HMAC[W]) UpdateRepeatBytes(n uint64, p []byte) *HMAC[W] {
	m.inner.UpdateRepeatBytes(n, p)
	return m
}

// UpdateCString absorbs p up to its first NUL byte.
func (m *HMAC[W]) UpdateCString(p []byte) *HMAC[W] {
	m.inner.UpdateCString(p)
	return m
}

// UpdateValue absorbs the little-endian encoding of a fixed-size value. See
// Hasher.UpdateValue.
func (m *HMAC[W]) UpdateValue(v any) error {
	return m.inner.UpdateValue(v)
}

func (m *HMAC[W]) UpdateRepeatValue(n uint64, v any) error {
	return m.inner.UpdateRepeatValue(n, v)
}

// Len returns the number of message bytes absorbed since the key was set or
// m was last reset.
func (m *HMAC[W]) Len() uint64 {
	return m.inner.Len() - m.keyed.Len()
}

func (m *HMAC[W]) Write(p []byte) (int, error) {
	m.inner.Update(p)
	return len(p), nil
}

// Digest returns the MAC of the message absorbed so far without changing m.
func (m *HMAC[W]) Digest() []byte {
	outer := m.newHash()
	defer outer.Scrub()
	return outer.Update(m.outer).Update(m.inner.Digest()).Digest()
}

func (m *HMAC[W]) Sum(b []byte) []byte {
	return append(b, m.Digest()...)
}

// Reset forgets the message but keeps the key.
func (m *HMAC[W]) Reset() {
	*m.inner = *m.keyed
}

// Scrub zeroes all key material. m is unusable afterwards.
func (m *HMAC[W]) Scrub() {
	m.inner.Scrub()
	m.keyed.Scrub()
	clear(m.outer)
}
