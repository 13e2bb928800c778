// Package hashes is the name-keyed catalogue of digest algorithms used by the
// digestkit CLI and runner. Native entries are backed by pkg/digest; the
// remaining entries wrap third-party implementations so that the tools can
// list, sum and detect them the same way.
package hashes

import (
	"errors"
	"fmt"
	"hash"
	"io"
	"sort"
	"strings"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrNoHMAC           = errors.New("hmac not supported")
)

type Algorithm struct {
	Name      string
	Size      int
	BlockSize int
	// Native is set for algorithms implemented by pkg/digest.
	Native bool
	New    func() hash.Hash

	hmac func(key []byte) hash.Hash
}

var registry = map[string]Algorithm{}

// Register adds a or replaces the entry with the same name. Size and
// BlockSize are filled from a fresh instance when left zero.
func Register(a Algorithm) {
	if a.Size == 0 || a.BlockSize == 0 {
		h := a.New()
		a.Size, a.BlockSize = h.Size(), h.BlockSize()
	}
	registry[canonical(a.Name)] = a
}

func Get(name string) (Algorithm, error) {
	if a, ok := registry[canonical(name)]; ok {
		return a, nil
	}
	return Algorithm{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
}

func List() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// All returns every registered algorithm ordered by name.
func All() []Algorithm {
	out := make([]Algorithm, 0, len(registry))
	for _, name := range List() {
		out = append(out, registry[name])
	}
	return out
}

// Sum hashes data with the named algorithm.
func Sum(name string, data []byte) ([]byte, error) {
	a, err := Get(name)
	if err != nil {
		return nil, err
	}
	h := a.New()
	h.Write(data)
	return h.Sum(nil), nil
}

// SumReader hashes everything read from r.
func SumReader(name string, r io.Reader) ([]byte, error) {
	a, err := Get(name)
	if err != nil {
		return nil, err
	}
	h := a.New()
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return h.Sum(nil), nil
}

// NewHMAC returns an HMAC keyed with key. Only native algorithms support it.
func NewHMAC(name string, key []byte) (hash.Hash, error) {
	a, err := Get(name)
	if err != nil {
		return nil, err
	}
	if a.hmac == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoHMAC, a.Name)
	}
	return a.hmac(key), nil
}

func canonical(name string) string { return strings.ToLower(strings.TrimSpace(name)) }
