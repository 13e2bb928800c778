package hashes

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sync"

	"github.com/c0mm4nd/go-ripemd"
	md5simd "github.com/minio/md5-simd"
	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/text/encoding/unicode"
)

// references are independent implementations of the native algorithms,
// used to cross-check pkg/digest.
var references = map[string]func() hash.Hash{
	"md4":        md4.New,
	"md5":        md5.New,
	"sha1":       sha1.New,
	"sha224":     sha256.New224,
	"sha256":     sha256simd.New,
	"sha384":     sha512.New384,
	"sha512":     sha512.New,
	"sha512-224": sha512.New512_224,
	"sha512-256": sha512.New512_256,
	"ripemd128":  ripemd.New128,
	"ripemd160":  ripemd160.New,
	"ripemd256":  ripemd.New256,
	"ripemd320":  ripemd.New320,
	"ntlm":       newReferenceNTLM,
}

// Reference returns an independent implementation of a native algorithm.
func Reference(name string) (func() hash.Hash, error) {
	a, err := Get(name)
	if err != nil {
		return nil, err
	}
	ref, ok := references[canonical(a.Name)]
	if !ok {
		return nil, fmt.Errorf("no reference implementation for %s", a.Name)
	}
	return ref, nil
}

// referenceNTLM buffers the whole input and transcodes it at Sum.
type referenceNTLM struct{ buf []byte }

func newReferenceNTLM() hash.Hash { return &referenceNTLM{} }

func (r *referenceNTLM) Write(p []byte) (int, error) {
	r.buf = append(r.buf, p...)
	return len(p), nil
}

func (r *referenceNTLM) Sum(b []byte) []byte {
	u, _ := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes(r.buf)
	h := md4.New()
	h.Write(u)
	return h.Sum(b)
}

func (r *referenceNTLM) Reset()         { r.buf = r.buf[:0] }
func (r *referenceNTLM) Size() int      { return md4.Size }
func (r *referenceNTLM) BlockSize() int { return md4.BlockSize }

var (
	md5Once   sync.Once
	md5Server md5simd.Server
)

// MD5Batch digests many messages at once on the md5-simd server.
func MD5Batch(msgs [][]byte) [][]byte {
	md5Once.Do(func() { md5Server = md5simd.NewServer() })

	hs := make([]md5simd.Hasher, len(msgs))
	for i, m := range msgs {
		hs[i] = md5Server.NewHash()
		hs[i].Write(m)
	}
	out := make([][]byte, len(msgs))
	for i, h := range hs {
		out[i] = h.Sum(nil)
		h.Close()
	}
	return out
}
