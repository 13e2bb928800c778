package digest_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
	"math/rand"
	"strings"
	"testing"

	"github.com/c0mm4nd/go-ripemd"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"

	"edu/digestkit/pkg/digest"
)

// oracles are independent implementations of the same algorithms.
var oracles = map[string]func() hash.Hash{
	"md4":        md4.New,
	"md5":        md5.New,
	"sha1":       sha1.New,
	"sha224":     sha256.New224,
	"sha256":     sha256.New,
	"sha384":     sha512.New384,
	"sha512":     sha512.New,
	"sha512-224": sha512.New512_224,
	"sha512-256": sha512.New512_256,
	"ripemd128":  ripemd.New128,
	"ripemd160":  ripemd160.New,
	"ripemd256":  ripemd.New256,
	"ripemd320":  ripemd.New320,
}

func TestAgainstOracles(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for name, s := range algorithms {
		newOracle := oracles[name]
		for n := 0; n < 600; n += 13 {
			msg := make([]byte, n)
			rng.Read(msg)
			o := newOracle()
			o.Write(msg)
			if got, want := s.chunks([][]byte{msg}), o.Sum(nil); !bytes.Equal(got, want) {
				t.Fatalf("%s(%d random bytes) = %x, oracle %x", name, n, got, want)
			}
		}
	}
}

func TestHMACAgainstStdlib(t *testing.T) {
	msg := []byte("The quick brown fox jumps over the lazy dog")
	for _, keyLen := range []int{0, 3, 20, 63, 64, 65, 128, 129, 200} {
		key := bytes.Repeat([]byte{0xa5}, keyLen)

		check := func(name string, got []byte, newOracle func() hash.Hash) {
			t.Helper()
			o := hmac.New(newOracle, key)
			o.Write(msg)
			if want := o.Sum(nil); !bytes.Equal(got, want) {
				t.Fatalf("HMAC-%s key %d: got %x, want %x", name, keyLen, got, want)
			}
		}
		check("MD5", digest.NewHMAC(digest.NewMD5, key).Update(msg).Digest(), md5.New)
		check("SHA-1", digest.NewHMAC(digest.NewSHA1, key).Update(msg).Digest(), sha1.New)
		check("SHA-256", digest.NewHMAC(digest.NewSHA256, key).Update(msg).Digest(), sha256.New)
		check("SHA-384", digest.NewHMAC(digest.NewSHA384, key).Update(msg).Digest(), sha512.New384)
		check("SHA-512", digest.NewHMAC(digest.NewSHA512, key).Update(msg).Digest(), sha512.New)
		check("RIPEMD-160", digest.NewHMAC(digest.NewRIPEMD160, key).Update(msg).Digest(), ripemd160.New)
		check("RIPEMD-320", digest.NewHMAC(digest.NewRIPEMD320, key).Update(msg).Digest(), ripemd.New320)
	}
}

func TestHMACStepByStep(t *testing.T) {
	key, msg := []byte("secret"), []byte("abc")

	k := make([]byte, 64)
	copy(k, key)
	in, out := make([]byte, 64), make([]byte, 64)
	for i := range k {
		in[i] = k[i] ^ 0x36
		out[i] = k[i] ^ 0x5c
	}
	inner := digest.NewSHA256().Update(in).Update(msg).Digest()
	want := digest.NewSHA256().Update(out).Update(inner).Digest()

	if got := digest.NewHMAC(digest.NewSHA256, key).Update(msg).Digest(); !bytes.Equal(got, want) {
		t.Fatalf("HMAC-SHA-256 = %x, step by step %x", got, want)
	}

	o := hmac.New(sha256.New, key)
	o.Write(msg)
	if !bytes.Equal(want, o.Sum(nil)) || hex.EncodeToString(want) != "9946dad4e00e913fc8be8e5d3f7e110a4a9e832f83fb09c345285d78638d8a0e" {
		t.Fatalf("step by step HMAC-SHA-256 = %x", want)
	}
}

// Every update form on HMAC must absorb the same bytes as on the hasher.
func TestHMACUpdateForms(t *testing.T) {
	key := []byte("key")
	mac := func(msg string) []byte {
		return digest.NewHMAC(digest.NewRIPEMD256, key).UpdateString(msg).Digest()
	}

	m := digest.NewHMAC(digest.NewRIPEMD256, key).UpdateCString([]byte("abc\x00def"))
	if got := m.Digest(); !bytes.Equal(got, mac("abc")) || m.Len() != 3 {
		t.Fatalf("UpdateCString: got %x after %d bytes", got, m.Len())
	}

	m = digest.NewHMAC(digest.NewRIPEMD256, key).UpdateRepeatBytes(40, []byte("xyz"))
	if got := m.Digest(); !bytes.Equal(got, mac(strings.Repeat("xyz", 40))) || m.Len() != 120 {
		t.Fatalf("UpdateRepeatBytes: got %x after %d bytes", got, m.Len())
	}

	m = digest.NewHMAC(digest.NewRIPEMD256, key)
	if err := m.UpdateValue(uint32(0x64636261)); err != nil {
		t.Fatal(err)
	}
	if got := m.Digest(); !bytes.Equal(got, mac("abcd")) || m.Len() != 4 {
		t.Fatalf("UpdateValue: got %x after %d bytes", got, m.Len())
	}

	m = digest.NewHMAC(digest.NewRIPEMD256, key)
	if err := m.UpdateRepeatValue(3, [2]byte{'h', 'i'}); err != nil {
		t.Fatal(err)
	}
	if got := m.Digest(); !bytes.Equal(got, mac("hihihi")) || m.Len() != 6 {
		t.Fatalf("UpdateRepeatValue: got %x after %d bytes", got, m.Len())
	}
	if err := m.UpdateValue("text"); !errors.Is(err, digest.ErrNotFixedSize) {
		t.Fatalf("UpdateValue(string) err = %v", err)
	}

	m.Reset()
	if m.Len() != 0 {
		t.Fatalf("Len after Reset = %d", m.Len())
	}
}

func TestHMACLongKeyIsHashed(t *testing.T) {
	key := bytes.Repeat([]byte("k"), 300)
	short := digest.NewSHA1().Update(key).Digest()
	a := digest.NewHMAC(digest.NewSHA1, key).UpdateString("m").Digest()
	b := digest.NewHMAC(digest.NewSHA1, short).UpdateString("m").Digest()
	if !bytes.Equal(a, b) {
		t.Fatalf("long key not replaced by its digest")
	}
}

func TestHMACDigestAndReset(t *testing.T) {
	m := digest.NewHMAC(digest.NewSHA512_256, []byte("key"))
	m.UpdateString("part one, ")
	first := m.Digest()
	if !bytes.Equal(first, m.Digest()) {
		t.Fatalf("HMAC Digest is not idempotent")
	}
	m.UpdateRepeat(3, '!')
	want := digest.NewHMAC(digest.NewSHA512_256, []byte("key")).UpdateString("part one, !!!").Digest()
	if got := m.Digest(); !bytes.Equal(got, want) {
		t.Fatalf("continuing after Digest: got %x, want %x", got, want)
	}

	m.Reset()
	m.Write([]byte("abc"))
	want = digest.NewHMAC(digest.NewSHA512_256, []byte("key")).UpdateString("abc").Digest()
	if got := m.Sum(nil); !bytes.Equal(got, want) {
		t.Fatalf("after Reset: got %x, want %x", got, want)
	}
	if m.Name() != "HMAC-SHA-512/256" || m.Size() != 32 || m.BlockSize() != 128 {
		t.Fatalf("unexpected metadata %s %d %d", m.Name(), m.Size(), m.BlockSize())
	}
}

func TestMillionRepeatsAcrossChunkings(t *testing.T) {
	if testing.Short() {
		t.Skip("long")
	}
	rng := rand.New(rand.NewSource(3))
	msg := bytes.Repeat([]byte{'a'}, 1000000)
	for name, s := range algorithms {
		var parts [][]byte
		rest := msg
		for len(rest) > 0 {
			k := rng.Intn(4096) + 1
			if k > len(rest) {
				k = len(rest)
			}
			parts = append(parts, rest[:k])
			rest = rest[k:]
		}
		o := oracles[name]()
		o.Write(msg)
		if got := s.chunks(parts); !bytes.Equal(got, o.Sum(nil)) {
			t.Fatalf("%s: million 'a' in random chunks differs from oracle", name)
		}
	}
}
