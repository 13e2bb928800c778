package hashes

import (
	"hash"

	"github.com/ddulesov/gogost/gost28147"
	"github.com/ddulesov/gogost/gost341194"
	"github.com/ddulesov/gogost/gost34112012256"
	"github.com/ddulesov/gogost/gost34112012512"
	"github.com/emmansun/gmsm/sm3"
	"github.com/pedroalbanese/whirlpool"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// unkeyed adapts constructors that take an optional key.
func unkeyed(newKeyed func([]byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := newKeyed(nil)
		if err != nil {
			// only reachable with an oversized key
			panic(err)
		}
		return h
	}
}

func init() {
	Register(Algorithm{Name: "sha3-224", New: sha3.New224})
	Register(Algorithm{Name: "sha3-256", New: sha3.New256})
	Register(Algorithm{Name: "sha3-384", New: sha3.New384})
	Register(Algorithm{Name: "sha3-512", New: sha3.New512})
	Register(Algorithm{Name: "blake2b-256", New: unkeyed(blake2b.New256)})
	Register(Algorithm{Name: "blake2b-512", New: unkeyed(blake2b.New512)})
	Register(Algorithm{Name: "blake2s-256", New: unkeyed(blake2s.New256)})
	Register(Algorithm{Name: "sm3", New: sm3.New})
	Register(Algorithm{Name: "whirlpool", New: whirlpool.New})
	Register(Algorithm{Name: "streebog-256", New: func() hash.Hash { return gost34112012256.New() }})
	Register(Algorithm{Name: "streebog-512", New: func() hash.Hash { return gost34112012512.New() }})
	Register(Algorithm{Name: "gost94", New: func() hash.Hash {
		return gost341194.New(&gost28147.SboxIdGostR341194TestParamSet)
	}})
}
