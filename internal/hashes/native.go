package hashes

import (
	"hash"

	"edu/digestkit/pkg/digest"
)

func native[W digest.Word](name string, newHash func() *digest.Hasher[W]) Algorithm {
	return Algorithm{
		Name:   name,
		Native: true,
		New:    func() hash.Hash { return newHash() },
		hmac:   func(key []byte) hash.Hash { return digest.NewHMAC(newHash, key) },
	}
}

func init() {
	Register(native("md4", digest.NewMD4))
	Register(native("md5", digest.NewMD5))
	Register(native("sha1", digest.NewSHA1))
	Register(native("sha224", digest.NewSHA224))
	Register(native("sha256", digest.NewSHA256))
	Register(native("sha384", digest.NewSHA384))
	Register(native("sha512", digest.NewSHA512))
	Register(native("sha512-224", digest.NewSHA512_224))
	Register(native("sha512-256", digest.NewSHA512_256))
	Register(native("ripemd128", digest.NewRIPEMD128))
	Register(native("ripemd160", digest.NewRIPEMD160))
	Register(native("ripemd256", digest.NewRIPEMD256))
	Register(native("ripemd320", digest.NewRIPEMD320))
}
