package hashes

import (
	_ "crypto/sha256"
	_ "crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	mh "github.com/multiformats/go-multihash"
	"github.com/opencontainers/go-digest"
)

var (
	ErrUnknownFormat     = errors.New("unknown output format")
	ErrFormatUnsupported = errors.New("format not supported for algorithm")
	ErrMalformedDigest   = errors.New("malformed digest")
)

const (
	FormatHex       = "hex"
	FormatOCI       = "oci"
	FormatMultihash = "multihash"
)

// ociAlgorithms are the registry names with an OCI content digest form.
var ociAlgorithms = map[string]digest.Algorithm{
	"sha256": digest.SHA256,
	"sha384": digest.SHA384,
	"sha512": digest.SHA512,
}

var multihashCodes = map[string]uint64{
	"md5":         mh.MD5,
	"sha1":        mh.SHA1,
	"sha256":      mh.SHA2_256,
	"sha512":      mh.SHA2_512,
	"sha3-224":    mh.SHA3_224,
	"sha3-256":    mh.SHA3_256,
	"sha3-384":    mh.SHA3_384,
	"sha3-512":    mh.SHA3_512,
	"blake2b-256": mh.BLAKE2B_MIN + 31,
	"blake2b-512": mh.BLAKE2B_MAX,
	"blake2s-256": mh.BLAKE2S_MAX,
}

func Formats() []string { return []string{FormatHex, FormatOCI, FormatMultihash} }

// Format renders a digest produced by the named algorithm.
func Format(algorithm string, sum []byte, format string) (string, error) {
	name := canonical(algorithm)
	switch canonical(format) {
	case "", FormatHex:
		return hex.EncodeToString(sum), nil
	case FormatOCI:
		alg, ok := ociAlgorithms[name]
		if !ok {
			return "", fmt.Errorf("%w: %s as %s", ErrFormatUnsupported, algorithm, format)
		}
		d := digest.NewDigestFromEncoded(alg, hex.EncodeToString(sum))
		if err := d.Validate(); err != nil {
			return "", err
		}
		return d.String(), nil
	case FormatMultihash:
		code, ok := multihashCodes[name]
		if !ok {
			return "", fmt.Errorf("%w: %s as %s", ErrFormatUnsupported, algorithm, format)
		}
		buf, err := mh.Encode(sum, code)
		if err != nil {
			return "", err
		}
		return mh.Multihash(buf).B58String(), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// ParseDigest accepts a plain hex digest, an OCI digest ("sha256:...") or
// a base58 multihash. The algorithm is empty for plain hex, which does not
// name one.
func ParseDigest(s string) (algorithm string, sum []byte, err error) {
	s = strings.TrimSpace(s)
	if reHex.MatchString(s) && len(s)%2 == 0 {
		sum, err = hex.DecodeString(s)
		return "", sum, err
	}
	if strings.Contains(s, ":") {
		d, err := digest.Parse(s)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrMalformedDigest, err)
		}
		sum, err = hex.DecodeString(d.Encoded())
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrMalformedDigest, err)
		}
		return string(d.Algorithm()), sum, nil
	}
	m, err := mh.FromB58String(s)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q", ErrMalformedDigest, s)
	}
	dm, err := mh.Decode(m)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedDigest, err)
	}
	for name, code := range multihashCodes {
		if code == dm.Code {
			return name, dm.Digest, nil
		}
	}
	return "", nil, fmt.Errorf("%w: multihash code %#x", ErrFormatUnsupported, dm.Code)
}
