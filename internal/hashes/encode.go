package hashes

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var ErrUnknownEncoding = errors.New("unknown encoding")

var encodings = map[string]encoding.Encoding{
	"utf-8":    encoding.Nop,
	"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"cp437":    charmap.CodePage437,
	"cp850":    charmap.CodePage850,
	"cp1252":   charmap.Windows1252,
	"latin1":   charmap.ISO8859_1,
}

var encodingAliases = map[string]string{
	"":             "utf-8",
	"utf8":         "utf-8",
	"utf16le":      "utf-16le",
	"utf16be":      "utf-16be",
	"iso-8859-1":   "latin1",
	"windows-1252": "cp1252",
}

// Encodings lists the accepted encoding names.
func Encodings() []string {
	out := make([]string, 0, len(encodings))
	for k := range encodings {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Encode converts UTF-8 text into the named encoding before hashing. Runes
// the target charset cannot represent are an error.
func Encode(text, name string) ([]byte, error) {
	key := canonical(name)
	if alias, ok := encodingAliases[key]; ok {
		key = alias
	}
	enc, ok := encodings[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	if enc == encoding.Nop {
		return []byte(text), nil
	}
	b, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", key, err)
	}
	return b, nil
}
