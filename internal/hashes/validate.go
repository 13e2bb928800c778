package hashes

import (
	"fmt"
	"regexp"
	"strings"
)

var reHex = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// Validate reports whether target could be a hex digest produced by algo.
// The note explains a rejection or flags a known ambiguity.
func Validate(algo, target string) (bool, string) {
	t := strings.TrimSpace(target)
	a, err := Get(algo)
	if err != nil {
		return false, err.Error()
	}
	if len(t) != 2*a.Size || !reHex.MatchString(t) {
		return false, fmt.Sprintf("%s must be %d hex chars", a.Name, 2*a.Size)
	}
	switch a.Name {
	case "md5", "md4", "ripemd128":
		if t == strings.ToUpper(t) {
			return true, "Note: uppercase 32-hex is usually NTLM; confirm the algorithm"
		}
	case "ntlm":
		return true, "Note: 32-hex also used by MD4/MD5; ensure correct algo"
	}
	return true, ""
}
