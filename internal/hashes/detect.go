package hashes

import (
	"sort"
	"strings"
)

// Detect returns a ranked list of candidate algorithms for a hex digest.
// Every registered algorithm whose digest length matches is a candidate;
// scoring prefers the common algorithm of each length and uses letter case
// to split MD5 from NTLM.
func Detect(target string) []string {
	t := strings.TrimSpace(target)
	if t == "" || !reHex.MatchString(t) {
		return nil
	}

	type cand struct {
		name  string
		score int
	}
	var candidates []cand

	upper := t == strings.ToUpper(t) && t != strings.ToLower(t)
	boost := map[string]int{}
	switch len(t) {
	case 32:
		if upper {
			boost["ntlm"] += 30
			boost["md5"] += 10
		} else {
			boost["md5"] += 30
			boost["ntlm"] += 10
		}
		boost["md4"] += 5
	case 40:
		boost["sha1"] += 25
		boost["ripemd160"] += 15
	case 56:
		boost["sha224"] += 25
		boost["sha3-224"] += 5
	case 64:
		boost["sha256"] += 25
		boost["sha3-256"] += 5
	case 96:
		boost["sha384"] += 20
		boost["sha3-384"] += 5
	case 128:
		boost["sha512"] += 20
		boost["sha3-512"] += 5
	}

	for _, name := range List() {
		if ok, _ := Validate(name, t); !ok {
			continue
		}
		score := 10
		if b, ok := boost[name]; ok {
			score += b
		}
		if a := registry[name]; a.Native {
			score++
		}
		candidates = append(candidates, cand{name, score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].name < candidates[j].name
	})

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.name)
	}
	return out
}
