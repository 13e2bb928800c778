// Package mask enumerates every message matching a mask such as "id?d?d".
// Messages are addressed by index in mixed radix, so a range of the keyspace
// can be produced without generating what comes before it.
package mask

import (
	"context"
	"errors"
	"fmt"
)

// Mask tokens: ?l lower, ?u upper, ?d digits, ?s specials, ?a all of them,
// ?? a literal '?'.
var (
	lower   = []byte("abcdefghijklmnopqrstuvwxyz")
	upper   = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	digits  = []byte("0123456789")
	special = []byte("!@#$%^&*()-_=+[]{};:'\",.<>/?|`~ ")
	all     = concat(lower, upper, digits, special)
)

var ErrOverflow = errors.New("mask keyspace exceeds 2^64")

type Mask struct {
	sets    [][]byte
	radixes []uint64 // product of the following set lengths
	count   uint64
}

func Parse(pattern string) (*Mask, error) {
	if pattern == "" {
		return nil, errors.New("mask required")
	}
	var sets [][]byte
	for i := 0; i < len(pattern); {
		if pattern[i] != '?' {
			sets = append(sets, []byte{pattern[i]})
			i++
			continue
		}
		if i+1 >= len(pattern) {
			return nil, errors.New("dangling ? in mask")
		}
		switch pattern[i+1] {
		case 'l':
			sets = append(sets, lower)
		case 'u':
			sets = append(sets, upper)
		case 'd':
			sets = append(sets, digits)
		case 's':
			sets = append(sets, special)
		case 'a':
			sets = append(sets, all)
		case '?':
			sets = append(sets, []byte{'?'})
		default:
			return nil, fmt.Errorf("unknown mask token ?%c", pattern[i+1])
		}
		i += 2
	}

	radixes := make([]uint64, len(sets))
	prod := uint64(1)
	for i := len(sets) - 1; i >= 0; i-- {
		radixes[i] = prod
		n := uint64(len(sets[i]))
		if prod > ^uint64(0)/n {
			return nil, ErrOverflow
		}
		prod *= n
	}
	return &Mask{sets: sets, radixes: radixes, count: prod}, nil
}

// Count is the number of messages the mask matches.
func (m *Mask) Count() uint64 { return m.count }

// Len is the length of every message.
func (m *Mask) Len() int { return len(m.sets) }

// At writes message index into buf, which must hold Len bytes, and returns
// it.
func (m *Mask) At(index uint64, buf []byte) []byte {
	buf = buf[:len(m.sets)]
	for i, set := range m.sets {
		buf[i] = set[(index/m.radixes[i])%uint64(len(set))]
	}
	return buf
}

// Each calls fn for messages [from, to) in index order. The buffer passed to
// fn is reused between calls. It stops early when ctx is done or fn returns
// false.
func (m *Mask) Each(ctx context.Context, from, to uint64, fn func(index uint64, msg []byte) bool) error {
	to = min(to, m.count)
	if from >= to {
		return nil
	}
	buf := make([]byte, len(m.sets))
	pos := make([]int, len(m.sets))
	for i, set := range m.sets {
		pos[i] = int((from / m.radixes[i]) % uint64(len(set)))
		buf[i] = set[pos[i]]
	}
	for idx := from; idx < to; idx++ {
		if idx&0x3ff == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		if !fn(idx, buf) {
			return nil
		}
		m.increment(pos, buf)
	}
	return nil
}

// increment advances the mixed-radix counter held in pos and buf.
func (m *Mask) increment(pos []int, buf []byte) {
	for i := len(pos) - 1; i >= 0; i-- {
		d := pos[i] + 1
		if d < len(m.sets[i]) {
			pos[i] = d
			buf[i] = m.sets[i][d]
			return
		}
		pos[i] = 0
		buf[i] = m.sets[i][0]
	}
}

func concat(sets ...[]byte) []byte {
	var out []byte
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}
