package runner

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"hash"
	"math/rand"
	"time"

	"edu/digestkit/internal/hashes"
	"edu/digestkit/pkg/mask"
	"edu/digestkit/pkg/workerpool"
)

type CrossCheckOptions struct {
	// Algorithms to check; empty means every native algorithm.
	Algorithms []string
	// Rounds is the number of batches per algorithm.
	Rounds int
	// Batch is the number of messages per round.
	Batch  int
	MaxLen int
	Seed   int64
	// Mask, when set, replaces random messages with every message the mask
	// matches. Rounds and MaxLen are then ignored.
	Mask string
}

type crossJob struct {
	name string
	ref  func() hash.Hash
	new  func() hash.Hash
	seed int64
	from uint64
}

// CrossCheck hashes random or mask-enumerated messages, written in random
// chunks, with the native implementation and compares each digest against an
// independent reference. MD5 rounds are additionally checked against the
// md5-simd batch digester.
func (r *Runner) CrossCheck(ctx context.Context, opts CrossCheckOptions) (Report, error) {
	if opts.Rounds <= 0 {
		opts.Rounds = 100
	}
	if opts.Batch <= 0 {
		opts.Batch = 8
	}
	if opts.MaxLen <= 0 {
		opts.MaxLen = 1024
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	names := opts.Algorithms
	if len(names) == 0 {
		for _, a := range hashes.All() {
			if a.Native {
				names = append(names, a.Name)
			}
		}
	}

	var m *mask.Mask
	if opts.Mask != "" {
		var err error
		if m, err = mask.Parse(opts.Mask); err != nil {
			return Report{}, err
		}
	}

	var jobs []crossJob
	for _, name := range names {
		a, err := hashes.Get(name)
		if err != nil {
			return Report{}, err
		}
		ref, err := hashes.Reference(a.Name)
		if err != nil {
			return Report{}, err
		}
		jobs = append(jobs, crossJob{name: a.Name, ref: ref, new: a.New})
	}

	start := time.Now()
	t := &tally{r: r}
	r.logEvent("start", map[string]any{
		"workers":    r.opts.Workers,
		"algorithms": names,
		"rounds":     opts.Rounds,
		"seed":       opts.Seed,
		"mask":       opts.Mask,
	})

	pool := workerpool.New(ctx, r.opts.Workers, func(ctx context.Context, j crossJob) {
		rng := rand.New(rand.NewSource(j.seed))
		n := opts.Batch
		if m != nil {
			n = int(min(uint64(n), m.Count()-j.from))
		}
		msgs := make([][]byte, n)
		sums := make([][]byte, n)
		for i := range msgs {
			if m != nil {
				msgs[i] = m.At(j.from+uint64(i), make([]byte, m.Len()))
			} else {
				msgs[i] = make([]byte, rng.Intn(opts.MaxLen+1))
				rng.Read(msgs[i])
			}

			h := j.new()
			for rest := msgs[i]; len(rest) > 0; {
				k := rng.Intn(len(rest)) + 1
				h.Write(rest[:k])
				rest = rest[k:]
			}
			sums[i] = h.Sum(nil)

			ref := j.ref()
			ref.Write(msgs[i])
			r.compare(t, j.name, msgs[i], ref.Sum(nil), sums[i])
		}
		if j.name == "md5" {
			for i, s := range hashes.MD5Batch(msgs) {
				r.compare(t, "md5-simd", msgs[i], s, sums[i])
			}
		}
	})

	seeds := rand.New(rand.NewSource(opts.Seed))
	next := func(round int) (uint64, bool) {
		if m != nil {
			from := uint64(round) * uint64(opts.Batch)
			return from, from < m.Count()
		}
		return 0, round < opts.Rounds
	}
submit:
	for round := 0; ; round++ {
		from, ok := next(round)
		if !ok {
			break
		}
		for _, j := range jobs {
			j.seed, j.from = seeds.Int63(), from
			if !pool.Submit(j) {
				pool.Stop()
				break submit
			}
		}
	}
	pool.Close()

	rep := t.report(start)
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	return rep, nil
}

func (r *Runner) compare(t *tally, name string, msg, want, got []byte) {
	n := uint64(len(msg))
	if bytes.Equal(want, got) {
		t.pass(name, n)
		return
	}
	in := hex.EncodeToString(msg)
	if len(in) > 64 {
		in = in[:64] + "..."
	}
	t.fail(Failure{
		Algorithm: name,
		Input:     fmt.Sprintf("%d bytes %s", len(msg), in),
		Want:      hex.EncodeToString(want),
		Got:       hex.EncodeToString(got),
	}, n)
}
