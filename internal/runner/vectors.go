package runner

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"hash"
	"time"

	"edu/digestkit/internal/hashes"
	"edu/digestkit/internal/vectors"
	"edu/digestkit/pkg/workerpool"
)

// chunk is the write size used to stream repeated inputs.
const chunk = 64 << 10

// RunVectors checks each known answer against the registry.
func (r *Runner) RunVectors(ctx context.Context, vs []vectors.Vector) (Report, error) {
	for _, v := range vs {
		if _, err := hashes.Get(v.Algorithm); err != nil {
			return Report{}, err
		}
	}

	start := time.Now()
	t := &tally{r: r}
	r.logEvent("start", map[string]any{"workers": r.opts.Workers, "vectors": len(vs)})

	pool := workerpool.New(ctx, r.opts.Workers, func(ctx context.Context, v vectors.Vector) {
		a, _ := hashes.Get(v.Algorithm)
		h := a.New()
		feed(ctx, h, v)
		if ctx.Err() != nil {
			return
		}
		got := hex.EncodeToString(h.Sum(nil))
		if got == v.Digest {
			t.pass(v.Algorithm, v.Len())
			return
		}
		t.fail(Failure{Algorithm: v.Algorithm, Input: describe(v), Want: v.Digest, Got: got}, v.Len())
	})
	for _, v := range vs {
		if !pool.Submit(v) {
			pool.Stop()
			break
		}
	}
	pool.Close()

	rep := t.report(start)
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	return rep, nil
}

// feed writes the vector's message in chunks, giving up when ctx is done.
func feed(ctx context.Context, h hash.Hash, v vectors.Vector) {
	if v.Repeat == 0 || len(v.Input) == 0 {
		return
	}
	per := uint64(chunk / len(v.Input))
	if per == 0 {
		per = 1
	}
	buf := bytes.Repeat([]byte(v.Input), int(min(per, v.Repeat)))
	for left := v.Repeat; left > 0; {
		if ctx.Err() != nil {
			return
		}
		n := min(left, per)
		h.Write(buf[:n*uint64(len(v.Input))])
		left -= n
	}
}

func describe(v vectors.Vector) string {
	in := v.Input
	if len(in) > 32 {
		in = in[:29] + "..."
	}
	if v.Repeat == 1 {
		return fmt.Sprintf("%q", in)
	}
	return fmt.Sprintf("%d x %q", v.Repeat, in)
}
