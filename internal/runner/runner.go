// Package runner drives bulk digest checks: published known answers and
// randomized cross-checks against reference implementations. Work is spread
// over a worker pool; progress is reported as events.
package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Options struct {
	Workers int
	// LogPath, when set, receives one JSON object per event.
	LogPath string
	Event   func(event string, kv map[string]any)
	// ProgressEvery is the number of checks between progress events.
	ProgressEvery uint64
	Logger        logrus.FieldLogger
}

// Failure describes one digest that did not match.
type Failure struct {
	Algorithm string `json:"algorithm"`
	Input     string `json:"input"`
	Want      string `json:"want"`
	Got       string `json:"got"`
}

type Report struct {
	Checked  uint64        `json:"checked"`
	Failed   uint64        `json:"failed"`
	Failures []Failure     `json:"failures,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// OK reports whether every check passed.
func (r Report) OK() bool { return r.Failed == 0 }

type Runner struct {
	opts    Options
	log     logrus.FieldLogger
	metrics *Metrics
	logMu   sync.Mutex
	logFile *os.File
}

func New(opts Options) (*Runner, error) {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.ProgressEvery == 0 {
		opts.ProgressEvery = 1000
	}
	r := &Runner{opts: opts, log: opts.Logger, metrics: NewMetrics()}
	if r.log == nil {
		r.log = logrus.StandardLogger()
	}
	if opts.LogPath != "" {
		f, err := os.Create(opts.LogPath)
		if err != nil {
			return nil, fmt.Errorf("open event log: %w", err)
		}
		r.logFile = f
	}
	return r, nil
}

func (r *Runner) Close() error {
	if r.logFile != nil {
		return r.logFile.Close()
	}
	return nil
}

// Metrics returns the counters updated by this runner.
func (r *Runner) Metrics() *Metrics { return r.metrics }

func (r *Runner) logEvent(event string, kv map[string]any) {
	rec := map[string]any{"ts": time.Now().Format(time.RFC3339Nano), "event": event}
	for k, v := range kv {
		rec[k] = v
	}
	if r.logFile != nil {
		b, _ := json.Marshal(rec)
		r.logMu.Lock()
		_, _ = r.logFile.Write(append(b, '\n'))
		r.logMu.Unlock()
	}
	r.log.WithFields(logrus.Fields(kv)).Debug(event)
	if r.opts.Event != nil {
		r.opts.Event(event, rec)
	}
}

// tally collects results from concurrent checks.
type tally struct {
	r        *Runner
	mu       sync.Mutex
	checked  uint64
	failures []Failure
}

func (t *tally) pass(algorithm string, n uint64) {
	t.r.metrics.observe(algorithm, n, true)
	t.mu.Lock()
	t.checked++
	c := t.checked
	t.mu.Unlock()
	if c%t.r.opts.ProgressEvery == 0 {
		t.r.logEvent("progress", map[string]any{"checked": c})
	}
}

func (t *tally) fail(f Failure, n uint64) {
	t.r.metrics.observe(f.Algorithm, n, false)
	t.mu.Lock()
	t.checked++
	t.failures = append(t.failures, f)
	t.mu.Unlock()
	t.r.log.WithFields(logrus.Fields{"algorithm": f.Algorithm, "input": f.Input}).Warn("digest mismatch")
	t.r.logEvent("mismatch", map[string]any{
		"algorithm": f.Algorithm,
		"input":     f.Input,
		"want":      f.Want,
		"got":       f.Got,
	})
}

func (t *tally) report(start time.Time) Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	rep := Report{
		Checked:  t.checked,
		Failed:   uint64(len(t.failures)),
		Failures: t.failures,
		Duration: time.Since(start),
	}
	t.r.logEvent("done", map[string]any{
		"checked":     rep.Checked,
		"failed":      rep.Failed,
		"duration_ms": rep.Duration.Milliseconds(),
	})
	return rep
}
