package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"edu/digestkit/internal/hashes"
	"edu/digestkit/internal/runner"
	"edu/digestkit/internal/vectors"
	"edu/digestkit/pkg/mask"
)

// parseKey decodes an HMAC key from hex, falling back to the literal string
// if hex decode fails
func parseKey(key string) []byte {
	if decoded, err := hex.DecodeString(key); err == nil {
		return decoded
	}
	return []byte(key)
}

var (
	workers int
	timeout time.Duration
	config  string
	logPath string
	verbose bool
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "digestkit",
	Short: "digestkit - streaming message digests and HMAC",
	Long: `digestkit computes and verifies MD4, MD5, RIPEMD, SHA-1 and SHA-2 digests
and HMACs on a single streaming engine, and checks that engine against
published vectors and independent implementations.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if config != "" {
			viper.SetConfigFile(config)
			if err := viper.ReadInConfig(); err != nil {
				log.Warnf("could not read config file: %v", err)
			}
		}

		if workers > 0 {
			viper.Set("workers", workers)
		}
		if logPath != "" {
			viper.Set("log", logPath)
		}
		if verbose || viper.GetBool("verbose") {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported algorithms and text encodings",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Supported algorithms:")
		for _, a := range hashes.All() {
			hmac := ""
			if a.Native {
				hmac = " hmac"
			}
			fmt.Printf("  - %-14s %4d bits  block %3d%s\n", a.Name, a.Size*8, a.BlockSize, hmac)
		}
		fmt.Println("Encodings:")
		for _, e := range hashes.Encodings() {
			fmt.Printf("  - %s\n", e)
		}
	},
}

var sumCmd = &cobra.Command{
	Use:   "sum [text...]",
	Short: "Digest text, a file or standard input",
	Long: `Digest the arguments joined by spaces, the file given with --file, or
standard input when neither is given. With --mask every message matching the
mask is digested and printed next to its digest.`,
	RunE: runSum,
}

var verifyCmd = &cobra.Command{
	Use:   "verify [text...]",
	Short: "Check a message against an expected digest",
	Long: `Check a message against a hex, OCI ("sha256:...") or base58 multihash
digest. With --algorithm auto, every algorithm matching the digest length is
tried in order of likelihood.`,
	RunE: runVerify,
}

var vectorsCmd = &cobra.Command{
	Use:   "vectors",
	Short: "Check the native algorithms against published test vectors",
	RunE:  runVectors,
}

var crosscheckCmd = &cobra.Command{
	Use:   "crosscheck",
	Short: "Compare native digests of random messages with reference implementations",
	RunE:  runCrosscheck,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "t", 0, "Number of worker goroutines (default: CPU cores)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Abort long checks after this duration")
	rootCmd.PersistentFlags().StringVar(&config, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Log file path for events (JSON lines)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	sumCmd.Flags().StringP("algorithm", "a", "", "Digest algorithm (default from config, else sha256)")
	sumCmd.Flags().String("hmac-key", "", "Compute an HMAC with this key (hex, or literal text)")
	sumCmd.Flags().StringP("encoding", "e", "", "Text encoding applied to arguments and masks")
	sumCmd.Flags().StringP("file", "f", "", "Digest this file")
	sumCmd.Flags().Uint64P("repeat", "r", 1, "Digest the text repeated this many times")
	sumCmd.Flags().StringP("mask", "m", "", "Digest every message matching this mask (e.g. ?l?l?d)")
	sumCmd.Flags().String("format", "", "Output format: hex, oci or multihash")

	verifyCmd.Flags().StringP("algorithm", "a", "auto", "Digest algorithm (auto-detect by default)")
	verifyCmd.Flags().StringP("hash", "H", "", "Expected digest (required)")
	verifyCmd.Flags().String("hmac-key", "", "Verify an HMAC with this key (hex, or literal text)")
	verifyCmd.Flags().StringP("encoding", "e", "", "Text encoding applied to arguments")
	verifyCmd.Flags().StringP("file", "f", "", "Verify this file")
	verifyCmd.MarkFlagRequired("hash")

	vectorsCmd.Flags().StringSliceP("algorithm", "a", nil, "Only check these algorithms")
	vectorsCmd.Flags().Bool("long", false, "Include the gigabyte-scale vectors")
	vectorsCmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this file")

	crosscheckCmd.Flags().StringSliceP("algorithm", "a", nil, "Only check these algorithms (default: every native one)")
	crosscheckCmd.Flags().Int("rounds", 100, "Batches per algorithm")
	crosscheckCmd.Flags().Int("batch", 8, "Messages per batch")
	crosscheckCmd.Flags().Int("max-len", 1024, "Maximum random message length")
	crosscheckCmd.Flags().Int64("seed", 0, "Random seed (default: time based)")
	crosscheckCmd.Flags().StringP("mask", "m", "", "Check every message matching this mask instead of random ones")
	crosscheckCmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(vectorsCmd)
	rootCmd.AddCommand(crosscheckCmd)

	viper.SetEnvPrefix("DIGESTKIT")
	viper.AutomaticEnv()
	viper.SetDefault("workers", runtime.NumCPU())
	viper.SetDefault("algorithm", "sha256")
	viper.SetDefault("encoding", "utf-8")
	viper.SetDefault("format", hashes.FormatHex)

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// setting returns the flag value when given, else the configured one.
func setting(cmd *cobra.Command, name string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	return viper.GetString(name)
}

// newDigest returns the hash for algo, keyed when key is non-empty.
func newDigest(algo, key string) (hash.Hash, error) {
	if key != "" {
		return hashes.NewHMAC(algo, parseKey(key))
	}
	a, err := hashes.Get(algo)
	if err != nil {
		return nil, err
	}
	return a.New(), nil
}

// absorb feeds the message selected by the flags into h.
func absorb(cmd *cobra.Command, h io.Writer, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	repeat := uint64(1)
	if cmd.Flags().Lookup("repeat") != nil {
		repeat, _ = cmd.Flags().GetUint64("repeat")
	}

	switch {
	case file != "" && len(args) > 0:
		return errors.New("give either text arguments or --file, not both")
	case file != "":
		if repeat != 1 {
			return errors.New("--repeat applies to text arguments only")
		}
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(h, bufio.NewReader(f))
		return err
	case len(args) > 0:
		msg, err := hashes.Encode(strings.Join(args, " "), setting(cmd, "encoding"))
		if err != nil {
			return err
		}
		writeRepeat(h, msg, repeat)
		return nil
	default:
		if repeat != 1 {
			return errors.New("--repeat applies to text arguments only")
		}
		_, err := io.Copy(h, os.Stdin)
		return err
	}
}

// writeRepeat writes msg n times in chunks of about 64 KiB.
func writeRepeat(w io.Writer, msg []byte, n uint64) {
	if len(msg) == 0 || n == 0 {
		return
	}
	per := max(uint64((64<<10)/len(msg)), 1)
	buf := make([]byte, 0, int(min(per, n))*len(msg))
	for i := uint64(0); i < min(per, n); i++ {
		buf = append(buf, msg...)
	}
	for left := n; left > 0; {
		k := min(left, per)
		w.Write(buf[:k*uint64(len(msg))])
		left -= k
	}
}

func runSum(cmd *cobra.Command, args []string) error {
	algo := setting(cmd, "algorithm")
	key, _ := cmd.Flags().GetString("hmac-key")
	format := setting(cmd, "format")
	pattern, _ := cmd.Flags().GetString("mask")

	if key != "" && format != hashes.FormatHex {
		return fmt.Errorf("--format %s does not apply to HMAC output", format)
	}

	h, err := newDigest(algo, key)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"algorithm": algo, "hmac": key != ""}).Debug("sum")

	if pattern != "" {
		if len(args) > 0 {
			return errors.New("give either text arguments or --mask, not both")
		}
		return sumMask(cmd, h, algo, format, pattern)
	}

	if err := absorb(cmd, h, args); err != nil {
		return err
	}
	out, err := hashes.Format(algo, h.Sum(nil), format)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func sumMask(cmd *cobra.Command, h hash.Hash, algo, format, pattern string) error {
	m, err := mask.Parse(pattern)
	if err != nil {
		return err
	}
	enc := setting(cmd, "encoding")
	ctx, cancel := commandContext()
	defer cancel()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	var ferr error
	err = m.Each(ctx, 0, m.Count(), func(_ uint64, msg []byte) bool {
		b, err := hashes.Encode(string(msg), enc)
		if err != nil {
			ferr = err
			return false
		}
		h.Reset()
		h.Write(b)
		s, err := hashes.Format(algo, h.Sum(nil), format)
		if err != nil {
			ferr = err
			return false
		}
		fmt.Fprintf(out, "%s  %s\n", s, msg)
		return true
	})
	if ferr != nil {
		return ferr
	}
	return err
}

func runVerify(cmd *cobra.Command, args []string) error {
	algo, _ := cmd.Flags().GetString("algorithm")
	target, _ := cmd.Flags().GetString("hash")
	key, _ := cmd.Flags().GetString("hmac-key")

	named, want, err := hashes.ParseDigest(target)
	if err != nil {
		return err
	}

	var candidates []string
	switch {
	case named != "":
		if algo != "auto" && !strings.EqualFold(algo, named) {
			return fmt.Errorf("digest is %s but --algorithm is %s", named, algo)
		}
		candidates = []string{named}
	case algo == "auto":
		// keep the caller's letter case, Detect uses it to split md5 from ntlm
		candidates = hashes.Detect(strings.TrimSpace(target))
		if len(candidates) == 0 {
			return fmt.Errorf("could not detect algorithm for hash: %s", target)
		}
		log.Debugf("candidates: %s", strings.Join(candidates, ", "))
	default:
		if ok, msg := hashes.Validate(algo, strings.TrimSpace(target)); !ok {
			return fmt.Errorf("invalid input: %s (algo=%s)", msg, algo)
		} else if msg != "" {
			log.Info(msg)
		}
		candidates = []string{algo}
	}

	// The message may come from stdin, which can only be read once.
	var (
		names []string
		hs    []hash.Hash
		ws    []io.Writer
	)
	for _, c := range candidates {
		h, err := newDigest(c, key)
		if errors.Is(err, hashes.ErrNoHMAC) && len(candidates) > 1 {
			continue
		}
		if err != nil {
			return err
		}
		names = append(names, c)
		hs = append(hs, h)
		ws = append(ws, h)
	}
	if len(hs) == 0 {
		return fmt.Errorf("%w: %s", hashes.ErrNoHMAC, strings.Join(candidates, ", "))
	}
	if err := absorb(cmd, io.MultiWriter(ws...), args); err != nil {
		return err
	}

	for i, h := range hs {
		if bytes.Equal(h.Sum(nil), want) {
			fmt.Printf("OK (%s)\n", names[i])
			return nil
		}
	}
	fmt.Println("MISMATCH")
	return fmt.Errorf("digest does not match (tried %s)", strings.Join(names, ", "))
}

func newRunner() (*runner.Runner, error) {
	return runner.New(runner.Options{
		Workers: viper.GetInt("workers"),
		LogPath: viper.GetString("log"),
		Logger:  log,
		Event: func(event string, kv map[string]any) {
			if verbose {
				fmt.Printf("[%s] ", event)
				for k, v := range kv {
					if k == "event" || k == "ts" {
						continue
					}
					fmt.Printf("%s=%v ", k, v)
				}
				fmt.Println()
			}
		},
	})
}

// commandContext honours --timeout and cancels on SIGINT or SIGTERM.
func commandContext() (context.Context, context.CancelFunc) {
	ctx := context.Background()
	var cancelTimeout context.CancelFunc = func() {}
	if timeout > 0 {
		ctx, cancelTimeout = context.WithTimeout(ctx, timeout)
	}
	ctx, cancel := context.WithCancel(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\nInterrupted, stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
		cancelTimeout()
	}
}

func printReport(rep runner.Report, metricsFile string, r *runner.Runner) error {
	fmt.Printf("\nResults:\n")
	fmt.Printf("  Checked: %d\n", rep.Checked)
	fmt.Printf("  Failed: %d\n", rep.Failed)
	fmt.Printf("  Time: %v\n", rep.Duration)
	for _, f := range rep.Failures {
		fmt.Printf("  FAIL %s %s\n    want %s\n    got  %s\n", f.Algorithm, f.Input, f.Want, f.Got)
	}
	if metricsFile != "" {
		if err := r.Metrics().WriteTextfile(metricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	if !rep.OK() {
		return fmt.Errorf("%d of %d checks failed", rep.Failed, rep.Checked)
	}
	return nil
}

func runVectors(cmd *cobra.Command, args []string) error {
	only, _ := cmd.Flags().GetStringSlice("algorithm")
	long, _ := cmd.Flags().GetBool("long")
	metricsFile, _ := cmd.Flags().GetString("metrics-file")

	var vs []vectors.Vector
	if len(only) == 0 {
		vs = vectors.Published
	}
	for _, name := range only {
		a, err := hashes.Get(name)
		if err != nil {
			return err
		}
		vs = append(vs, vectors.For(a.Name)...)
	}
	if !long {
		kept := vs[:0:0]
		for _, v := range vs {
			if !v.Long() {
				kept = append(kept, v)
			}
		}
		vs = kept
	}
	if len(vs) == 0 {
		return errors.New("no vectors selected")
	}

	r, err := newRunner()
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, cancel := commandContext()
	defer cancel()

	fmt.Printf("Checking %d vectors\n", len(vs))
	rep, err := r.RunVectors(ctx, vs)
	if err != nil {
		return err
	}
	return printReport(rep, metricsFile, r)
}

func runCrosscheck(cmd *cobra.Command, args []string) error {
	only, _ := cmd.Flags().GetStringSlice("algorithm")
	rounds, _ := cmd.Flags().GetInt("rounds")
	batch, _ := cmd.Flags().GetInt("batch")
	maxLen, _ := cmd.Flags().GetInt("max-len")
	seed, _ := cmd.Flags().GetInt64("seed")
	pattern, _ := cmd.Flags().GetString("mask")
	metricsFile, _ := cmd.Flags().GetString("metrics-file")

	r, err := newRunner()
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, cancel := commandContext()
	defer cancel()

	rep, err := r.CrossCheck(ctx, runner.CrossCheckOptions{
		Algorithms: only,
		Rounds:     rounds,
		Batch:      batch,
		MaxLen:     maxLen,
		Seed:       seed,
		Mask:       pattern,
	})
	if err != nil {
		return err
	}
	return printReport(rep, metricsFile, r)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
