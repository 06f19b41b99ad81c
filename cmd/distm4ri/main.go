// Command distm4ri computes distance bounds for a binary linear code or a
// CSS quantum code given as Matrix Market files.
//
// Usage:
//
//	distm4ri -finH codeZ.mtx [-finG codeX.mtx | -finL codeL.mtx] [flags]
//	distm4ri -fin code [flags]            # reads codeZ.mtx and codeX.mtx
//
// -fin cannot be combined with -finH or -finG.
//
// Method bitmap: 1 = random window (upper bound), 2 = connected cluster
// (exact up to -wmax), 3 = both. The final line summarizes the bounds.
//
// Debug bitmap: 1 = run info, 2 = search levels and syndrome table,
// 8 = RW progress, 16 = every improving codeword, 32 = every CC candidate.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qdist/csr"
	"github.com/katalvlaran/qdist/css"
	"github.com/katalvlaran/qdist/distance"
	"github.com/katalvlaran/qdist/internal/logging"
	"github.com/katalvlaran/qdist/mmio"
	"github.com/katalvlaran/qdist/promstats"
)

// defaultCCWMax is the cluster weight limit used when only CC runs and no -wmax is given.
const defaultCCWMax = 5

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage error")

type config struct {
	method    int
	steps     int
	wmin      int
	wmax      int
	start     int
	finH      string
	finG      string
	finL      string
	fin       string
	css       int
	seed      int64
	debug     int
	logFormat string
	metrics   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var (
		cfg = &config{}
		fs  = flag.NewFlagSet("distm4ri", flag.ContinueOnError)
	)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.method, "method", int(distance.MethodBoth), "bitmap: 1 random window, 2 connected cluster, 3 both")
	fs.IntVar(&cfg.steps, "steps", distance.DefaultSteps, "number of random-window trials")
	fs.IntVar(&cfg.wmin, "wmin", distance.DefaultWMin, "stop RW once a codeword of this weight or lighter is found")
	fs.IntVar(&cfg.wmax, "wmax", distance.DefaultWMax, "RW cap and CC weight limit (0: none; CC alone uses 5)")
	fs.IntVar(&cfg.start, "start", distance.DefaultStart, "CC seed column (-1: all)")
	fs.StringVar(&cfg.finH, "finH", "", "parity-check matrix H (Matrix Market, may be .gz/.zst/.lz4)")
	fs.StringVar(&cfg.finG, "finG", "", "dual matrix G of a CSS code")
	fs.StringVar(&cfg.finL, "finL", "", "logical operators L of a CSS code")
	fs.StringVar(&cfg.fin, "fin", "", "base name: H from ${fin}Z.mtx, G from ${fin}X.mtx")
	fs.IntVar(&cfg.css, "css", 1, "code family (only 1 = CSS is supported)")
	fs.Int64Var(&cfg.seed, "seed", 0, "RW seed (0: from the clock)")
	fs.IntVar(&cfg.debug, "debug", 1, "debug bitmap")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")
	fs.StringVar(&cfg.metrics, "metrics-textfile", "", "write Prometheus metrics to this file on exit")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}

	if cfg.fin != "" {
		if cfg.finH != "" || cfg.finG != "" {
			return nil, fmt.Errorf("%w: -fin conflicts with -finH and -finG", errUsage)
		}
		cfg.finH = cfg.fin + "Z.mtx"
		if cfg.finL == "" {
			cfg.finG = cfg.fin + "X.mtx"
		}
	}
	switch {
	case cfg.finH == "":
		return nil, fmt.Errorf("%w: -finH or -fin is required", errUsage)
	case cfg.method < 1 || cfg.method > int(distance.MethodBoth):
		return nil, fmt.Errorf("%w: -method=%d", errUsage, cfg.method)
	case cfg.logFormat != "text" && cfg.logFormat != "json":
		return nil, fmt.Errorf("%w: -log-format=%q", errUsage, cfg.logFormat)
	}
	if cfg.css != 1 {
		return nil, fmt.Errorf("css=%d: %w", cfg.css, css.ErrNonCSS)
	}
	if distance.Method(cfg.method) == distance.MethodCC && cfg.wmax == 0 {
		cfg.wmax = defaultCCWMax
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}

	return cfg, nil
}

func newLogger(cfg *config, stderr io.Writer) *logging.Logger {
	level := slog.LevelInfo
	if distance.Trace(cfg.debug)&(distance.TraceMore|distance.TraceSearch) != 0 {
		level = slog.LevelDebug
	}
	if cfg.logFormat == "json" {
		return logging.NewJSONLogger(stderr, level)
	}

	return logging.NewTextLogger(stderr, level)
}

// loadCode reads the input matrices concurrently and assembles the code.
func loadCode(ctx context.Context, cfg *config) (*css.Code, error) {
	var (
		h, g, l *csr.Matrix
		eg, _   = errgroup.WithContext(ctx)
	)
	load := func(path string, dst **csr.Matrix) {
		if path == "" {
			return
		}
		eg.Go(func() error {
			m, err := mmio.ReadFile(path, false)
			*dst = m

			return err
		})
	}
	load(cfg.finH, &h)
	load(cfg.finG, &g)
	load(cfg.finL, &l)
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return css.New(h, g, l)
}

// summary prints the final verdict line.
func summary(w io.Writer, method distance.Method, b *distance.Bounds) {
	switch {
	case b.NoCodewords:
		fmt.Fprintln(w, "no nonzero codeword: the code has dimension k=0")
	case method == distance.MethodRW:
		fmt.Fprintf(w, "RW algorithm upper bound for the distance d=%d\n", b.RW.Distance)
	case b.Exact && method == distance.MethodBoth:
		fmt.Fprintf(w, "success  (two distance bounds coincide) d=%d\n", b.Lower)
	case b.Exact:
		fmt.Fprintf(w, "success  (found min-weight codeword) d=%d\n", b.Lower)
	case b.Upper > b.Lower:
		fmt.Fprintf(w, "distance in the interval (inclusive) %d to %d\n", b.Lower, b.Upper)
	default:
		fmt.Fprintf(w, "cluster algorithm failed to find a codeword up to wmax=%d\n", b.Lower-1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "distm4ri:", err)
		if errors.Is(err, errUsage) {
			return exitUsage
		}

		return exitError
	}
	log := newLogger(cfg, stderr)

	code, err := loadCode(ctx, cfg)
	if err != nil {
		log.ErrorContext(ctx, "loading code", "error", err)
		return exitError
	}
	if distance.Trace(cfg.debug).Has(distance.TraceInfo) {
		log.InfoContext(ctx, "code loaded",
			"n", code.N(), "checks", code.H.Rows(), "k", code.Dimension(), "classical", code.IsClassical())
	}

	var (
		reg     = prometheus.NewRegistry()
		metrics = promstats.New(promstats.DefaultNamespace)
		method  = distance.Method(cfg.method)
	)
	reg.MustRegister(metrics)

	b, err := distance.Estimate(code, method,
		distance.WithContext(ctx),
		distance.WithSteps(cfg.steps),
		distance.WithWMin(cfg.wmin),
		distance.WithWMax(cfg.wmax),
		distance.WithStart(cfg.start),
		distance.WithSeed(cfg.seed),
		distance.WithTrace(distance.Trace(cfg.debug)),
		distance.WithLogger(log),
		distance.WithMetrics(metrics),
	)
	if cfg.metrics != "" {
		if werr := prometheus.WriteToTextfile(cfg.metrics, reg); werr != nil {
			log.ErrorContext(ctx, "writing metrics", "path", cfg.metrics, "error", werr)
		}
	}
	if err != nil {
		log.LogBounds(ctx, 0, 0, false, err)
		return exitError
	}
	summary(stdout, method, b)

	return exitOK
}
