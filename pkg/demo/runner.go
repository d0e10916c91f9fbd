package demo

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/metricz"

	"github.com/ib-77/fallible/pkg/demoerr"
	"github.com/ib-77/fallible/pkg/numfile"
	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/solo"
)

var (
	SectionsTotal  = metricz.Key("demo.sections.total")
	SuccessesTotal = metricz.Key("demo.successes.total")
	FailuresTotal  = metricz.Key("demo.failures.total")
)

// DurationKey names the gauge holding the last run time of a section in
// milliseconds.
func DurationKey(section string) metricz.Key {
	return metricz.Key("demo.duration.ms." + section)
}

// Runner prints the outcome of each section. It is not safe for concurrent use.
type Runner struct {
	cfg     Config
	fs      billy.Basic
	out     io.Writer
	errOut  io.Writer
	logger  *slog.Logger
	clock   clockz.Clock
	metrics *metricz.Registry
}

func NewRunner(cfg Config, opts ...Option) *Runner {
	metrics := metricz.New()
	metrics.Counter(SectionsTotal)
	metrics.Counter(SuccessesTotal)
	metrics.Counter(FailuresTotal)

	r := &Runner{
		cfg:     cfg,
		out:     os.Stdout,
		errOut:  os.Stderr,
		logger:  slog.New(slog.DiscardHandler),
		clock:   clockz.RealClock,
		metrics: metrics,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fs == nil {
		r.fs = osfs.New("/")
		r.cfg = r.cfg.absolute()
	}
	return r
}

func (r *Runner) Metrics() *metricz.Registry {
	return r.metrics
}

// Run executes every section. Failures in the basics and propagation
// sections stop the run; the file-reading sections only report theirs.
func (r *Runner) Run() error {
	if err := r.Basics(); err != nil {
		return err
	}
	if err := r.Propagation(); err != nil {
		return err
	}
	r.Combinators()

	if err := r.ReadNumber(); err != nil {
		fmt.Fprintf(r.errOut, "read failed: %s\n", rop.Describe(err))
	}
	if err := r.ReadNumberErased(); err != nil {
		fmt.Fprintf(r.errOut, "erased read failed: %s\n", rop.Describe(err))
	}
	return nil
}

func (r *Runner) Basics() error {
	return r.section("basics", func() error {
		ok := rop.Success[int, string](42)
		failed := rop.Fail[int]("boom")

		fmt.Fprintf(r.out, "ok.IsSuccess() = %t\n", ok.IsSuccess())
		fmt.Fprintf(r.out, "failed.IsFailure() = %t\n", failed.IsFailure())
		fmt.Fprintf(r.out, "failed.UnwrapOr(-1) = %d\n", failed.UnwrapOr(-1))
		fmt.Fprintln(r.out, solo.Finally(ok,
			func(v int) string { return fmt.Sprintf("match success: %d", v) },
			func(err string) string { return "match failure: " + err }))
		return nil
	})
}

func (r *Runner) Propagation() error {
	return r.section("propagation", func() error {
		res := Propagate(r.fs, r.cfg.Input, r.cfg.SourcePath, Progress{
			Parsed: func(n int) { fmt.Fprintf(r.out, "parsed = %d\n", n) },
			Read: func(p Propagated) {
				fmt.Fprintf(r.out, "%s length = %d\n", r.cfg.SourcePath, p.SourceLength)
			},
		})
		return rop.Erase(res).Err()
	})
}

func (r *Runner) Combinators() {
	_ = r.section("combinators", func() error {
		fmt.Fprintf(r.out, "map doubled = %s\n", formatResult(Doubled("10")))
		fmt.Fprintf(r.out, "map_err => %s\n", formatResult(ParseDescribed("abc")))
		fmt.Fprintf(r.out, "and_then chained = %s\n", formatResult(ReciprocalOf("5")))
		fmt.Fprintf(r.out, "and_then zero = %s\n", formatResult(ReciprocalOf("0")))
		return nil
	})
}

// ReadNumber reads the configured numbers file with the typed taxonomy.
func (r *Runner) ReadNumber() error {
	return r.section("custom-error", func() error {
		res := numfile.ReadNumber(r.fs, r.cfg.NumbersPath)
		solo.Tee(res, func(n uint32) { fmt.Fprintf(r.out, "read number: %d\n", n) })
		return rop.Erase(res).Err()
	})
}

// ReadNumberErased reads the configured numbers file, keeping raw errors.
func (r *Runner) ReadNumberErased() error {
	return r.section("erased", func() error {
		res := numfile.ReadNumberErased(r.fs, r.cfg.NumbersPath)
		solo.Tee(res, func(n uint32) { fmt.Fprintf(r.out, "erased read number: %d\n", n) })
		return res.Err()
	})
}

func (r *Runner) section(name string, body func() error) error {
	fmt.Fprintf(r.out, "\n=== %s ===\n", name)
	r.logger.Debug("section started", "section", name)
	r.metrics.Counter(SectionsTotal).Inc()

	start := r.clock.Now()
	err := body()
	elapsed := r.clock.Now().Sub(start)
	r.metrics.Gauge(DurationKey(name)).Set(float64(elapsed.Milliseconds()))

	if err != nil {
		r.metrics.Counter(FailuresTotal).Inc()
		r.logger.Warn("section failed",
			"section", name,
			"kind", kindOf(err),
			"cause_chain", FormatCauseChain(err))
		return err
	}

	r.metrics.Counter(SuccessesTotal).Inc()
	r.logger.Debug("section finished", "section", name, "elapsed", elapsed)
	return nil
}

// FormatCauseChain renders the errors below err, outermost first.
func FormatCauseChain(err error) string {
	chain := rop.CauseChain(err)
	if len(chain) < 2 {
		return ""
	}

	parts := make([]string, 0, len(chain)-1)
	for _, cause := range chain[1:] {
		parts = append(parts, cause.Error())
	}
	return strings.Join(parts, " <- ")
}

func kindOf(err error) string {
	for _, k := range []demoerr.Kind{demoerr.IoFailure, demoerr.ParseFailure, demoerr.RuleViolation} {
		if demoerr.IsKind(err, k) {
			return k.String()
		}
	}
	return "untyped"
}

func formatResult[T, E any](res rop.Result[T, E]) string {
	return solo.Finally(res,
		func(v T) string { return fmt.Sprintf("Ok(%v)", v) },
		func(err E) string { return fmt.Sprintf("Err(%v)", err) })
}
