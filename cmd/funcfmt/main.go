// Command funcfmt renders a {key} template against the records of a yaml job
// file, or times compile and render with -bench.
package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"

	"fbnoi.com/funcfmt"
	"fbnoi.com/funcfmt/internal/benchdata"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("funcfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "path to the yaml job file")
		bench      = fs.Bool("bench", false, "time compile and render instead of rendering records")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	err := execute(*configPath, *bench, stdout, logger)
	if err != nil {
		logger.Error("funcfmt failed", slog.String("error", err.Error()))
	}

	return err
}

func execute(configPath string, bench bool, stdout io.Writer, logger *slog.Logger) error {
	if configPath == "" {
		return errors.New("-config is required")
	}
	config, err := funcfmt.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if bench {
		return runBench(config.Iterations, logger)
	}

	return renderRecords(config, stdout, logger)
}

func renderRecords(config *funcfmt.Config, stdout io.Writer, logger *slog.Logger) error {
	keys := config.FieldKeys()
	pieces, err := funcfmt.Fields(keys...).Compile(config.Template)
	if err != nil {
		return errors.Wrap(err, "compile template")
	}
	logger.Debug("template compiled",
		slog.Int("pieces", len(pieces)),
		slog.Int("keys", len(keys)),
	)

	for i, rec := range config.Records {
		if err := pieces.RenderTo(stdout, rec); err != nil {
			return errors.Wrapf(err, "record %d", i)
		}
		if _, err := io.WriteString(stdout, "\n"); err != nil {
			return errors.Wrapf(&funcfmt.WriteError{Err: err}, "record %d", i)
		}
	}
	logger.Debug("records rendered", slog.Int("records", len(config.Records)))

	return nil
}

func runBench(iterations int, logger *slog.Logger) error {
	m, tmpl, expected := benchdata.Numbered(benchdata.Keys)
	start := time.Now()
	for i := 0; i < iterations; i++ {
		pieces, err := m.Compile(tmpl)
		if err != nil {
			return errors.Wrap(err, "compile benchmark template")
		}
		out, err := pieces.Render(benchdata.Input)
		if err != nil {
			return errors.Wrap(err, "render benchmark template")
		}
		if out != expected {
			return errors.Errorf("benchmark rendered %q, expected %q", out, expected)
		}
	}
	elapsed := time.Since(start)

	nsPerOp := 0.0
	if iterations > 0 {
		nsPerOp = float64(elapsed.Nanoseconds()) / float64(iterations)
	}
	logger.Info("benchmark completed",
		slog.Int("iterations", iterations),
		slog.Int("keys", benchdata.Keys),
		slog.Float64("duration_ms", float64(elapsed.Microseconds())/1000),
		slog.Float64("ns_per_op", nsPerOp),
	)

	return nil
}
