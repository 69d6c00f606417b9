package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/spf13/pflag"

	"digitchain/internal/report"
	"digitchain/internal/search"
)

type config struct {
	digitsStr string
	format    report.Format
	color     report.ColorMode
	logLevel  slog.Level
	workers   int
	top       int
	verify    bool
}

// exitError carries the process exit code for failures that are not plain
// runtime errors.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func usageError(format string, args ...any) error {
	return &exitError{code: 2, msg: fmt.Sprintf(format, args...)}
}

func parseFlags(args []string, out io.Writer) (*config, bool, error) {
	cfg := &config{}
	var formatStr, colorStr, levelStr string

	fs := pflag.NewFlagSet("digitchain", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintln(out, "Usage: digitchain [flags]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Finds the four digits whose +, -, *, / expressions reach the longest run of targets 1..n.")
		fmt.Fprintln(out)
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.digitsStr, "digits", "", "report the chain for a single digit set (e.g. 1234) instead of searching")
	fs.IntVarP(&cfg.workers, "workers", "w", runtime.NumCPU(), "number of worker goroutines")
	fs.StringVarP(&formatStr, "format", "f", string(report.Text), "report format: text, json or yaml")
	fs.StringVar(&colorStr, "color", string(report.ColorAuto), "style the text report: auto, always or never")
	fs.IntVar(&cfg.top, "top", 0, "also list the best N digit sets")
	fs.BoolVar(&cfg.verify, "verify", false, "re-evaluate every reported expression before printing")
	fs.StringVar(&levelStr, "log-level", "warn", "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%v", err)
	}
	if fs.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	var err error
	if cfg.format, err = report.ParseFormat(formatStr); err != nil {
		return nil, false, usageError("%v", err)
	}
	if cfg.color, err = report.ParseColorMode(colorStr); err != nil {
		return nil, false, usageError("%v", err)
	}
	if cfg.logLevel, err = parseLevel(levelStr); err != nil {
		return nil, false, usageError("%v", err)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	if cfg.top < 0 {
		return nil, false, usageError("--top must not be negative")
	}
	return cfg, false, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.msg)
			os.Exit(exitErr.code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, exit, err := parseFlags(args, stderr)
	if err != nil || exit {
		return err
	}
	logger := newLogger(stderr, cfg.logLevel)

	var rep *report.Report
	var digits search.Digits
	var chain []string
	if cfg.digitsStr != "" {
		digits, err = search.ParseDigits(cfg.digitsStr)
		if err != nil {
			return usageError("%v", err)
		}
		o := search.Enumerate(digits)
		logger.Info("digit set enumerated", "digits", digits.Key(), "n", o.RunLength(), "targets", o.Distinct())
		chain = o.Chain()
		rep = report.FromOutcome(o)
	} else {
		res, err := search.Search(ctx, search.Options{Workers: cfg.workers, Logger: logger})
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}
		digits, chain = res.Digits, res.Expressions
		rep = report.FromResult(res, cfg.top)
	}

	if cfg.verify {
		if err := search.VerifyChain(digits, chain); err != nil {
			return err
		}
		logger.Info("chain verified", "digits", digits.Key(), "n", len(chain))
	}

	return report.Write(stdout, rep, cfg.format, report.NewTheme(stdout, cfg.color))
}
