// Command strbuf loads lines of text into fixed-capacity buffers and prints them in one of the
// supported encodings.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, errHelp) {
		return 0
	} else if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	logLevel := slog.LevelWarn
	if cfg.verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	registry := prometheus.NewRegistry()
	env := &environment{
		cfg:     cfg,
		logger:  logger,
		metrics: newMetrics(registry, "strbuf", ""),
		stdin:   stdin,
		stdout:  stdout,
	}

	err = dispatch(ctx, env)
	if env.cfg.metricsFile != "" {
		if merr := prometheus.WriteToTextfile(env.cfg.metricsFile, registry); merr != nil {
			err = errors.Join(err, fmt.Errorf("write metrics: %w", merr))
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

// dispatch picks the storage type for the configured capacity.
func dispatch(ctx context.Context, env *environment) error {
	switch env.cfg.capacity {
	case 15:
		return process[[16]byte](ctx, env)
	case 31:
		return process[[32]byte](ctx, env)
	case 63:
		return process[[64]byte](ctx, env)
	case 127:
		return process[[128]byte](ctx, env)
	case 255:
		return process[[256]byte](ctx, env)
	case 1022:
		return process[[1024]byte](ctx, env)
	case 4094:
		return process[[4096]byte](ctx, env)
	default:
		return fmt.Errorf("unsupported capacity %d", env.cfg.capacity)
	}
}
