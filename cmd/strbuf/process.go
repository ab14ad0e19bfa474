package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/teenjuna/strbuf"
	"github.com/teenjuna/strbuf/codec"
	"github.com/teenjuna/strbuf/codec/cbor"
	"github.com/teenjuna/strbuf/codec/gob"
	"github.com/teenjuna/strbuf/codec/json"
	"github.com/teenjuna/strbuf/codec/msgp"
	"github.com/teenjuna/strbuf/codec/yaml"
	"github.com/teenjuna/strbuf/internal/sqlite"
)

const stdinName = "-"

type environment struct {
	cfg     *config
	logger  *slog.Logger
	metrics *metrics
	stdin   io.Reader
	stdout  io.Writer
}

func process[S strbuf.Storage](ctx context.Context, env *environment) error {
	sources := env.cfg.files
	if len(sources) == 0 {
		sources = []string{stdinName}
	}

	results := make([][]strbuf.Buffer[S], len(sources))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(env.cfg.workers)
	for i, source := range sources {
		group.Go(func() error {
			lines, err := loadSource[S](ctx, env, source)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			results[i] = lines
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	if env.cfg.db != "" {
		if err := store(env, sources, results); err != nil {
			return fmt.Errorf("store lines: %w", err)
		}
	}

	return output(env, slices.Concat(results...))
}

func loadSource[S strbuf.Storage](ctx context.Context, env *environment, source string) ([]strbuf.Buffer[S], error) {
	var r io.Reader
	if source == stdinName {
		r = env.stdin
	} else {
		file, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	var (
		reader = bufio.NewReader(r)
		lines  []strbuf.Buffer[S]
	)
	for number := 1; ; number++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := reader.ReadString('\n')
		if err == io.EOF && text == "" {
			return lines, nil
		} else if err != nil && err != io.EOF {
			return nil, err
		}
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")

		line, err := loadLine[S](env, source, number, text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", number, err)
		}
		lines = append(lines, line)
	}
}

func loadLine[S strbuf.Storage](env *environment, source string, number int, text string) (strbuf.Buffer[S], error) {
	env.metrics.lines.Inc()

	var line strbuf.Buffer[S]
	if env.cfg.strict {
		if err := line.TryPushString(text); err != nil {
			env.metrics.rejected.Inc()
			return line, err
		}
	} else if n, err := line.WriteString(text); errors.Is(err, strbuf.ErrInvalidUTF8) {
		env.metrics.invalid.Inc()
		env.logger.Warn("line has invalid UTF-8",
			"source", source,
			"line", number,
			"kept", n,
			"length", len(text),
		)
	} else if errors.Is(err, strbuf.ErrOverflow) {
		env.metrics.truncated.Inc()
		env.logger.Warn("line truncated",
			"source", source,
			"line", number,
			"kept", n,
			"length", len(text),
		)
	}

	if env.cfg.trim {
		line.Trim()
	}
	switch env.cfg.letterCase {
	case "upper":
		line.MakeASCIIUpper()
	case "lower":
		line.MakeASCIILower()
	}

	env.metrics.bytes.Add(float64(line.Len()))
	env.logger.Debug("line loaded",
		"source", source,
		"line", number,
		"bytes", line.Len(),
		"remaining", line.Remaining(),
	)

	return line, nil
}

func store[S strbuf.Storage](env *environment, sources []string, results [][]strbuf.Buffer[S]) (err error) {
	storage, err := sqlite.New[S](func(c *sqlite.Config) {
		c.File(env.cfg.db)
	})
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, storage.Close())
	}()

	for i, source := range sources {
		for position, line := range results[i] {
			if err := storage.Push(source, position, line); err != nil {
				return err
			}
		}
	}

	return nil
}

func output[S strbuf.Storage](env *environment, lines []strbuf.Buffer[S]) error {
	if env.cfg.format == "text" {
		w := bufio.NewWriter(env.stdout)
		for _, line := range lines {
			if _, err := line.WriteTo(w); err != nil {
				return err
			}
			if err := w.WriteByte('\n'); err != nil {
				return err
			}
		}
		return w.Flush()
	}

	c, err := newCodec[S](env.cfg.format)
	if err != nil {
		return err
	}
	data, err := c.Encode(slices.Values(lines))
	if err != nil {
		return fmt.Errorf("encode lines: %w", err)
	}
	_, err = env.stdout.Write(data)
	return err
}

func newCodec[S strbuf.Storage](format string) (codec.Codec[S], error) {
	switch format {
	case "json":
		return json.New[S](), nil
	case "gob":
		return gob.New[S](), nil
	case "msgp":
		return msgp.New[S](), nil
	case "cbor":
		return cbor.New[S](), nil
	case "yaml":
		return yaml.New[S](), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
