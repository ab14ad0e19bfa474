// Package sqlite stores lines of text as fixed buffers in a SQLite database.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
	"github.com/teenjuna/strbuf"
	"github.com/teenjuna/strbuf/internal"
)

var (
	// ErrClosed is returned by Storage methods when the storage has been closed.
	ErrClosed = errors.New("storage is closed")
)

const (
	memory = ":memory:"
)

// Storage is a table of lines backed by SQLite. Lines go in and out through the [driver.Valuer]
// and [sql.Scanner] implementations of [strbuf.Buffer], so reading a line longer than the
// capacity of S fails with [strbuf.ErrOverflow].
type Storage[S strbuf.Storage] struct {
	cfg *Config
	db  *sql.DB
}

// New creates a new Storage with the provided configuration functions.
//
// Default configuration:
//   - File: ":memory:" (in-memory database)
//   - Durable: false
//
// Returns an error if the SQLite database cannot be opened or initialized.
func New[S strbuf.Storage](configFuncs ...ConfigFunc) (*Storage[S], error) {
	cfg := &Config{}
	cfg.File(memory)
	for _, cf := range configFuncs {
		cf(cfg)
	}

	db, err := open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	if err := setup(db); err != nil {
		return nil, errors.Join(fmt.Errorf("setup: %w", err), db.Close())
	}

	storage := Storage[S]{
		cfg: cfg,
		db:  db,
	}

	return &storage, nil
}

// Push inserts the line found at position of source, replacing any line already there.
//
// Returns [ErrClosed] if the storage has been closed.
func (s *Storage[S]) Push(source string, position int, line strbuf.Buffer[S]) error {
	_, err := s.db.Exec(
		`
		insert or replace into line (
			source,
			position,
			text
		) values (
			:source,
			:position,
			:text
		)
		`,
		sql.Named("source", source),
		sql.Named("position", position),
		sql.Named("text", line),
	)
	return closed(err)
}

// Lines returns the lines of source ordered by position.
//
// Returns [ErrClosed] if the storage has been closed.
func (s *Storage[S]) Lines(source string) ([]strbuf.Buffer[S], error) {
	rows, err := s.db.Query(
		`
		select text from line
		where source = :source
		order by position asc
		`,
		sql.Named("source", source),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", closed(err))
	}
	defer rows.Close()

	var lines []strbuf.Buffer[S]
	for rows.Next() {
		var line strbuf.Buffer[S]
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	return lines, nil
}

// Count returns the number of stored lines.
func (s *Storage[S]) Count() (int, error) {
	var count int
	err := s.db.QueryRow("select count(*) from line").Scan(&count)
	if err != nil {
		return 0, closed(err)
	}
	return count, nil
}

// Close closes the underlying SQLite database.
//
// After closing, all methods on Storage will return [ErrClosed].
func (s *Storage[S]) Close() error {
	return s.db.Close()
}

func closed(err error) error {
	if err != nil && err.Error() == "sql: database is closed" {
		return ErrClosed
	}
	return err
}

func open(cfg *Config) (*sql.DB, error) {
	uri := &url.URL{Scheme: "file", Opaque: cfg.file}

	params := url.Values{}
	params.Add("_txlock", "immediate")
	params.Add("_timeout", "5000") // 5s
	if cfg.file == memory {
		uri.Opaque = internal.GenerateID()
		params.Add("mode", "memory")
		params.Add("cache", "shared")
	} else {
		params.Add("_journal", "wal")
		if cfg.durable {
			params.Add("_sync", "full")
		} else {
			params.Add("_sync", "normal")
		}
	}

	uri.RawQuery = params.Encode()

	db, err := sql.Open("sqlite3", uri.String())
	if err != nil {
		return nil, err
	}

	db.SetConnMaxIdleTime(0)
	db.SetConnMaxLifetime(0)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return db, nil
}

func setup(db *sql.DB) error {
	if _, err := db.Exec(
		`
		create table if not exists line (
			source   text not null,
			position int not null,
			text     text not null,
			primary key (source, position)
		) strict
		`,
	); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	return nil
}
