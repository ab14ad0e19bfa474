package sqlite_test

import (
	"testing"

	"github.com/teenjuna/strbuf/internal/sqlite"
	"github.com/teenjuna/strbuf/internal/testing/require"
)

func TestConfigValidation(t *testing.T) {
	cfg := &sqlite.Config{}

	require.PanicWithError(t, "file can't be blank", func() {
		cfg.File(" ")
	})

	require.PanicWithError(t, "file can't contain ?", func() {
		cfg.File("lines.db?mode=ro")
	})
}
