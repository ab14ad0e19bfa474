package sqlite

import (
	"strings"
)

// Config holds the settings of a [Storage]. It's changed only through its setters, which panic on
// invalid values.
type Config struct {
	file    string
	durable bool
}

type ConfigFunc = func(c *Config)

// File sets the database file. ":memory:" selects a private in-memory database.
func (c *Config) File(file string) {
	file = strings.TrimSpace(file)
	if file == "" {
		panic("file can't be blank")
	}
	if strings.Contains(file, "?") {
		panic("file can't contain ?")
	}
	c.file = file
}

// Durable makes every commit wait for a full sync of the file.
func (c *Config) Durable(durable bool) {
	c.durable = durable
}
