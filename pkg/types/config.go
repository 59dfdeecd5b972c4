package types

import (
	"errors"
	"path/filepath"
)

// DefaultDatabaseFile is the database file name used when Config.Database is empty.
const DefaultDatabaseFile = "madang.db"

// Config locates the database file for Backend.Attach.
type Config struct {
	DataDir  string `json:"data_dir" yaml:"data_dir"`
	Database string `json:"database" yaml:"database"`
}

// Config validation errors.
var (
	ErrDatabaseNameInvalid = errors.New("database must be a file name, not a path")
)

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.Database != "" && filepath.Base(c.Database) != c.Database {
		return ErrDatabaseNameInvalid
	}
	return nil
}

// Path returns the database file path. An empty DataDir means the current
// directory.
func (c Config) Path() string {
	dir := c.DataDir
	if dir == "" {
		dir = "."
	}
	name := c.Database
	if name == "" {
		name = DefaultDatabaseFile
	}
	return filepath.Join(dir, name)
}
