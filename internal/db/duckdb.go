// Package db owns the in-process DuckDB engine used to query catalog files.
package db

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"

	_ "github.com/marcboeker/go-duckdb"
)

// extensions are installed and loaded once when the engine opens
var extensions = []string{"json"}

var (
	shared     *sql.DB
	sharedOnce sync.Once
	sharedErr  error
)

// GetDB returns the process-wide engine, opening it on first use.
// DuckDB serializes writers, so one connection is enough.
func GetDB() (*sql.DB, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = open()
	})
	return shared, sharedErr
}

func open() (*sql.DB, error) {
	engine, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB: %w", err)
	}
	engine.SetMaxOpenConns(1)
	engine.SetMaxIdleConns(1)

	for _, ext := range extensions {
		for _, stmt := range []string{"INSTALL " + ext, "LOAD " + ext} {
			if _, err := engine.Exec(stmt); err != nil {
				engine.Close()
				return nil, fmt.Errorf("failed to %s extension: %w", strings.ToLower(stmt), err)
			}
		}
	}
	return engine, nil
}

// QuoteLiteral renders s as a single-quoted SQL string literal
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// ReadJSONArray returns a read_json table expression for a file holding one
// JSON array. columns maps each key to its DuckDB type; keys missing from a
// record read as NULL instead of failing schema detection.
func ReadJSONArray(path string, columns map[string]string) string {
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]string, len(names))
	for i, name := range names {
		fields[i] = fmt.Sprintf("%s: %s", name, QuoteLiteral(columns[name]))
	}

	return fmt.Sprintf("read_json(%s, format = 'array', columns = {%s})",
		QuoteLiteral(path), strings.Join(fields, ", "))
}
