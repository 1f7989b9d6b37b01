// Package log provides centralised analytics logging for glint operations.
// Logs are stored in ~/.glint/log/glint-log.db and track all CLI commands
// and MCP tool invocations across catalogs.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("search:search", "search").
//		Query(q).
//		Results(len(results)).
//		Write(err)
//
//	log.Event("mcp:glint_exact", "lookup").
//		Query(q).
//		Detail("found", ok).
//		Write(err)
//
// The source parameter follows the format "{group}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "search:search",
// "mcp:glint_search".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "search:search", "mcp:glint_search"
	Action string // verb: search, lookup, suggest, clear, etc.
	Query  string // input: the query text, if any

	// Output fields - populated after the operation completes
	Results int // output: number of results produced

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether the operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{group}:{command}" (e.g., "search:search", "history:clear")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:glint_search")
//
// Example:
//
//	log.Event("search:search", "search").
//		Query(q).
//		Results(len(results)).
//		Write(err)
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Query sets the query text this operation ran with.
//
// Leave unset for operations that take no query (e.g., listing the catalog).
func (b *Builder) Query(query string) *Builder {
	b.entry.Query = query
	return b
}

// Results sets the number of results the operation produced (output).
func (b *Builder) Results(n int) *Builder {
	b.entry.Results = n
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// categories, limits, match types, etc. Can be called multiple times
// to add multiple details.
//
// Example:
//
//	log.Event("catalog:catalog", "list").
//		Detail("category", category).
//		Detail("count", len(products))
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
//
// This is the standard way to complete a log entry after an operation.
//
// Example:
//
//	results := eng.SearchProducts(q)
//	log.Event("search:search", "search").Query(q).Results(len(results)).Write(nil)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetCatalog sets the catalog identifier for subsequent log entries.
// The path should be the catalog file the engine was loaded from.
func SetCatalog(path string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.catalog = hash(path)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
