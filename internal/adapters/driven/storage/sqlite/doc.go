// Package sqlite provides a SQLite-based implementation of driven.DocumentStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// Documents are stored across three tables: documents holds the summary row,
// groups holds one row per group instance in encoder order, and bindings holds
// one row per slot. The schema is managed through versioned migrations stored
// in the migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.resp2seed/data/documents.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
