package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/resp2seed/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/resp2seed/internal/core/domain"
	"github.com/custodia-labs/resp2seed/internal/core/ports/driven"
)

// Store is a SQLite-based document archive.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.resp2seed/data/documents.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".resp2seed", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "documents.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// DocumentStore returns a DocumentStore interface backed by this store.
func (s *Store) DocumentStore() driven.DocumentStore {
	return &documentStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Document Store ====================

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// SaveDocument stores or replaces a document with all of its groups.
func (s *documentStore) SaveDocument(ctx context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// Replacing cascades to the old groups and bindings.
	if _, err := tx.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", doc.ID); err != nil {
		return fmt.Errorf("replacing document: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (id, source, created_at, header_count, lookup_count, entity_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Source, doc.CreatedAt.UTC(), len(doc.Header), len(doc.Lookup), len(doc.Entity))
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}

	groupStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO group_instances (document_id, position, group_type, name, category, line)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer groupStmt.Close()

	bindingStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO bindings (document_id, position, slot, field_id, field_name, field_kind,
			field_length, field_default, value, length, defaulted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer bindingStmt.Close()

	for pos, g := range doc.Groups() {
		if _, err := groupStmt.ExecContext(ctx, doc.ID, pos, int(g.Type), g.Name, int(g.Category), g.Line); err != nil {
			return fmt.Errorf("saving group %s: %w", g.Type, err)
		}
		for _, b := range g.Bindings {
			if _, err := bindingStmt.ExecContext(ctx, doc.ID, pos, b.Slot, b.Field.ID, b.Field.Name,
				int(b.Field.Kind), b.Field.Length, b.Field.Default, b.Value, b.Length, b.Defaulted); err != nil {
				return fmt.Errorf("saving binding %d of group %s: %w", b.Slot, g.Type, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetDocument retrieves a document by ID with its groups in encoder order.
func (s *documentStore) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, source, created_at, header_count, lookup_count, entity_count
		FROM documents WHERE id = ?
	`, id)

	summary, err := scanSummary(row)
	if err != nil {
		return nil, err
	}

	groups, err := s.groups(ctx, id)
	if err != nil {
		return nil, err
	}

	doc := domain.NewDocument(summary.ID, summary.Source, summary.CreatedAt)
	for _, g := range groups {
		if err := doc.Append(g); err != nil {
			return nil, fmt.Errorf("loading document %s: %w", id, err)
		}
	}
	return doc, nil
}

// groups loads the group instances of a document.
func (s *documentStore) groups(ctx context.Context, id string) ([]domain.GroupInstance, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT position, group_type, name, category, line
		FROM group_instances WHERE document_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying groups: %w", err)
	}
	defer rows.Close()

	var groups []domain.GroupInstance //nolint:prealloc // size unknown from query
	index := make(map[int]int)
	for rows.Next() {
		var g domain.GroupInstance
		var pos int
		if err := rows.Scan(&pos, &g.Type, &g.Name, &g.Category, &g.Line); err != nil {
			return nil, fmt.Errorf("scanning group: %w", err)
		}
		index[pos] = len(groups)
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating groups: %w", err)
	}

	brows, err := s.store.db.QueryContext(ctx, `
		SELECT position, slot, field_id, field_name, field_kind, field_length, field_default,
			value, length, defaulted
		FROM bindings WHERE document_id = ?
		ORDER BY position, slot
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying bindings: %w", err)
	}
	defer brows.Close()

	for brows.Next() {
		var b domain.Binding
		var pos int
		if err := brows.Scan(&pos, &b.Slot, &b.Field.ID, &b.Field.Name, &b.Field.Kind,
			&b.Field.Length, &b.Field.Default, &b.Value, &b.Length, &b.Defaulted); err != nil {
			return nil, fmt.Errorf("scanning binding: %w", err)
		}
		i, ok := index[pos]
		if !ok {
			continue
		}
		groups[i].Bindings = append(groups[i].Bindings, b)
	}
	if err := brows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bindings: %w", err)
	}

	return groups, nil
}

// DeleteDocument removes a document, its groups and bindings.
func (s *documentStore) DeleteDocument(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListDocuments returns document summaries, oldest first.
func (s *documentStore) ListDocuments(ctx context.Context) ([]domain.DocumentSummary, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, source, created_at, header_count, lookup_count, entity_count
		FROM documents ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	docs := []domain.DocumentSummary{}
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return docs, nil
}

// ==================== Helper Functions ====================

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanSummary scans a single documents row.
func scanSummary(row scanner) (*domain.DocumentSummary, error) {
	var d domain.DocumentSummary
	if err := row.Scan(&d.ID, &d.Source, &d.CreatedAt, &d.Header, &d.Lookup, &d.Entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}
	return &d, nil
}
