package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/internal/usecase/interfaces"
	"sistema_mdu/pkg"
)

// SQLiteStore persists documents as JSON text in a single table keyed by
// (collection, id). Filters and ordering are pushed down to SQLite through
// json_extract.
type SQLiteStore struct {
	db    *sql.DB
	clock *Clock
}

var _ interfaces.IDocumentStore = (*SQLiteStore)(nil)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	body       TEXT NOT NULL,
	PRIMARY KEY (collection, id)
)`

// NewSQLiteStore migrates the documents table on db.
func NewSQLiteStore(ctx context.Context, db *sql.DB, clock *Clock) (*SQLiteStore, error) {
	if clock == nil {
		clock = NewClock()
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("create documents table: %w", err)
	}
	return &SQLiteStore{db: db, clock: clock}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Add(ctx context.Context, collection string, doc entities.Document) (string, error) {
	id := newID()
	if err := s.insert(ctx, collection, id, doc); err != nil {
		return "", pkg.NewStoreError("add", collection, "", err)
	}
	return id, nil
}

func (s *SQLiteStore) Create(ctx context.Context, collection, id string, doc entities.Document) error {
	if err := s.insert(ctx, collection, id, doc); err != nil {
		return pkg.NewStoreError("create", collection, id, err)
	}
	return nil
}

// insert stamps the document only after the transaction holds the single
// pooled connection, so commit order and timestamp order agree.
func (s *SQLiteStore) insert(ctx context.Context, collection, id string, doc entities.Document) error {
	if err := checkTarget(collection, id, true); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	enc, err := encode(doc, s.clock.Now())
	if err != nil {
		return err
	}
	body, err := json.Marshal(enc)
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO documents (collection, id, body) VALUES (?, ?, ?) ON CONFLICT (collection, id) DO NOTHING`,
		collection, id, string(body))
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return interfaces.ErrDocumentExists
	}
	return tx.Commit()
}

func (s *SQLiteStore) Get(ctx context.Context, collection, id string) (entities.Document, error) {
	if err := checkTarget(collection, id, true); err != nil {
		return nil, pkg.NewStoreError("get", collection, id, err)
	}
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE collection = ? AND id = ?`, collection, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.NewStoreError("get", collection, id, interfaces.ErrDocumentNotFound)
	}
	if err != nil {
		return nil, pkg.NewStoreError("get", collection, id, err)
	}
	m, err := unmarshalRaw([]byte(body))
	if err != nil {
		return nil, pkg.NewStoreError("get", collection, id, err)
	}
	return decode(m), nil
}

func (s *SQLiteStore) List(ctx context.Context, collection string) ([]interfaces.Snapshot, error) {
	return s.Query(ctx, collection, interfaces.Query{})
}

func (s *SQLiteStore) Query(ctx context.Context, collection string, q interfaces.Query) ([]interfaces.Snapshot, error) {
	if err := checkTarget(collection, "", false); err != nil {
		return nil, pkg.NewStoreError("query", collection, "", err)
	}
	stmt, args, err := buildSQLiteQuery(collection, q)
	if err != nil {
		return nil, pkg.NewStoreError("query", collection, "", err)
	}
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, pkg.NewStoreError("query", collection, "", err)
	}
	defer func() { _ = rows.Close() }()

	var out []interfaces.Snapshot
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, pkg.NewStoreError("query", collection, "", err)
		}
		m, err := unmarshalRaw([]byte(body))
		if err != nil {
			return nil, pkg.NewStoreError("query", collection, id, err)
		}
		out = append(out, interfaces.Snapshot{ID: id, Data: decode(m)})
	}
	if err := rows.Err(); err != nil {
		return nil, pkg.NewStoreError("query", collection, "", err)
	}
	return out, nil
}

// buildSQLiteQuery renders the filters first and the ordering clause last.
func buildSQLiteQuery(collection string, q interfaces.Query) (string, []any, error) {
	var b strings.Builder
	args := []any{collection}
	b.WriteString(`SELECT id, body FROM documents WHERE collection = ?`)
	for _, f := range q.Filters {
		path, err := jsonPath(f.Field)
		if err != nil {
			return "", nil, err
		}
		v, err := sqliteValue(f.Value)
		if err != nil {
			return "", nil, err
		}
		b.WriteString(` AND json_extract(body, ?) = ?`)
		args = append(args, path, v)
	}
	if q.Sort != nil {
		path, err := jsonPath(q.Sort.Field)
		if err != nil {
			return "", nil, err
		}
		dir := "ASC"
		if q.Sort.Descending {
			dir = "DESC"
		}
		b.WriteString(` AND json_extract(body, ?) IS NOT NULL ORDER BY json_extract(body, ?) ` + dir + `, id ` + dir)
		args = append(args, path, path)
	}
	return b.String(), args, nil
}

func jsonPath(field string) (string, error) {
	if field == "" || strings.ContainsAny(field, `"\`) {
		return "", errInvalidField
	}
	return `$."` + field + `"`, nil
}

func sqliteValue(v any) (any, error) {
	switch tv := v.(type) {
	case string, float64, float32, int, int32, int64:
		return tv, nil
	case bool:
		if tv {
			return 1, nil
		}
		return 0, nil
	case time.Time:
		return entities.FormatTimestamp(tv), nil
	}
	return nil, fmt.Errorf("unsupported filter value %T", v)
}

func (s *SQLiteStore) Update(ctx context.Context, collection, id string, fields entities.Document) error {
	if err := s.write(ctx, collection, id, fields, false); err != nil {
		return pkg.NewStoreError("update", collection, id, err)
	}
	return nil
}

func (s *SQLiteStore) Upsert(ctx context.Context, collection, id string, fields entities.Document) error {
	if err := s.write(ctx, collection, id, fields, true); err != nil {
		return pkg.NewStoreError("upsert", collection, id, err)
	}
	return nil
}

func (s *SQLiteStore) write(ctx context.Context, collection, id string, fields entities.Document, upsert bool) error {
	if err := checkTarget(collection, id, true); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := s.clock.Now()
	enc, err := encode(fields, now)
	if err != nil {
		return err
	}

	base := map[string]any{}
	var body string
	err = tx.QueryRowContext(ctx, `SELECT body FROM documents WHERE collection = ? AND id = ?`, collection, id).Scan(&body)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if !upsert {
			return interfaces.ErrDocumentNotFound
		}
		if _, ok := enc[entities.FieldCreatedAt]; !ok {
			base[entities.FieldCreatedAt] = entities.FormatTimestamp(now)
		}
	case err != nil:
		return err
	default:
		if base, err = unmarshalRaw([]byte(body)); err != nil {
			return err
		}
	}

	merged, err := json.Marshal(merge(base, enc))
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents (collection, id, body) VALUES (?, ?, ?)
		 ON CONFLICT (collection, id) DO UPDATE SET body = excluded.body`,
		collection, id, string(merged)); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Delete(ctx context.Context, collection, id string) error {
	if err := checkTarget(collection, id, true); err != nil {
		return pkg.NewStoreError("delete", collection, id, err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE collection = ? AND id = ?`, collection, id); err != nil {
		return pkg.NewStoreError("delete", collection, id, err)
	}
	return nil
}
