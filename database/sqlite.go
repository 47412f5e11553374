package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jalexanderII/spatial-todo/models"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// SqliteStore keeps todos in a single SQLite table. Absent fields are stored
// as NULL and rows come back in rowid order.
//
//	todos(id, title, description, is_done, x, y)  PRIMARY KEY (id)
type SqliteStore struct {
	db      *sql.DB
	timeout time.Duration
}

// NewSqliteStore opens (or creates) the database at dbPath. Every call runs
// under timeout; zero means no limit.
func NewSqliteStore(dbPath string, timeout time.Duration) (*SqliteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, sqliteError(err, "open database")
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS todos (
		id TEXT PRIMARY KEY,
		title TEXT,
		description TEXT,
		is_done INTEGER,
		x REAL,
		y REAL
	)`); err != nil {
		db.Close()
		return nil, sqliteError(err, "create todos table")
	}
	return &SqliteStore{db: db, timeout: timeout}, nil
}

func (s *SqliteStore) context(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return NewDBContext(ctx, s.timeout)
}

// sqliteError tags failures to reach the database file with
// ErrStoreUnavailable and wraps everything else with the failing operation.
func sqliteError(err error, op string) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen, sqlite3.ErrIoErr, sqlite3.ErrNotADB:
			return errors.Wrapf(ErrStoreUnavailable, "%s: %v", op, err)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, sql.ErrConnDone) {
		return errors.Wrapf(ErrStoreUnavailable, "%s: %v", op, err)
	}
	return errors.Wrap(err, op)
}

const selectToDo = "SELECT id, title, description, is_done, x, y FROM todos"

type scanner interface {
	Scan(dest ...any) error
}

func scanToDo(row scanner) (*models.ToDo, error) {
	var (
		id          string
		title, desc sql.NullString
		isDone      sql.NullBool
		x, y        sql.NullFloat64
	)
	if err := row.Scan(&id, &title, &desc, &isDone, &x, &y); err != nil {
		return nil, err
	}
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	t := &models.ToDo{ID: oid}
	if title.Valid {
		t.Title = &title.String
	}
	if desc.Valid {
		t.Description = &desc.String
	}
	if isDone.Valid {
		t.IsDone = &isDone.Bool
	}
	if x.Valid {
		t.X = &x.Float64
	}
	if y.Valid {
		t.Y = &y.Float64
	}
	return t, nil
}

func (s *SqliteStore) List(ctx context.Context) ([]models.ToDo, error) {
	ctx, cancel := s.context(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, selectToDo+" ORDER BY rowid")
	if err != nil {
		return nil, sqliteError(err, "query todos")
	}
	defer rows.Close()
	todos := make([]models.ToDo, 0)
	for rows.Next() {
		t, err := scanToDo(rows)
		if err != nil {
			return nil, sqliteError(err, "scan todo")
		}
		todos = append(todos, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, sqliteError(err, "query todos")
	}
	return todos, nil
}

func (s *SqliteStore) Create(ctx context.Context, t models.ToDo) (*models.ToDo, error) {
	ctx, cancel := s.context(ctx)
	defer cancel()

	t = t.Clone()
	t.ID = newID()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO todos (id, title, description, is_done, x, y) VALUES (?, ?, ?, ?, ?, ?)",
		t.ID.Hex(), t.Title, t.Description, t.IsDone, t.X, t.Y,
	)
	if err != nil {
		return nil, sqliteError(err, "insert todo")
	}
	return &t, nil
}

func (s *SqliteStore) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	ctx, cancel := s.context(ctx)
	defer cancel()

	if _, err = s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", oid.Hex()); err != nil {
		return sqliteError(err, "delete todo")
	}
	return nil
}

func (s *SqliteStore) SetDone(ctx context.Context, id string, done bool) error {
	return s.set(ctx, id, []string{"is_done"}, []any{done})
}

func (s *SqliteStore) UpdateContent(ctx context.Context, id string, u models.ContentUpdate) (*models.ToDo, error) {
	if !u.IsEmpty() {
		var (
			cols []string
			args []any
		)
		if u.Title != nil {
			cols, args = append(cols, "title"), append(args, *u.Title)
		}
		if u.Description != nil {
			cols, args = append(cols, "description"), append(args, *u.Description)
		}
		if u.IsDone != nil {
			cols, args = append(cols, "is_done"), append(args, *u.IsDone)
		}
		if err := s.set(ctx, id, cols, args); err != nil {
			return nil, err
		}
	}
	return s.findByID(ctx, id)
}

func (s *SqliteStore) UpdatePosition(ctx context.Context, id string, u models.PositionUpdate) (*models.ToDo, error) {
	if !u.IsEmpty() {
		var (
			cols []string
			args []any
		)
		if u.X != nil {
			cols, args = append(cols, "x"), append(args, *u.X)
		}
		if u.Y != nil {
			cols, args = append(cols, "y"), append(args, *u.Y)
		}
		if err := s.set(ctx, id, cols, args); err != nil {
			return nil, err
		}
	}
	return s.findByID(ctx, id)
}

// set updates the named columns of one row. Column names never come from
// request input, and callers never pass an empty set.
func (s *SqliteStore) set(ctx context.Context, id string, cols []string, args []any) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	ctx, cancel := s.context(ctx)
	defer cancel()

	assignments := make([]string, len(cols))
	for i, col := range cols {
		assignments[i] = col + " = ?"
	}
	query := "UPDATE todos SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
	if _, err = s.db.ExecContext(ctx, query, append(args, oid.Hex())...); err != nil {
		return sqliteError(err, "update todo")
	}
	return nil
}

func (s *SqliteStore) findByID(ctx context.Context, id string) (*models.ToDo, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.context(ctx)
	defer cancel()

	t, err := scanToDo(s.db.QueryRowContext(ctx, selectToDo+" WHERE id = ?", oid.Hex()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, sqliteError(err, "find todo")
	}
	return t, nil
}

func (s *SqliteStore) Ping(ctx context.Context) error {
	ctx, cancel := s.context(ctx)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return errors.Wrap(ErrStoreUnavailable, err.Error())
	}
	return nil
}

func (s *SqliteStore) Close(_ context.Context) error {
	return s.db.Close()
}
