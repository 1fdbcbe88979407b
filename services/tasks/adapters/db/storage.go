package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bhaktofmahakal/Kanban-board/services/tasks/core"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const (
	DriverPostgres = "pgx"
	DriverMySQL    = "mysql"
)

type DB struct {
	log     *slog.Logger
	conn    *sqlx.DB
	dialect string
}

// New opens and pings the store. driver is DriverPostgres or DriverMySQL.
func New(log *slog.Logger, driver, address string) (*DB, error) {
	dialect, err := dialectOf(driver)
	if err != nil {
		return nil, err
	}

	if driver == DriverMySQL {
		if address, err = mysqlDSN(address); err != nil {
			return nil, err
		}
	}

	conn, err := sqlx.Connect(driver, address)
	if err != nil {
		log.Error("connection problem", "driver", driver, "error", err)
		return nil, err
	}
	return &DB{log: log, conn: conn, dialect: dialect}, nil
}

func dialectOf(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "postgres", nil
	case DriverMySQL:
		return "mysql", nil
	default:
		return "", fmt.Errorf("unsupported db driver %q", driver)
	}
}

// mysqlDSN forces parseTime so DATETIME columns scan into time.Time.
func mysqlDSN(address string) (string, error) {
	cfg, err := mysql.ParseDSN(address)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	// RowsAffected counts matched rows, so a no-op patch is not "not found"
	cfg.ClientFoundRows = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

const taskColumns = `id, title, COALESCE(description, '') AS description, status, created_at, updated_at`

func (db *DB) ListTasks(ctx context.Context) ([]core.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC, id DESC`

	out := []core.Task{}
	if err := db.conn.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	for i := range out {
		out[i] = normalizeTimes(out[i])
	}
	return out, nil
}

func (db *DB) CreateTask(ctx context.Context, t core.Task) (core.Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	if err := t.Validate(); err != nil {
		return core.Task{}, err
	}

	q := db.conn.Rebind(`
		INSERT INTO tasks (id, title, description, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	_, err := db.conn.ExecContext(ctx, q, t.ID, t.Title, t.Description, string(t.Status), t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isCheckViolation(err) {
			return core.Task{}, fmt.Errorf("%w: %v", core.ErrTaskInvalidArgs, err)
		}
		return core.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

func (db *DB) GetTask(ctx context.Context, id string) (core.Task, error) {
	q := db.conn.Rebind(`SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`)

	var t core.Task
	if err := db.conn.GetContext(ctx, &t, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Task{}, core.ErrTaskNotFound
		}
		return core.Task{}, fmt.Errorf("get task: %w", err)
	}
	return normalizeTimes(t), nil
}

// PatchTask updates only the fields present in p and stamps updated_at,
// then reads the row back.
func (db *DB) PatchTask(ctx context.Context, id string, p core.TaskPatch, updatedAt time.Time) (core.Task, error) {
	if err := p.Validate(); err != nil {
		return core.Task{}, err
	}

	q, args := buildPatch(db.dialect, id, p, updatedAt)
	res, err := db.conn.ExecContext(ctx, db.conn.Rebind(q), args...)
	if err != nil {
		if isCheckViolation(err) {
			return core.Task{}, fmt.Errorf("%w: %v", core.ErrTaskInvalidArgs, err)
		}
		return core.Task{}, fmt.Errorf("update task: %w", err)
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return core.Task{}, core.ErrTaskNotFound
	}

	db.log.Debug("task patched", "id", id, "fields", len(args)-2)
	return db.GetTask(ctx, id)
}

// bumpUpdatedAt keeps updated_at strictly increasing when the clock has not
// moved past the stored value, matching core.NextUpdatedAt.
var bumpUpdatedAt = map[string]string{
	"postgres": "updated_at = GREATEST(?::timestamptz, updated_at + INTERVAL '1 microsecond')",
	"mysql":    "updated_at = GREATEST(?, updated_at + INTERVAL 1 MICROSECOND)",
}

// buildPatch renders the UPDATE with '?' placeholders; callers rebind it
// for the active driver.
func buildPatch(dialect, id string, p core.TaskPatch, updatedAt time.Time) (string, []any) {
	fields := p.Fields()

	sets := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)
	for _, f := range fields {
		sets = append(sets, f.Column+" = ?")
		args = append(args, f.Value)
	}
	sets = append(sets, bumpUpdatedAt[dialect])
	args = append(args, updatedAt, id)

	return "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?", args
}

func (db *DB) DeleteTask(ctx context.Context, id string) error {
	q := db.conn.Rebind(`DELETE FROM tasks WHERE id = ?`)

	res, err := db.conn.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return core.ErrTaskNotFound
	}
	return nil
}

var _ core.DB = (*DB)(nil)

func normalizeTimes(t core.Task) core.Task {
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t
}

// driver error helpers

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23514"
	}
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 3819
}
