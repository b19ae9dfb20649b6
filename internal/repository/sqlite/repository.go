package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const tasksTable = "tasks"

// Repository defines the interface for task persistence.
// Every mutating call is a single autocommitted statement.
type Repository interface {
	Insert(ctx context.Context, fields TaskFields) (*Task, error)
	ListAll(ctx context.Context) ([]*Task, error)
	Get(ctx context.Context, id int64) (*Task, error)
	Replace(ctx context.Context, id int64, fields TaskFields) (*Task, error)
	Remove(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// Option configures a SQLiteRepository.
type Option func(*SQLiteRepository)

// WithClock overrides the clock used to stamp date_added.
func WithClock(now func() time.Time) Option {
	return func(r *SQLiteRepository) {
		r.now = now
	}
}

// WithQueryTimeout bounds every statement issued by the repository.
func WithQueryTimeout(d time.Duration) Option {
	return func(r *SQLiteRepository) {
		r.queryTimeout = d
	}
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db           *sql.DB
	builder      sq.StatementBuilderType
	now          func() time.Time
	queryTimeout time.Duration
}

// New creates a new SQLite repository instance
func New(dbPath string, opts ...Option) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// SQLite has a single writer, and ":memory:" databases live on one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, errors.NewStorageError("configure database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	repo := &SQLiteRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(repo)
	}
	return repo, nil
}

// RollbackLastMigration opens the database at dbPath without migrating it and
// reverts the newest applied migration. It returns the reverted version, or 0
// when nothing was applied.
func RollbackLastMigration(dbPath string) (int, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, errors.NewStorageError("open database", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	version, err := migrations.RollbackLast(db)
	if err != nil {
		return 0, errors.NewStorageError("roll back migration", err)
	}
	return version, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout > 0 {
		return context.WithTimeout(ctx, r.queryTimeout)
	}
	return context.WithCancel(ctx)
}

// Insert stores a new task, assigning its id and date_added
func (r *SQLiteRepository) Insert(ctx context.Context, fields TaskFields) (*Task, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	added := normalizeTimestamp(r.now())
	stmt := r.builder.
		Insert(tasksTable).
		Columns("task_name", "description", "status", "date_added").
		Values(fields.TaskName, fields.Description, fields.Status, FormatTimeForDB(added)).
		Suffix("RETURNING id")

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, HandleStorageError("build insert", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return nil, HandleStorageError("insert task", err)
	}

	return &Task{
		ID:          id,
		TaskName:    fields.TaskName,
		Description: fields.Description,
		Status:      fields.Status,
		DateAdded:   added,
	}, nil
}

// ListAll retrieves all tasks in insertion order
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]*Task, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	stmt := r.builder.
		Select(taskColumns...).
		From(tasksTable).
		OrderBy("id ASC")

	return QueryMultiple(ctx, r.db, stmt, ScanTasks, "tasks")
}

// Get retrieves a task by ID
func (r *SQLiteRepository) Get(ctx context.Context, id int64) (*Task, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	stmt := r.builder.
		Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"id": id})

	return QuerySingle(ctx, r.db, stmt, ScanTask, "task", fmt.Sprintf("%d", id))
}

// Replace overwrites the mutable columns of a task and returns the stored row
func (r *SQLiteRepository) Replace(ctx context.Context, id int64, fields TaskFields) (*Task, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	stmt := r.builder.
		Update(tasksTable).
		Set("task_name", fields.TaskName).
		Set("description", fields.Description).
		Set("status", fields.Status).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, task_name, description, status, date_added")

	return QuerySingle(ctx, r.db, stmt, ScanTask, "task", fmt.Sprintf("%d", id))
}

// Remove deletes a task by ID
func (r *SQLiteRepository) Remove(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	stmt := r.builder.
		Delete(tasksTable).
		Where(sq.Eq{"id": id})

	return ExecuteWithRowsAffected(ctx, r.db, stmt, "task", fmt.Sprintf("%d", id))
}
