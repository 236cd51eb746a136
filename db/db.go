package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dasdy/tabstyle/grid"
	"github.com/dasdy/tabstyle/logging"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrMigration      = errors.New("preset storage migration failed")
)

var logCtx = logging.PackageCtx("db")

// Storage keeps named border color presets.
type Storage interface {
	Save(name string, desc grid.Border[grid.Color]) error
	Load(name string) (grid.Border[grid.Color], error)
	List() ([]string, error)
	Delete(name string) error
	Close()
}

type SQLiteStorage struct {
	db *sql.DB
}

// gooseLogger routes goose output through slog.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	slog.DebugContext(logCtx, fmt.Sprintf(format, v...))
}

// Fatalf never exits: InitDbStorage recovers the panic and returns it as an error.
func (gooseLogger) Fatalf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	slog.ErrorContext(logCtx, msg)
	panic(fmt.Errorf("%w: %s", ErrMigration, msg))
}

func InitDbStorage(db *sql.DB) (err error) {
	goose.SetLogger(gooseLogger{})
	goose.SetBaseFS(embedMigrations)

	defer recoverMigration(&err)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("could not set migration dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not migrate preset storage: %w", err)
	}

	return nil
}

// recoverMigration turns a gooseLogger.Fatalf panic into the returned error.
func recoverMigration(err *error) {
	r := recover()
	if r == nil {
		return
	}

	fatal, ok := r.(error)
	if !ok || !errors.Is(fatal, ErrMigration) {
		panic(r)
	}

	*err = fatal
}

// NewStorageFromPath opens (creating if needed) the preset database at path.
// ":memory:" gives a private in-memory store.
func NewStorageFromPath(path string) (*SQLiteStorage, error) {
	slog.InfoContext(logCtx, "Opening preset storage", "path", path)

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	// every connection to ":memory:" would see its own database
	conn.SetMaxOpenConns(1)

	if err := InitDbStorage(conn); err != nil {
		conn.Close()

		return nil, err
	}

	return &SQLiteStorage{conn}, nil
}

// slotColumns lists the preset columns in grid.Slots order. A NULL column is an absent slot.
const slotColumns = `top, bottom, "left", "right", top_left, top_right, bottom_left, bottom_right`

func (s *SQLiteStorage) Save(name string, desc grid.Border[grid.Color]) error {
	args := []any{name}

	for _, slot := range grid.Slots() {
		c, ok := desc.Get(slot)
		args = append(args, sql.NullString{String: string(c), Valid: ok})
	}

	_, err := s.db.Exec(`insert into presets(name, `+slotColumns+`)
	    values(?, ?, ?, ?, ?, ?, ?, ?, ?)
	    on conflict(name) do update set
	        top = excluded.top,
	        bottom = excluded.bottom,
	        "left" = excluded."left",
	        "right" = excluded."right",
	        top_left = excluded.top_left,
	        top_right = excluded.top_right,
	        bottom_left = excluded.bottom_left,
	        bottom_right = excluded.bottom_right,
	        updated_at = datetime('now', 'subsec')`,
		args...)
	if err != nil {
		return fmt.Errorf("could not save preset %q: %w", name, err)
	}

	return nil
}

func (s *SQLiteStorage) Load(name string) (grid.Border[grid.Color], error) {
	slots := grid.Slots()
	values := make([]sql.NullString, len(slots))

	dest := make([]any, len(values))
	for i := range values {
		dest[i] = &values[i]
	}

	var desc grid.Border[grid.Color]

	err := s.db.QueryRow(`select `+slotColumns+`
        from presets
        where name = ?`, name).
		Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return desc, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}

	if err != nil {
		return desc, fmt.Errorf("could not load preset %q: %w", name, err)
	}

	for i, v := range values {
		if v.Valid {
			desc = desc.With(slots[i], grid.Color(v.String))
		}
	}

	return desc, nil
}

func (s *SQLiteStorage) List() ([]string, error) {
	rows, err := s.db.Query(`select name from presets order by name`)
	if err != nil {
		return nil, fmt.Errorf("could not list presets: %w", err)
	}
	defer rows.Close()

	result := make([]string, 0)

	for rows.Next() {
		var name string

		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("could not scan preset name: %w", err)
		}

		result = append(result, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list presets: %w", err)
	}

	return result, nil
}

func (s *SQLiteStorage) Delete(name string) error {
	res, err := s.db.Exec(`delete from presets where name = ?`, name)
	if err != nil {
		return fmt.Errorf("could not delete preset %q: %w", name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not delete preset %q: %w", name, err)
	}

	if n == 0 {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}

	return nil
}

func (s *SQLiteStorage) Close() {
	if err := s.db.Close(); err != nil {
		slog.WarnContext(logCtx, "Could not close preset storage", "error", err)
	}
}
