package database

import (
	"database/sql"
	"database/sql/driver"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"modernc.org/sqlite"

	"catalogapi/pkg/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// UnicodeLowerFunction is registered on every sqlite connection. The built-in
// LOWER only folds ASCII letters.
const UnicodeLowerFunction = "unicode_lower"

//go:embed migrations
var migrations embed.FS

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(UnicodeLowerFunction, 1, unicodeLower)
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// Open connects to the configured SQL database. For sqlite, dsn is a file
// path or ":memory:"; for postgres it is a connection URL.
func Open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverSQLite:
		return openSQLite(dsn)
	case DriverPostgres:
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func openSQLite(path string) (*sql.DB, error) {
	inMemory := path == ":memory:" || strings.Contains(path, "mode=memory")

	dsn := path
	if !inMemory {
		dsn = sqliteFileDSN(path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if inMemory {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

// sqliteFileDSN appends the connection pragmas to a plain path, keeping any
// query parameters already present. file: URIs are used as given.
func sqliteFileDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	return "file:" + path + separator + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// Migrate applies the embedded schema migrations for driver.
func Migrate(db *sql.DB, driver string) error {
	source, err := iofs.New(migrations, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	var instance database.Driver
	switch driver {
	case DriverSQLite:
		instance, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	case DriverPostgres:
		instance, err = migratepgx.WithInstance(db, &migratepgx.Config{})
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	// m.Close is deliberately not called: it would close db as well.
	m, err := migrate.NewWithInstance("iofs", source, driver, instance)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err == nil {
		logger.Debug("Database schema at version %d (dirty=%v)", version, dirty)
	}

	return nil
}
