package database

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"tasktracker/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10

	// sqlite serialises writers; one connection keeps in-memory databases shared.
	sqliteMaxOpenConnection = 1
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	if config.IsSQLite() {
		db := CreateSQLiteConnection(config.DB.SQLite.Path)

		return &Connection{Read: db, Write: db}
	}

	return &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}
}

// NewFromDB wraps an already opened handle for both reads and writes.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{Read: db, Write: db}
}

// Ping reports whether both handles answer.
func (c *Connection) Ping(ctx context.Context) error {
	if c == nil || c.Write == nil || c.Read == nil {
		return fmt.Errorf("database connection is not established")
	}

	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping write database: %w", err)
	}

	if c.Read == c.Write {
		return nil
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping read database: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	if c == nil {
		return nil
	}

	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			return fmt.Errorf("failed to close read connection: %w", err)
		}
	}

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			return fmt.Errorf("failed to close write connection: %w", err)
		}
	}

	return nil
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"write",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		config.DB.Postgres.Write.Host,
		config.DB.Postgres.Write.Port,
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"read",
		config.DB.Postgres.Read.Username,
		config.DB.Postgres.Read.Password,
		config.DB.Postgres.Read.Host,
		config.DB.Postgres.Read.Port,
		getDBName(config, config.DB.Postgres.Read.Name),
		config.DB.Postgres.Read.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// PostgresDSN builds the lib/pq connection URL.
func PostgresDSN(username, password, host, port, dbName, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// CreatePostgresConnection creates a database connection, retrying up to maxRetry times.
func CreatePostgresConnection(name, username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) *sqlx.DB {
	descriptor := PostgresDSN(username, password, host, port, dbName, sslMode)

	for retry := 0; retry < maxRetry; retry++ {
		sqlDB, err := sqlx.Connect(config.DriverPostgres, descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}

// SQLiteDSN enables foreign keys and a busy timeout on every connection.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
}

// CreateSQLiteConnection opens the embedded database at path. ":memory:" is accepted.
func CreateSQLiteConnection(path string) *sqlx.DB {
	sqlDB, err := OpenSQLite(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed opening sqlite database")

		return nil
	}

	log.Info().Str("path", path).Msg("Connected to database")

	return sqlDB
}

func OpenSQLite(path string) (*sqlx.DB, error) {
	sqlDB, err := sqlx.Connect(config.DriverSQLite, SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB.SetMaxOpenConns(sqliteMaxOpenConnection)

	return sqlDB, nil
}
