package helper

//nolint:revive
import (
	"database/sql"
	"errors"
	"fmt"
	"tasktracker/config"
	"tasktracker/infras/database"
	"tasktracker/migrations"

	"github.com/golang-migrate/migrate/v4"
	migrateDatabase "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"

	sourceName = "iofs"
)

var ErrUnknownAction = errors.New("unknown migration action")

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func sourceDir(driver string) string {
	if driver == config.DriverSQLite {
		return migrations.DirSQLite
	}

	return migrations.DirPostgres
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, sourceDir(config.DB.Driver))
	if err != nil {
		return nil, fmt.Errorf("error reading embedded migrations: %w", err)
	}

	var databaseURL string

	if config.IsSQLite() {
		databaseURL = fmt.Sprintf("sqlite3://%s?x-migrations-table=%s", config.DB.SQLite.Path, config.DB.Postgres.MigrationTable)
	} else {
		databaseURL = database.PostgresDSN(
			config.DB.Postgres.Write.Username,
			config.DB.Postgres.Write.Password,
			config.DB.Postgres.Write.Host,
			config.DB.Postgres.Write.Port,
			getDBName(config, config.DB.Postgres.Write.Name),
			config.DB.Postgres.Write.SSLMode,
		) + "&x-migrations-table=" + config.DB.Postgres.MigrationTable
	}

	mig, err := migrate.NewWithSourceInstance(sourceName, source, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// NewWithDB builds a migrator on an open handle. Closing the returned
// migrator closes db as well.
func NewWithDB(db *sql.DB, driver, migrationTable string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, sourceDir(driver))
	if err != nil {
		return nil, fmt.Errorf("error reading embedded migrations: %w", err)
	}

	var instance migrateDatabase.Driver

	switch driver {
	case config.DriverSQLite:
		instance, err = sqlite3.WithInstance(db, &sqlite3.Config{MigrationsTable: migrationTable})
	case config.DriverPostgres:
		instance, err = postgres.WithInstance(db, &postgres.Config{MigrationsTable: migrationTable})
	default:
		return nil, fmt.Errorf("unsupported migration driver %q", driver)
	}

	if err != nil {
		return nil, fmt.Errorf("error creating migrate driver: %w", err)
	}

	mig, err := migrate.NewWithInstance(sourceName, source, driver, instance)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// UpWithDB applies every pending migration over an already open handle.
func UpWithDB(db *sql.DB, driver, migrationTable string) error {
	mig, err := NewWithDB(db, driver, migrationTable)
	if err != nil {
		return err
	}

	return run(mig, ActionUp)
}

func run(mig *migrate.Migrate, action string) error {
	switch action {
	case ActionUp:
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case ActionDown:
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	case ActionStepUp:
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case ActionDrop:
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownAction, action)
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	return run(mig, action)
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
