package postgres

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"orderbot/pkg/logger"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate накатывает встроенные миграции через database/sql поверх того же пула.
func Migrate(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	migrateLog := log.With(logger.NewField("component", "migrations"))

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{log: migrateLog})
	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			migrateLog.Error("failed to close migration connection", logger.NewField("error", err))
		}
	}()

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("migrations version: %w", err)
	}
	migrateLog.Info("migrations applied", logger.NewField("version", version))
	return nil
}

type gooseLogger struct {
	log logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info(fmt.Sprintf(format, v...))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(fmt.Sprintf(format, v...))
}
