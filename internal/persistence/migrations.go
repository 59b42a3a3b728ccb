package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const migrationsGlob = "migrations/*.sql"

// RunMigrations applies the SQL files under /migrations in lexical order.
// Files are expected to be idempotent (CREATE ... IF NOT EXISTS).
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping migrations")
		return nil
	}

	files, err := filepath.Glob(migrationsGlob)
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", path, err)
		}

		logger.Info("applying migration", zap.String("file", filepath.Base(path)))
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", path, err)
		}
	}

	logger.Info("migrations applied", zap.Int("count", len(files)))
	return nil
}
