package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nimbusworks/nimbus-server/src/database"
	"github.com/pressly/goose/v3"
	"github.com/pterm/pterm"
)

func init() {
	goose.AddMigrationContext(upCreateUsageCounterIndexes, downCreateUsageCounterIndexes)
}

func upCreateUsageCounterIndexes(ctx context.Context, tx *sql.Tx) error {
	db := database.DB

	stmts := []string{
		// Counter lookups and the ON CONFLICT upsert both key on user_id.
		`CREATE UNIQUE INDEX CONCURRENTLY IF NOT EXISTS idx_usage_counters_user_id
		   ON usage_counters (user_id);`,

		`CREATE UNIQUE INDEX CONCURRENTLY IF NOT EXISTS idx_user_subscriptions_user_id
		   ON user_subscriptions (user_id);`,

		// Completion-time metering resolves jobs by provider task id.
		`CREATE UNIQUE INDEX CONCURRENTLY IF NOT EXISTS idx_music_jobs_task_id
		   ON music_jobs (task_id);`,

		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_music_jobs_user_created
		   ON music_jobs (user_id, created_at DESC);`,
	}

	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("migration upCreateUsageCounterIndexes failed on: %s\nerr: %v", s, err))
			return err
		}
		pterm.DefaultLogger.Info("Executed: " + s)
	}

	return nil
}

func downCreateUsageCounterIndexes(ctx context.Context, tx *sql.Tx) error {
	db := database.DB

	stmts := []string{
		`DROP INDEX CONCURRENTLY IF EXISTS idx_music_jobs_user_created;`,
		`DROP INDEX CONCURRENTLY IF EXISTS idx_music_jobs_task_id;`,
		`DROP INDEX CONCURRENTLY IF EXISTS idx_user_subscriptions_user_id;`,
		`DROP INDEX CONCURRENTLY IF EXISTS idx_usage_counters_user_id;`,
	}

	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("migration downCreateUsageCounterIndexes failed on: %s\nerr: %v", s, err))
			return err
		}
	}

	return nil
}
