package database_migrate

import (
	"fmt"
	"os"

	billing_entity "github.com/nimbusworks/nimbus-server/src/billing/entity"
	"github.com/nimbusworks/nimbus-server/src/database"
	_ "github.com/nimbusworks/nimbus-server/src/database/migrations"
	generation_entity "github.com/nimbusworks/nimbus-server/src/generation/entity"
	"github.com/pressly/goose/v3"
	"github.com/pterm/pterm"
)

const gooseTableMain = "goose_db_version"

func init() {
	if database.DB == nil {
		pterm.DefaultLogger.Warn("Skipping migrations: database is not configured")
		return
	}

	automaticMigrations()
	gooseMigrations()
}

// Configures automatic migrations with ORM.
func automaticMigrations() {
	pterm.DefaultLogger.Info("Adding automatic migrations")
	err := database.DB.AutoMigrate(
		&billing_entity.UsageCounter{},
		&billing_entity.UserSubscription{},
		&generation_entity.MusicJob{},
	)
	if err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Unable to run automatic migrations: %s", err),
		)
		os.Exit(1)
	}
}

// Runs versioned goose migrations registered by the migrations package.
func gooseMigrations() {
	pterm.DefaultLogger.Info("Running goose migrations")

	goose.SetDialect("postgres")
	goose.SetTableName(gooseTableMain)

	db, err := database.DB.DB()
	if err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Unable to get database connection for goose: %s", err),
		)
		os.Exit(1)
	}

	if err := goose.Up(db, "src/database/migrations"); err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Unable to run goose migrations: %s", err),
		)
		os.Exit(1)
	}

	pterm.DefaultLogger.Info("Goose migrations completed")
}
