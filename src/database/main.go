package database

import (
	"fmt"
	"os"

	"github.com/nimbusworks/nimbus-server/src/config/env"
	"github.com/pterm/pterm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the shared database handle. It stays nil when DATABASE_URL is not
// configured, and every consumer treats a nil handle as a storage failure.
var DB *gorm.DB

func init() {
	if env.DatabaseUrl == "" {
		return
	}

	pterm.DefaultLogger.Info("Connecting to database...")

	db, err := gorm.Open(postgres.Open(env.DatabaseUrl), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Unable to connect to database: %s", err),
		)
		os.Exit(1)
	}

	DB = db
	pterm.DefaultLogger.Info("Database connection established")
}
