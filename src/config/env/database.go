package env

import (
	"os"

	"github.com/pterm/pterm"
)

var (
	// DatabaseUrl is the Postgres DSN (DATABASE_URL). When empty the server
	// still boots, but usage counters, subscriptions and music jobs have no
	// backing rows, so the entitlement gate denies free-tier work.
	DatabaseUrl string
)

func loadDbEnv() {
	DatabaseUrl = os.Getenv("DATABASE_URL")
	if DatabaseUrl == "" {
		pterm.DefaultLogger.Warn("DATABASE_URL is not set — persistence features are disabled")
	}
}
