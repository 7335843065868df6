package env

import (
	"os"
	"strconv"

	"github.com/pterm/pterm"
)

var (
	JwtSecret           string
	RateLimitGeneration int // Generation requests per minute per user
)

func loadAuthEnv() {
	JwtSecret = os.Getenv("JWT_SECRET")
	if JwtSecret == "" {
		pterm.DefaultLogger.Warn("JWT_SECRET is not set — all authenticated requests will be rejected")
	}

	RateLimitGeneration = 60
	if val := os.Getenv("RATE_LIMIT_GENERATION"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			RateLimitGeneration = parsed
		}
	}
}
