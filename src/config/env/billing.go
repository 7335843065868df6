package env

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
)

var (
	MaxFreeCounts          int    // Free-tier generation calls before a subscription is required
	MeterAsyncAtSubmission bool   // Charge async (music) jobs at submission instead of completion
	StripeSecretKey        string
)

func loadBillingEnv() {
	MaxFreeCounts = 5
	if val := os.Getenv("MAX_FREE_COUNTS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			MaxFreeCounts = parsed
		}
	}

	MeterAsyncAtSubmission = true
	if val := os.Getenv("BILLING_METER_ASYNC_AT_SUBMISSION"); val != "" {
		MeterAsyncAtSubmission = val == "true"
	}

	StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")

	if StripeSecretKey != "" {
		pterm.DefaultLogger.Info("Stripe subscription refresh is CONFIGURED")
	} else {
		pterm.DefaultLogger.Info("Stripe subscription refresh is NOT configured (STRIPE_SECRET_KEY not set)")
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf("Free tier: %d generation calls per user", MaxFreeCounts),
	)
}
