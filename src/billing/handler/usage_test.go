package billing_handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	billing_entity "github.com/nimbusworks/nimbus-server/src/billing/entity"
	billing_model "github.com/nimbusworks/nimbus-server/src/billing/model"
	billing_service "github.com/nimbusworks/nimbus-server/src/billing/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsageStore struct {
	counter *billing_entity.UsageCounter
}

func (s stubUsageStore) Find(userID uuid.UUID) (*billing_entity.UsageCounter, error) {
	return s.counter, nil
}

func (s stubUsageStore) Increment(userID uuid.UUID) error { return nil }

type stubSubscriptionStore struct {
	sub *billing_entity.UserSubscription
}

func (s stubSubscriptionStore) Find(userID uuid.UUID) (*billing_entity.UserSubscription, error) {
	return s.sub, nil
}

func usageApp(userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Get("/billing/usage",
		func(c *fiber.Ctx) error {
			c.Locals("userId", userID)
			return c.Next()
		},
		GetUsage,
	)
	return app
}

func withGate(t *testing.T, gate *billing_service.Gate) {
	t.Helper()
	previous := billing_service.DefaultGate
	billing_service.DefaultGate = gate
	t.Cleanup(func() { billing_service.DefaultGate = previous })
}

func TestGetUsageFreeTier(t *testing.T) {
	userID := uuid.New()
	withGate(t, billing_service.NewGate(stubUsageStore{
		counter: &billing_entity.UsageCounter{UserID: userID, Count: 3},
	}, stubSubscriptionStore{}, 5))

	resp, err := usageApp(userID).Test(httptest.NewRequest(http.MethodGet, "/billing/usage", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary billing_model.UsageSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 5, summary.Limit)
	assert.False(t, summary.IsPro)
}

func TestGetUsageSubscriber(t *testing.T) {
	userID := uuid.New()
	priceID := "price_123"
	end := time.Now().Add(time.Hour)

	withGate(t, billing_service.NewGate(stubUsageStore{}, stubSubscriptionStore{
		sub: &billing_entity.UserSubscription{
			UserID:                 userID,
			StripePriceID:          &priceID,
			StripeCurrentPeriodEnd: &end,
		},
	}, 5))

	resp, err := usageApp(userID).Test(httptest.NewRequest(http.MethodGet, "/billing/usage", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary billing_model.UsageSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Zero(t, summary.Count)
	assert.True(t, summary.IsPro)
}

func TestGetUsageGateUnavailable(t *testing.T) {
	withGate(t, nil)

	resp, err := usageApp(uuid.New()).Test(httptest.NewRequest(http.MethodGet, "/billing/usage", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
