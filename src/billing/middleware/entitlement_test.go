package billing_middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	billing_entity "github.com/nimbusworks/nimbus-server/src/billing/entity"
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

func activeSubscription() *billing_entity.UserSubscription {
	priceID := "price_123"
	end := time.Now().Add(time.Hour)
	return &billing_entity.UserSubscription{StripePriceID: &priceID, StripeCurrentPeriodEnd: &end}
}

// entitlementApp routes a request through the entitlement middleware with the
// given authenticated user, echoing the stored decision on success.
func entitlementApp(userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		func(c *fiber.Ctx) error {
			if userID != uuid.Nil {
				c.Locals("userId", userID)
			}
			return c.Next()
		},
		EntitlementMiddleware,
		func(c *fiber.Ctx) error {
			return c.JSON(GetDecision(c))
		},
	)
	return app
}

func withGate(t *testing.T, gate *billing_service.Gate) {
	t.Helper()
	previous := billing_service.DefaultGate
	billing_service.DefaultGate = gate
	t.Cleanup(func() { billing_service.DefaultGate = previous })
}

func TestEntitlementMiddlewareMissingIdentity(t *testing.T) {
	withGate(t, billing_service.NewGate(stubUsageStore{}, stubSubscriptionStore{}, 5))

	resp, err := entitlementApp(uuid.Nil).Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEntitlementMiddlewareGateUnavailable(t *testing.T) {
	withGate(t, nil)

	resp, err := entitlementApp(uuid.New()).Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestEntitlementMiddlewareExhaustedQuota(t *testing.T) {
	userID := uuid.New()
	withGate(t, billing_service.NewGate(stubUsageStore{
		counter: &billing_entity.UsageCounter{UserID: userID, Count: 5},
	}, stubSubscriptionStore{}, 5))

	resp, err := entitlementApp(userID).Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestEntitlementMiddlewareAllowsFreeTier(t *testing.T) {
	userID := uuid.New()
	withGate(t, billing_service.NewGate(stubUsageStore{}, stubSubscriptionStore{}, 5))

	resp, err := entitlementApp(userID).Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEntitlementMiddlewareAllowsSubscriber(t *testing.T) {
	userID := uuid.New()
	withGate(t, billing_service.NewGate(stubUsageStore{
		counter: &billing_entity.UsageCounter{UserID: userID, Count: 99},
	}, stubSubscriptionStore{sub: activeSubscription()}, 5))

	resp, err := entitlementApp(userID).Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
