package generation_handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	billing_entity "github.com/nimbusworks/nimbus-server/src/billing/entity"
	billing_middleware "github.com/nimbusworks/nimbus-server/src/billing/middleware"
	billing_service "github.com/nimbusworks/nimbus-server/src/billing/service"
	"github.com/nimbusworks/nimbus-server/src/config/env"
	generation_entity "github.com/nimbusworks/nimbus-server/src/generation/entity"
	generation_service "github.com/nimbusworks/nimbus-server/src/generation/service"
	"github.com/nimbusworks/nimbus-server/src/integration/beatoven"
	"github.com/nimbusworks/nimbus-server/src/integration/huggingface"
)

type fakeUsageStore struct {
	counter    *billing_entity.UsageCounter
	increments []uuid.UUID
}

func (s *fakeUsageStore) Find(userID uuid.UUID) (*billing_entity.UsageCounter, error) {
	return s.counter, nil
}

func (s *fakeUsageStore) Increment(userID uuid.UUID) error {
	s.increments = append(s.increments, userID)
	return nil
}

type fakeSubscriptionStore struct {
	sub *billing_entity.UserSubscription
}

func (s *fakeSubscriptionStore) Find(userID uuid.UUID) (*billing_entity.UserSubscription, error) {
	return s.sub, nil
}

func activeSubscription() *billing_entity.UserSubscription {
	priceID := "price_123"
	end := time.Now().Add(time.Hour)
	return &billing_entity.UserSubscription{StripePriceID: &priceID, StripeCurrentPeriodEnd: &end}
}

type fakeJobStore struct {
	jobs map[string]*generation_entity.MusicJob
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: map[string]*generation_entity.MusicJob{}}
}

func (s *fakeJobStore) Create(job *generation_entity.MusicJob) error {
	s.jobs[job.TaskID] = job
	return nil
}

func (s *fakeJobStore) FindByTask(taskID string) (*generation_entity.MusicJob, error) {
	return s.jobs[taskID], nil
}

func (s *fakeJobStore) MarkBilled(taskID string) (bool, error) {
	job, ok := s.jobs[taskID]
	if !ok || job.Billed {
		return false, nil
	}
	job.Billed = true
	return true, nil
}

// withFreeGate wires the default gate to an empty free-tier account and
// returns the usage store for increment assertions.
func withFreeGate(t *testing.T) *fakeUsageStore {
	t.Helper()
	usage := &fakeUsageStore{}
	swapGate(t, billing_service.NewGate(usage, &fakeSubscriptionStore{}, 5))
	return usage
}

// withProGate wires the default gate to an account with an active
// subscription.
func withProGate(t *testing.T) *fakeUsageStore {
	t.Helper()
	usage := &fakeUsageStore{}
	swapGate(t, billing_service.NewGate(usage, &fakeSubscriptionStore{sub: activeSubscription()}, 5))
	return usage
}

func swapGate(t *testing.T, gate *billing_service.Gate) {
	t.Helper()
	previous := billing_service.DefaultGate
	billing_service.DefaultGate = gate
	t.Cleanup(func() { billing_service.DefaultGate = previous })
}

func swapJobs(t *testing.T) *fakeJobStore {
	t.Helper()
	previous := generation_service.Jobs
	store := newFakeJobStore()
	generation_service.Jobs = store
	t.Cleanup(func() { generation_service.Jobs = previous })
	return store
}

// withInferenceServer points the shared Hugging Face client at a local test
// server.
func withInferenceServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	previous := huggingface.DefaultClient
	huggingface.DefaultClient = huggingface.NewClient(server.URL, "hf_test_key")
	t.Cleanup(func() {
		huggingface.DefaultClient = previous
		server.Close()
	})
	return server
}

// withComposeServer points the shared Beatoven client at a local test server.
func withComposeServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	previous := beatoven.DefaultClient
	beatoven.DefaultClient = beatoven.NewClient(server.URL, "bv_test_key")
	t.Cleanup(func() {
		beatoven.DefaultClient = previous
		server.Close()
	})
	return server
}

func withModels(t *testing.T, target *[]string, models ...string) {
	t.Helper()
	previous := *target
	*target = models
	t.Cleanup(func() { *target = previous })
}

func withAsyncMetering(t *testing.T, atSubmission bool) {
	t.Helper()
	previous := env.MeterAsyncAtSubmission
	env.MeterAsyncAtSubmission = atSubmission
	t.Cleanup(func() { env.MeterAsyncAtSubmission = previous })
}

// generationApp mounts the generation handlers behind a stub identity and the
// real entitlement middleware, the way the router wires them.
func generationApp(userID uuid.UUID) *fiber.App {
	identity := func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}

	app := fiber.New()
	group := app.Group("/generation", identity)
	group.Post("/conversation", billing_middleware.EntitlementMiddleware, Conversation)
	group.Post("/code", billing_middleware.EntitlementMiddleware, Code)
	group.Post("/image", billing_middleware.EntitlementMiddleware, Image)
	group.Post("/video", billing_middleware.EntitlementMiddleware, Video)
	group.Post("/music", billing_middleware.EntitlementMiddleware, Music)
	group.Get("/music/status", MusicStatus)
	return app
}

func postJSON(app *fiber.App, path, body string) (*http.Response, error) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return app.Test(req, -1)
}
