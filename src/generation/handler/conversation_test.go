package generation_handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	billing_entity "github.com/nimbusworks/nimbus-server/src/billing/entity"
	billing_service "github.com/nimbusworks/nimbus-server/src/billing/service"
	"github.com/nimbusworks/nimbus-server/src/config/env"
	generation_model "github.com/nimbusworks/nimbus-server/src/generation/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const conversationBody = `{"messages":[{"role":"user","content":"hello"}]}`

func decodeReply(t *testing.T, resp *http.Response) generation_model.ConversationResponse {
	t.Helper()
	var reply generation_model.ConversationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reply))
	return reply
}

func TestConversationFallsBackToNextModel(t *testing.T) {
	usage := withFreeGate(t)
	withModels(t, &env.ConversationModels, "alpha", "beta", "gamma")

	var attempts []string
	withInferenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		model := strings.TrimPrefix(r.URL.Path, "/models/")
		attempts = append(attempts, model)
		if model != "gamma" {
			http.Error(w, `{"error":"loading"}`, http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[{"generated_text":"  hi there  "}]`))
	})

	resp, err := postJSON(generationApp(uuid.New()), "/generation/conversation", conversationBody)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	reply := decodeReply(t, resp)
	assert.Equal(t, "assistant", reply.Role)
	assert.Equal(t, "hi there", reply.Content)

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, attempts)
	assert.Len(t, usage.increments, 1, "a successful free-tier call charges exactly one credit")
}

func TestConversationDoesNotChargeSubscribers(t *testing.T) {
	usage := withProGate(t)
	withModels(t, &env.ConversationModels, "alpha")

	withInferenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"generated_text":"hi"}]`))
	})

	resp, err := postJSON(generationApp(uuid.New()), "/generation/conversation", conversationBody)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, usage.increments)
}

func TestConversationAllProvidersFail(t *testing.T) {
	usage := withFreeGate(t)
	withModels(t, &env.ConversationModels, "alpha", "beta")

	withInferenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"down"}`, http.StatusInternalServerError)
	})

	resp, err := postJSON(generationApp(uuid.New()), "/generation/conversation", conversationBody)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Empty(t, usage.increments, "failed calls must not consume credits")
}

func TestConversationRequiresMessages(t *testing.T) {
	withFreeGate(t)

	withInferenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no provider call expected for an invalid request")
	})

	resp, err := postJSON(generationApp(uuid.New()), "/generation/conversation", `{"messages":[]}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConversationEmptyGenerationGetsPlaceholder(t *testing.T) {
	withFreeGate(t)
	withModels(t, &env.ConversationModels, "alpha")

	withInferenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"generated_text":"   "}]`))
	})

	resp, err := postJSON(generationApp(uuid.New()), "/generation/conversation", conversationBody)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "I couldn't generate a response.", decodeReply(t, resp).Content)
}

func TestConversationExhaustedQuotaIsForbidden(t *testing.T) {
	withModels(t, &env.ConversationModels, "alpha")

	// Five of five credits consumed, no subscription.
	usage := &fakeUsageStore{counter: &billing_entity.UsageCounter{Count: 5}}
	swapGate(t, billing_service.NewGate(usage, &fakeSubscriptionStore{}, 5))

	withInferenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no provider call expected past the entitlement gate")
	})

	resp, err := postJSON(generationApp(uuid.New()), "/generation/conversation", conversationBody)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
