package generation_service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nimbusworks/nimbus-server/src/config/env"
	generation_model "github.com/nimbusworks/nimbus-server/src/generation/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates(ids ...string) []generation_model.Provider {
	providers := make([]generation_model.Provider, 0, len(ids))
	for _, id := range ids {
		providers = append(providers, generation_model.Provider{ID: id})
	}
	return providers
}

func TestTryInOrderFirstSuccessWins(t *testing.T) {
	var attempts []string
	call := func(ctx context.Context, provider generation_model.Provider) (generation_model.Result, error) {
		attempts = append(attempts, provider.ID)
		if provider.ID != "c" {
			return generation_model.Result{}, fmt.Errorf("%s is down", provider.ID)
		}
		return generation_model.ImmediateText("from c"), nil
	}

	result, err := TryInOrder(context.Background(), candidates("a", "b", "c", "d"), call)

	require.NoError(t, err)
	assert.Equal(t, "from c", result.Text)
	assert.Equal(t, []string{"a", "b", "c"}, attempts, "candidates after the first success must not be attempted")
}

func TestTryInOrderExhausted(t *testing.T) {
	var attempts []string
	call := func(ctx context.Context, provider generation_model.Provider) (generation_model.Result, error) {
		attempts = append(attempts, provider.ID)
		return generation_model.Result{}, errors.New("secret diagnostic: " + provider.ID)
	}

	_, err := TryInOrder(context.Background(), candidates("a", "b", "c"), call)

	require.ErrorIs(t, err, ErrAllProvidersExhausted)
	assert.NotContains(t, err.Error(), "secret diagnostic", "provider errors must not leak through the aggregate error")
	assert.Equal(t, []string{"a", "b", "c"}, attempts)
}

func TestTryInOrderEmptyCandidates(t *testing.T) {
	_, err := TryInOrder(context.Background(), nil, func(ctx context.Context, provider generation_model.Provider) (generation_model.Result, error) {
		t.Fatal("call must not run without candidates")
		return generation_model.Result{}, nil
	})
	assert.ErrorIs(t, err, ErrAllProvidersExhausted)
}

func TestTryInOrderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var attempts int
	_, err := TryInOrder(ctx, candidates("a", "b"), func(ctx context.Context, provider generation_model.Provider) (generation_model.Result, error) {
		attempts++
		return generation_model.ImmediateText("ok"), nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, attempts)
}

func TestProviders(t *testing.T) {
	restore := env.HuggingFaceApiBase
	env.HuggingFaceApiBase = "https://inference.example"
	defer func() { env.HuggingFaceApiBase = restore }()

	providers := Providers([]string{"org/model-a", "org/model-b"})

	require.Len(t, providers, 2)
	assert.Equal(t, "org/model-a", providers[0].ID)
	assert.Equal(t, "https://inference.example/models/org/model-a", providers[0].Endpoint)
	assert.Equal(t, "bearer", providers[0].AuthScheme)
	assert.Equal(t, "https://inference.example/models/org/model-b", providers[1].Endpoint)
}

func TestEnsureCodeFence(t *testing.T) {
	t.Run("wraps unfenced output", func(t *testing.T) {
		assert.Equal(t, "```\nprint(1)\n```", EnsureCodeFence("  print(1)\n"))
	})

	t.Run("keeps existing fence", func(t *testing.T) {
		fenced := "```python\nprint(1)\n```"
		assert.Equal(t, fenced, EnsureCodeFence("\n"+fenced+"\n"))
	})

	t.Run("wraps empty output", func(t *testing.T) {
		assert.Equal(t, "```\n\n```", EnsureCodeFence("   "))
	})
}

func TestPrompts(t *testing.T) {
	conversation := ConversationPrompt("hello")
	assert.Contains(t, conversation, "<|user|>\nhello\n<|assistant|>")

	code := CodePrompt("binary search in go")
	assert.Contains(t, code, "binary search in go")
	assert.Contains(t, code, "markdown code snippets")
}
