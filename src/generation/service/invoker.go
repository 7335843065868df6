package generation_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nimbusworks/nimbus-server/src/config/env"
	generation_model "github.com/nimbusworks/nimbus-server/src/generation/model"
	"github.com/pterm/pterm"
)

// ErrAllProvidersExhausted is the single aggregate error returned when every
// candidate provider failed. Individual provider errors are logged, never
// surfaced — the caller cannot act on provider-specific diagnostics.
var ErrAllProvidersExhausted = errors.New("all providers exhausted")

// CallFunc performs one provider attempt. Payload shaping per provider
// family lives in the call function, not in the fallback loop.
type CallFunc func(ctx context.Context, provider generation_model.Provider) (generation_model.Result, error)

// TryInOrder attempts the candidates strictly in order and returns the first
// successful result. A failed candidate is logged and swallowed; the next one
// is tried. No speculative parallel dispatch, no retry of a failed candidate.
func TryInOrder(ctx context.Context, candidates []generation_model.Provider, call CallFunc) (generation_model.Result, error) {
	for _, provider := range candidates {
		if err := ctx.Err(); err != nil {
			return generation_model.Result{}, err
		}

		result, err := call(ctx, provider)
		if err == nil {
			return result, nil
		}

		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Provider %s failed, trying next: %v", provider.ID, err),
		)
	}

	return generation_model.Result{}, ErrAllProvidersExhausted
}

// Providers builds fallback descriptors for a list of Hugging Face model ids.
func Providers(models []string) []generation_model.Provider {
	providers := make([]generation_model.Provider, 0, len(models))
	for _, model := range models {
		providers = append(providers, generation_model.Provider{
			ID:         model,
			Endpoint:   fmt.Sprintf("%s/models/%s", env.HuggingFaceApiBase, model),
			AuthScheme: "bearer",
		})
	}
	return providers
}

func ConversationProviders() []generation_model.Provider {
	return Providers(env.ConversationModels)
}

func CodeProviders() []generation_model.Provider {
	return Providers(env.CodeModels)
}

func ImageProviders() []generation_model.Provider {
	return Providers(env.ImageModels)
}

func VideoProviders() []generation_model.Provider {
	return Providers(env.VideoModels)
}
