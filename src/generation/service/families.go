package generation_service

import (
	"context"

	generation_model "github.com/nimbusworks/nimbus-server/src/generation/model"
	"github.com/nimbusworks/nimbus-server/src/integration/huggingface"
)

// GenerateText runs the fallback sequence for a text-family prompt and
// returns the first successful generation.
func GenerateText(ctx context.Context, candidates []generation_model.Provider, prompt string, params huggingface.TextParams) (string, error) {
	result, err := TryInOrder(ctx, candidates, func(ctx context.Context, provider generation_model.Provider) (generation_model.Result, error) {
		text, err := huggingface.DefaultClient.TextGeneration(ctx, provider.ID, prompt, params)
		if err != nil {
			return generation_model.Result{}, err
		}
		return generation_model.ImmediateText(text), nil
	})
	if err != nil {
		return "", err
	}

	return result.Text, nil
}

// GenerateBinary runs the fallback sequence for providers that answer with a
// raw payload (image bytes, prediction JSON).
func GenerateBinary(ctx context.Context, candidates []generation_model.Provider, payload any) (generation_model.Result, error) {
	return TryInOrder(ctx, candidates, func(ctx context.Context, provider generation_model.Provider) (generation_model.Result, error) {
		raw, contentType, err := huggingface.DefaultClient.Generate(ctx, provider.ID, payload)
		if err != nil {
			return generation_model.Result{}, err
		}
		return generation_model.ImmediateBinary(raw, contentType), nil
	})
}
