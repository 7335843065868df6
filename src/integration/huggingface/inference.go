package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// TextParams tunes a text-generation call.
type TextParams struct {
	MaxNewTokens int
	Temperature  float64
}

type textGenerationRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		MaxNewTokens   int     `json:"max_new_tokens"`
		Temperature    float64 `json:"temperature"`
		ReturnFullText bool    `json:"return_full_text"`
	} `json:"parameters"`
	Options inferenceOptions `json:"options"`
}

type inferenceOptions struct {
	// The free tier queues cold models instead of failing when this is set.
	WaitForModel bool `json:"wait_for_model"`
}

type textGenerationResponse struct {
	GeneratedText string `json:"generated_text"`
}

// TextGeneration runs a synchronous text-generation call against one model.
// Returns the raw generated text; an empty response body yields an empty
// string, not an error.
func (c *Client) TextGeneration(ctx context.Context, model, prompt string, params TextParams) (string, error) {
	body := textGenerationRequest{Inputs: prompt}
	body.Parameters.MaxNewTokens = params.MaxNewTokens
	body.Parameters.Temperature = params.Temperature
	body.Parameters.ReturnFullText = false
	body.Options.WaitForModel = true

	raw, _, err := c.postRaw(ctx, c.modelURL(model), body)
	if err != nil {
		return "", err
	}

	var out []textGenerationResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("unexpected inference response shape: %w", err)
	}
	if len(out) == 0 {
		return "", nil
	}

	return out[0].GeneratedText, nil
}

// Generate posts an arbitrary payload to a model endpoint and returns the
// raw response bytes and content type. Used for image (binary) and video
// (prediction JSON) families.
func (c *Client) Generate(ctx context.Context, model string, payload any) ([]byte, string, error) {
	return c.postRaw(ctx, c.modelURL(model), payload)
}

func (c *Client) modelURL(model string) string {
	return fmt.Sprintf("%s/models/%s", strings.TrimRight(c.base, "/"), model)
}

func (c *Client) postRaw(ctx context.Context, url string, payload any) ([]byte, string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("unable to encode inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("inference request failed with status %d: %s", resp.StatusCode, truncate(raw, 256))
	}

	return raw, resp.Header.Get("Content-Type"), nil
}

func truncate(raw []byte, limit int) string {
	if len(raw) > limit {
		raw = raw[:limit]
	}
	return string(raw)
}
