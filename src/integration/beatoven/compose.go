package beatoven

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type composeRequest struct {
	Prompt struct {
		Text string `json:"text"`
	} `json:"prompt"`
	Format  string `json:"format"`
	Looping bool   `json:"looping"`
}

type composeResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// TaskState is the provider-side view of a composition task.
type TaskState struct {
	Status   string
	TrackURL string
}

type taskStatusResponse struct {
	Status string `json:"status"`
	Meta   struct {
		TrackURL string `json:"track_url"`
	} `json:"meta"`
}

// Compose submits a composition job and returns its task id and initial
// status. The job completes asynchronously.
func (c *Client) Compose(ctx context.Context, prompt, format string, looping bool) (string, string, error) {
	body := composeRequest{Format: format, Looping: looping}
	body.Prompt.Text = prompt

	raw, err := c.do(ctx, http.MethodPost, "/api/v1/tracks/compose", body)
	if err != nil {
		return "", "", err
	}

	var out composeResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", "", fmt.Errorf("unexpected compose response shape: %w", err)
	}
	if out.TaskID == "" {
		return "", "", fmt.Errorf("compose response carries no task id")
	}

	return out.TaskID, out.Status, nil
}

// TaskStatus polls a composition task.
func (c *Client) TaskStatus(ctx context.Context, taskID string) (TaskState, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/v1/tasks/"+taskID, nil)
	if err != nil {
		return TaskState{}, err
	}

	var out taskStatusResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return TaskState{}, fmt.Errorf("unexpected task status response shape: %w", err)
	}

	return TaskState{
		Status:   out.Status,
		TrackURL: out.Meta.TrackURL,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("unable to encode compose request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	url := strings.TrimRight(c.base, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		limit := raw
		if len(limit) > 256 {
			limit = limit[:256]
		}
		return nil, fmt.Errorf("beatoven request failed with status %d: %s", resp.StatusCode, limit)
	}

	return raw, nil
}
