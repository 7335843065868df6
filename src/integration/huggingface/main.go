package huggingface

import (
	"net/http"
	"time"

	"github.com/nimbusworks/nimbus-server/src/config/env"
	"github.com/pterm/pterm"
)

// DefaultClient is the shared Inference API client, wired from the
// environment at server startup.
var DefaultClient *Client

func Load() {
	pterm.DefaultLogger.Info("Loading Hugging Face integration...")

	DefaultClient = NewClient(env.HuggingFaceApiBase, env.HuggingFaceApiKey)

	pterm.DefaultLogger.Info("Hugging Face integration loaded")
}

// Client calls the Hugging Face Inference API.
type Client struct {
	base   string
	apiKey string
	http   *http.Client
}

func NewClient(base, apiKey string) *Client {
	return &Client{
		base:   base,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}
