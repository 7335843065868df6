package beatoven

import (
	"net/http"
	"time"

	"github.com/nimbusworks/nimbus-server/src/config/env"
	"github.com/pterm/pterm"
)

// DefaultClient is the shared Beatoven client, wired from the environment at
// server startup.
var DefaultClient *Client

func Load() {
	pterm.DefaultLogger.Info("Loading Beatoven integration...")

	DefaultClient = NewClient(env.BeatovenApiBase, env.BeatovenApiKey)

	pterm.DefaultLogger.Info("Beatoven integration loaded")
}

// Client calls the Beatoven.ai composition API. Composition is asynchronous:
// a compose call returns a task id whose progress is observed via TaskStatus.
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
