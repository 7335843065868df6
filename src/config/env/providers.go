package env

import (
	"os"
	"strings"

	"github.com/pterm/pterm"
)

var (
	HuggingFaceApiKey  string
	HuggingFaceApiBase string
	BeatovenApiKey     string
	BeatovenApiBase    string

	ConversationModels []string
	CodeModels         []string
	ImageModels        []string
	VideoModels        []string
)

func loadProviderEnv() {
	HuggingFaceApiKey = os.Getenv("HUGGINGFACE_API_KEY")
	HuggingFaceApiBase = os.Getenv("HUGGINGFACE_API_BASE")
	if HuggingFaceApiBase == "" {
		HuggingFaceApiBase = "https://api-inference.huggingface.co"
	}

	BeatovenApiKey = os.Getenv("BEATOVEN_API_KEY")
	BeatovenApiBase = os.Getenv("BEATOVEN_API_BASE")
	if BeatovenApiBase == "" {
		BeatovenApiBase = "https://public-api.beatoven.ai"
	}

	ConversationModels = modelList("CONVERSATION_MODELS",
		"mistralai/Mistral-7B-Instruct-v0.1",
		"HuggingFaceH4/zephyr-7b-beta",
		"google/gemma-7b-it",
	)
	CodeModels = modelList("CODE_MODELS",
		"codellama/CodeLlama-34b-Instruct",
		"mistralai/Mixtral-8x7B-Instruct-v0.1",
		"bigcode/starcoder2-15b",
	)
	ImageModels = modelList("IMAGE_MODELS",
		"stabilityai/stable-diffusion-xl-base-1.0",
	)
	VideoModels = modelList("VIDEO_MODELS",
		"stabilityai/stable-diffusion-2",
	)

	if HuggingFaceApiKey == "" {
		pterm.DefaultLogger.Warn("HUGGINGFACE_API_KEY is not set — text, code, image and video generation will fail")
	}
	if BeatovenApiKey == "" {
		pterm.DefaultLogger.Warn("BEATOVEN_API_KEY is not set — music generation will fail")
	}
}

// modelList reads a comma-separated model list from the environment,
// falling back to the given defaults.
func modelList(key string, defaults ...string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaults
	}

	var models []string
	for _, m := range strings.Split(val, ",") {
		if m = strings.TrimSpace(m); m != "" {
			models = append(models, m)
		}
	}
	if len(models) == 0 {
		return defaults
	}
	return models
}
