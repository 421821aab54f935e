package llmprovider

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"mom-planner/config"
	"mom-planner/pkg/gemini"
)

// Transports accepted in gemini.transport.
const (
	TransportREST = "rest"
	TransportSDK  = "sdk"
)

// New builds the single Provider selected by cfg.Transport.
func New(ctx context.Context, cfg config.GeminiConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider gemini: %w", config.ErrMissingAPIKey)
	}

	switch cfg.Transport {
	case TransportREST, "":
		client := gemini.NewClient(cfg.APIKey)
		client.SetModel(cfg.Model)
		if cfg.APIURL != "" {
			client.SetAPIURL(cfg.APIURL)
		}
		return NewGeminiAdapter(client), nil

	case TransportSDK:
		cc := &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		}
		if cfg.APIURL != "" {
			cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.APIURL}
		}
		client, err := genai.NewClient(ctx, cc)
		if err != nil {
			return nil, fmt.Errorf("failed to create genai client: %w", err)
		}
		return NewGenAIAdapter(client, cfg.Model), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransport, cfg.Transport)
	}
}
