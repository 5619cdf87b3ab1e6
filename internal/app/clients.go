package app

import (
	"github.com/yungbote/recallai-backend/internal/clients/openrouter"
	"github.com/yungbote/recallai-backend/internal/logger"
)

type Clients struct {
	OpenRouter openrouter.Client
}

// A missing API key is a soft condition: the process boots and both AI
// pipelines answer with their configuration-error payload instead.
func wireClients(log *logger.Logger, cfg Config) Clients {
	log.Info("Wiring clients...")
	if cfg.OpenRouterAPIKey == "" {
		log.Warn("OPENROUTER_API_KEY is not set, AI features will return configuration errors")
		return Clients{}
	}
	return Clients{
		OpenRouter: openrouter.NewClient(log, openrouter.Config{
			APIKey:  cfg.OpenRouterAPIKey,
			BaseURL: cfg.OpenRouterBaseURL,
			Model:   cfg.OpenRouterModel,
			Timeout: cfg.AITimeout,
		}),
	}
}
