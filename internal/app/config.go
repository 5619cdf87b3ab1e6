package app

import (
	"time"

	"github.com/yungbote/recallai-backend/internal/logger"
	"github.com/yungbote/recallai-backend/internal/utils"
)

type Config struct {
	OpenRouterAPIKey   string
	OpenRouterBaseURL  string
	OpenRouterModel    string
	AITimeout          time.Duration
	RefineTemperature  float64
	RefineMaxTokens    int
	SummaryTemperature float64
	QuizTemperature    float64
}

func LoadConfig(log *logger.Logger) Config {
	timeoutSeconds := utils.GetEnvAsInt("AI_TIMEOUT_SECONDS", 60, log)
	return Config{
		OpenRouterAPIKey:   utils.GetEnv("OPENROUTER_API_KEY", "", log),
		OpenRouterBaseURL:  utils.GetEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1", log),
		OpenRouterModel:    utils.GetEnv("OPENROUTER_MODEL", "google/gemini-2.0-flash-001", log),
		AITimeout:          time.Duration(timeoutSeconds) * time.Second,
		RefineTemperature:  utils.GetEnvAsFloat("REFINE_TEMPERATURE", 0.5, log),
		RefineMaxTokens:    utils.GetEnvAsInt("REFINE_MAX_TOKENS", 3000, log),
		SummaryTemperature: utils.GetEnvAsFloat("SUMMARY_TEMPERATURE", 0.3, log),
		QuizTemperature:    utils.GetEnvAsFloat("QUIZ_TEMPERATURE", 0.4, log),
	}
}
