package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"jdoc/config"
	"jdoc/internal/adapter/llm"
	"jdoc/internal/adapter/store"
	"jdoc/internal/port"
)

// newLLM builds the client for the configured provider. A missing API key is
// not checked here; the first request fails instead.
func newLLM(ctx context.Context, cfg config.LLMConfig) (port.LLM, error) {
	opts := llm.Options{
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.Timeout,
	}
	apiKey := cfg.APIKey()

	switch cfg.Provider {
	case "openai":
		if cfg.BaseURL != "" {
			return llm.NewOpenAICompatibleClient(apiKey, cfg.Model, cfg.BaseURL, opts), nil
		}
		return llm.NewOpenAIClient(apiKey, cfg.Model, opts), nil
	case "deepseek":
		if cfg.BaseURL != "" {
			return llm.NewOpenAICompatibleClient(apiKey, cfg.Model, cfg.BaseURL, opts), nil
		}
		return llm.NewDeepSeekClient(apiKey, cfg.Model, opts), nil
	case "ollama":
		return llm.NewOllamaClient(cfg.Model, cfg.BaseURL, opts), nil
	case "gemini":
		client, err := llm.NewGeminiClient(ctx, apiKey, cfg.Model, cfg.BaseURL, opts)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}

// openHistory opens the history database, or returns nil when history is
// disabled. A database that cannot be opened only costs the history.
func openHistory(cfg *config.Config, logger *zap.Logger) *store.BoltStore {
	if !cfg.History.Enabled {
		return nil
	}

	path, err := cfg.HistoryDBPath()
	if err == nil {
		err = config.EnsureDir(path)
	}
	if err != nil {
		logger.Warn("History disabled", zap.Error(err))
		return nil
	}

	st, err := store.NewBoltStore(path)
	if err != nil {
		logger.Warn("History disabled", zap.String("path", path), zap.Error(err))
		return nil
	}
	return st
}
