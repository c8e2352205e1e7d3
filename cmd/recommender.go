package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/job-recommender/internal/ai"
	"github.com/spigell/job-recommender/internal/ai/gemini"
	"github.com/spigell/job-recommender/internal/recommend"
	"github.com/spigell/job-recommender/internal/secrets"
	"github.com/spigell/job-recommender/internal/service"
)

// newRecommender wires the engine, filters and the optional AI review from the config.
func newRecommender(ctx context.Context, config *Config, includeApplied bool, logger *zap.Logger) *service.Recommender {
	var matcher ai.Matcher
	dropUnfit := false

	if config.AI != nil && config.AI.Enabled {
		m, err := newAIMatcher(ctx, config.AI, logger)
		if err != nil {
			logger.Warn("skipping AI review", zap.Error(err))
		} else {
			matcher = m
			dropUnfit = config.AI.DropUnfit
		}
	}

	engine := recommend.New(recommend.WithLogger(logger.Named("engine")))

	return service.New(engine, matcher, service.Config{
		Limit:             config.Limit,
		ExcludedCompanies: config.Filters.Companies,
		JobTypes:          config.Filters.Types,
		Locations:         config.Filters.Locations,
		ExcludeFile:       config.ExcludeFile,
		IncludeApplied:    includeApplied,
		DropUnfit:         dropUnfit,
	}, logger)
}

func newAIMatcher(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Matcher, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai review is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries,
		logger.Named("gemini").With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries)),
	)
	if err != nil {
		return nil, err
	}
	generator.SetRateLimit(cfg.Gemini.RequestsPerMinute)

	minScore := cfg.MinimumFitScore
	if minScore < 0 {
		minScore = 0
	}

	matcher := gemini.NewMatcher(generator, minScore, cfg.Gemini.MaxLogLength,
		logger.Named("gemini").With(zap.Float64("minimum_fit_score", minScore)),
	)

	if cfg.Prompt != nil {
		matcher.SetPromptOverrides(gemini.PromptOverrides{
			ExtraCriteria:    cfg.Prompt.ExtraCriteria,
			DealBreakers:     cfg.Prompt.DealBreakers,
			Tone:             cfg.Prompt.Tone,
			UserInstructions: cfg.Prompt.UserInstructions,
		})
	}

	return matcher, nil
}
