package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-hub/internal/cache"
	"ai-hub/internal/database"
	"ai-hub/internal/provider"
	"ai-hub/internal/store"
	"ai-hub/internal/worker"
)

// ErrEmptyPrompt rejects generation requests without a usable prompt.
var ErrEmptyPrompt = errors.New("prompt is required")

// ProfileCacheTTL bounds how stale a cached profile may get even without
// invalidation.
const ProfileCacheTTL = 60 * time.Second

// ProfileCacheKey is the cache key for a user's profile response.
func ProfileCacheKey(userID int64) string {
	return fmt.Sprintf("user:profile:%d", userID)
}

// GenerationService forwards prompts to the AI provider and records usage.
// The ledger is only written after the provider succeeds: a failed
// generation never increments usage or appends history.
type GenerationService struct {
	db       database.DB
	cache    cache.Cache
	provider provider.Client
	pool     worker.Pool
}

func NewGenerationService(db database.DB, c cache.Cache, p provider.Client, wp worker.Pool) *GenerationService {
	return &GenerationService{db: db, cache: c, provider: p, pool: wp}
}

// Generate runs one generation for the user. The provider call goes through
// the worker pool so concurrent requests cannot exceed the pool size.
func (s *GenerationService) Generate(ctx context.Context, userID int64, toolType, prompt, systemInstruction string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	var (
		text   string
		genErr error
	)
	if err := s.pool.Do(ctx, func() {
		text, genErr = s.provider.GenerateContent(ctx, prompt, systemInstruction)
	}); err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	if genErr != nil {
		return "", fmt.Errorf("generate: %w", genErr)
	}

	if err := store.RecordGeneration(ctx, s.db, userID, toolType, prompt, text); err != nil {
		return "", err
	}

	// The recorded generation made the cached profile stale.
	if s.cache != nil {
		_ = s.cache.Del(ctx, ProfileCacheKey(userID)).Err()
	}
	return text, nil
}
