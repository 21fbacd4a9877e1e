package usecase

import (
	"context"
	"strings"

	"calendar-assistant/internal/nlp"
	"calendar-assistant/internal/nlp/fallback"
)

// ParseCommand resolves text to a typed command: cache first, then the
// remote model when configured and not cooling down, then the local
// fallback parser. Parsing failures never escape; only empty input does.
func (uc *implUseCase) ParseCommand(ctx context.Context, text string) (nlp.ParsedCommand, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nlp.ParsedCommand{}, nlp.ErrEmptyInput
	}

	key := cacheKeyPrefix + strings.ToLower(trimmed)
	if cached, ok := uc.cache.Get(key); ok {
		uc.l.Debugf(ctx, "parse cache hit for %q", trimmed)
		return cached, nil
	}

	now := uc.clock().In(uc.location)

	if uc.llm != nil && !uc.coolingDown(now) {
		cmd, err := uc.parseRemote(ctx, trimmed, now)
		if err == nil {
			uc.cache.SetWithTTL(key, cmd, uc.cacheTTL)
			return cmd, nil
		}
		uc.l.Warnf(ctx, "remote parse failed, using local fallback: %v", err)
	}

	cmd := fallback.Parse(trimmed, now)
	uc.cache.SetWithTTL(key, cmd, uc.cacheTTL)
	return cmd, nil
}
