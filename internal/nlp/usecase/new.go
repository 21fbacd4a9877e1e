package usecase

import (
	"sync/atomic"
	"time"

	"calendar-assistant/internal/nlp"
	pkgLog "calendar-assistant/pkg/log"
	"calendar-assistant/pkg/openai"
	"calendar-assistant/pkg/parsecache"
)

const (
	cacheKeyPrefix = "nlp:"

	defaultCacheTTL      = time.Hour
	defaultRetryAttempts = 3
	defaultRetryDelay    = time.Second
)

// Config tunes the parsing pipeline. Zero fields fall back to defaults.
type Config struct {
	Timezone      string
	CacheTTL      time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

type implUseCase struct {
	l     pkgLog.Logger
	llm   openai.IOpenAI // nil when no remote credential is configured
	cache *parsecache.Cache[nlp.ParsedCommand]

	location      *time.Location
	cacheTTL      time.Duration
	retryAttempts int
	retryDelay    time.Duration

	// cooldownUntil is a unix-nano deadline; the remote client is bypassed
	// while it is in the future. A single scalar, so plain atomics suffice.
	cooldownUntil atomic.Int64

	clock func() time.Time
}

// New creates the command-parsing UseCase. llm may be nil, in which case
// every parse goes through the local fallback parser.
func New(
	l pkgLog.Logger,
	llm openai.IOpenAI,
	cache *parsecache.Cache[nlp.ParsedCommand],
	cfg Config,
) nlp.UseCase {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.RetryAttempts == 0 {
		cfg.RetryAttempts = defaultRetryAttempts
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = defaultRetryDelay
	}

	return &implUseCase{
		l:             l,
		llm:           llm,
		cache:         cache,
		location:      loc,
		cacheTTL:      cfg.CacheTTL,
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay,
		clock:         time.Now,
	}
}

func (uc *implUseCase) coolingDown(now time.Time) bool {
	return now.UnixNano() < uc.cooldownUntil.Load()
}

func (uc *implUseCase) recordCooldown(until time.Time) {
	uc.cooldownUntil.Store(until.UnixNano())
}
