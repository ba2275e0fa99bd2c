package middleware

import (
	"ai-calendar-assistant/config"
	"ai-calendar-assistant/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares: auth-provider token
// verification and per-user chat rate limiting.
type Middleware struct {
	l         log.Logger
	jwtSecret []byte
	limiters  *limiterRegistry
}

func New(l log.Logger, authCfg config.AuthConfig, chatCfg config.ChatConfig) Middleware {
	return Middleware{
		l:         l,
		jwtSecret: []byte(authCfg.JWTSecret),
		limiters:  newLimiterRegistry(chatCfg.RateLimitPerMin, chatCfg.MaxSessions),
	}
}
