package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"ai-calendar-assistant/pkg/response"
)

// defaultMaxLimiters caps the registry when no session bound is configured.
const defaultMaxLimiters = 1024

// limiterRegistry holds one token bucket per user, bounded by an LRU so a
// scan of user IDs cannot grow it without limit. The generative-text
// endpoint is metered, so chat traffic is throttled before it reaches it.
type limiterRegistry struct {
	mu       sync.Mutex
	perMin   int
	limiters *lru.Cache[string, *rate.Limiter]
}

func newLimiterRegistry(perMin, maxUsers int) *limiterRegistry {
	if maxUsers <= 0 {
		maxUsers = defaultMaxLimiters
	}
	limiters, err := lru.New[string, *rate.Limiter](maxUsers)
	if err != nil {
		panic(err)
	}
	return &limiterRegistry{
		perMin:   perMin,
		limiters: limiters,
	}
}

func (r *limiterRegistry) allow(userID string) bool {
	if r.perMin <= 0 {
		return true
	}

	r.mu.Lock()
	limiter, ok := r.limiters.Get(userID)
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(float64(r.perMin)/60.0), r.perMin)
		r.limiters.Add(userID, limiter)
	}
	r.mu.Unlock()

	return limiter.Allow()
}

// ChatRateLimit throttles chat messages per authenticated user.
// Must run after Auth.
func (m Middleware) ChatRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiters.allow(UserID(c)) {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
