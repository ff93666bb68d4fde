package bot

import (
	"sync"

	"golang.org/x/time/rate"
)

// ChatLimiter throttles per chat so one noisy dialog cannot starve the
// rest. Limiters are created lazily on first message.
type ChatLimiter struct {
	mu      sync.Mutex
	perChat map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

func NewChatLimiter(perSecond float64, burst int) *ChatLimiter {
	return &ChatLimiter{
		perChat: make(map[string]*rate.Limiter),
		limit:   rate.Limit(perSecond),
		burst:   burst,
	}
}

func (l *ChatLimiter) Allow(chatID string) bool {
	l.mu.Lock()
	lim, ok := l.perChat[chatID]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.perChat[chatID] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}
