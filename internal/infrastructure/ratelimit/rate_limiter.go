package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Actions with their own buckets.
const (
	ActionRateProfile = "rate_profile"
	ActionUploadMedia = "upload_media"
	ActionInvite      = "invite_member"
)

// Policy describes one bucket: Max tokens, refilled by Refill every Every.
type Policy struct {
	Max    int
	Refill int
	Every  time.Duration
}

// PerMinute spreads n tokens evenly over a minute.
func PerMinute(n int) Policy {
	if n <= 0 {
		n = 1
	}
	return Policy{Max: n, Refill: 1, Every: time.Minute / time.Duration(n)}
}

// TokenBucket is a single user/action allowance.
type TokenBucket struct {
	tokens     int
	maxTokens  int
	refillRate int
	refillTime time.Duration
	lastRefill time.Time
	lastUsed   time.Time
	mutex      sync.Mutex
}

func NewTokenBucket(p Policy, now time.Time) *TokenBucket {
	return &TokenBucket{
		tokens:     p.Max,
		maxTokens:  p.Max,
		refillRate: p.Refill,
		refillTime: p.Every,
		lastRefill: now,
		lastUsed:   now,
	}
}

// Allow consumes a token if one is available, otherwise it reports how long
// until the next refill.
func (tb *TokenBucket) Allow(now time.Time) (bool, time.Duration) {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	tb.lastUsed = now
	elapsed := now.Sub(tb.lastRefill)
	if steps := int(elapsed / tb.refillTime); steps > 0 {
		tb.tokens += steps * tb.refillRate
		if tb.tokens > tb.maxTokens {
			tb.tokens = tb.maxTokens
		}
		tb.lastRefill = tb.lastRefill.Add(time.Duration(steps) * tb.refillTime)
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true, 0
	}

	return false, tb.lastRefill.Add(tb.refillTime).Sub(now)
}

func (tb *TokenBucket) Tokens() int {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()
	return tb.tokens
}

// RateLimiter keeps one bucket per user and action.
type RateLimiter struct {
	buckets  map[string]*TokenBucket
	policies map[string]Policy
	fallback Policy
	mutex    sync.RWMutex
	now      func() time.Time
}

func NewRateLimiter(policies map[string]Policy, fallback Policy) *RateLimiter {
	if policies == nil {
		policies = map[string]Policy{}
	}
	return &RateLimiter{
		buckets:  make(map[string]*TokenBucket),
		policies: policies,
		fallback: fallback,
		now:      time.Now,
	}
}

func (rl *RateLimiter) policy(action string) Policy {
	if p, ok := rl.policies[action]; ok {
		return p
	}
	return rl.fallback
}

func (rl *RateLimiter) Allow(userID, action string) (bool, time.Duration) {
	key := userID + ":" + action

	rl.mutex.RLock()
	bucket, exists := rl.buckets[key]
	rl.mutex.RUnlock()

	if !exists {
		rl.mutex.Lock()
		if bucket, exists = rl.buckets[key]; !exists {
			bucket = NewTokenBucket(rl.policy(action), rl.now())
			rl.buckets[key] = bucket
		}
		rl.mutex.Unlock()
	}

	return bucket.Allow(rl.now())
}

// Status returns remaining and maximum tokens; zeros when the bucket does not exist yet.
func (rl *RateLimiter) Status(userID, action string) (tokens int, maxTokens int) {
	rl.mutex.RLock()
	bucket, exists := rl.buckets[userID+":"+action]
	rl.mutex.RUnlock()

	if !exists {
		return 0, 0
	}
	return bucket.Tokens(), bucket.maxTokens
}

// Cleanup drops buckets idle for longer than maxIdle.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	for key, bucket := range rl.buckets {
		bucket.mutex.Lock()
		idle := now.Sub(bucket.lastUsed)
		bucket.mutex.Unlock()
		if idle > maxIdle {
			delete(rl.buckets, key)
		}
	}
}

// StartCleanupRoutine runs Cleanup every interval until ctx is done.
func (rl *RateLimiter) StartCleanupRoutine(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup(time.Hour)
			}
		}
	}()
}
