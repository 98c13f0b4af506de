package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ipWindowLimit requests per ipWindow per (ip, purpose) pair.
	ipWindowLimit = 10
	ipWindow      = 15 * time.Minute

	// emailCooldown throttles per-address verification emails.
	emailCooldown = 2 * time.Minute
)

// Limiter implements fixed-window request counting and per-email cooldowns on
// top of Redis. All checks fail open: callers log limiter errors and let the
// request through rather than blocking legitimate traffic on a Redis outage.
type Limiter struct {
	client *redis.Client
}

func NewLimiter(client *redis.Client) *Limiter {
	return &Limiter{client: client}
}

// CheckIPRateLimit reports whether the IP exceeded the general request budget.
func (l *Limiter) CheckIPRateLimit(ctx context.Context, ip string) (bool, error) {
	return l.CheckIPRateLimitWithPurpose(ctx, ip, "general")
}

// RecordIPRequest counts a request against the IP's general budget.
func (l *Limiter) RecordIPRequest(ctx context.Context, ip string) error {
	return l.RecordIPRequestWithPurpose(ctx, ip, "general")
}

// CheckIPRateLimitWithPurpose reports whether the IP exceeded the budget for a
// specific endpoint purpose (register, login, ...). Purposes are counted
// separately so a burst of logins does not lock out registration.
func (l *Limiter) CheckIPRateLimitWithPurpose(ctx context.Context, ip, purpose string) (bool, error) {
	count, err := l.client.Get(ctx, ipKey(ip, purpose)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read rate limit counter: %w", err)
	}
	return count >= ipWindowLimit, nil
}

// RecordIPRequestWithPurpose counts a request against the (ip, purpose) budget.
// The window TTL is set when the counter is created so it expires on its own.
func (l *Limiter) RecordIPRequestWithPurpose(ctx context.Context, ip, purpose string) error {
	key := ipKey(ip, purpose)

	pipe := l.client.Pipeline()
	pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, ipWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record request: %w", err)
	}

	return nil
}

// CheckEmailCooldown reports whether a verification email was sent to this
// address within the cooldown window.
func (l *Limiter) CheckEmailCooldown(ctx context.Context, email string) (bool, error) {
	exists, err := l.client.Exists(ctx, emailKey(email)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check email cooldown: %w", err)
	}
	return exists > 0, nil
}

// SetEmailCooldown starts the cooldown window for an email address.
func (l *Limiter) SetEmailCooldown(ctx context.Context, email string) error {
	if err := l.client.Set(ctx, emailKey(email), "1", emailCooldown).Err(); err != nil {
		return fmt.Errorf("failed to set email cooldown: %w", err)
	}
	return nil
}

func ipKey(ip, purpose string) string {
	return fmt.Sprintf("ratelimit:ip:%s:%s", purpose, ip)
}

// emailKey hashes the address so raw emails are not stored in Redis keys.
func emailKey(email string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("ratelimit:email:%s", hex.EncodeToString(sum[:]))
}
