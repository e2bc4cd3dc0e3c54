package middleware

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SubmitGuard deduplicates in-flight submissions: the server-side equivalent
// of the form's disabled submit button. A second identical submission while
// the first is outstanding is rejected instead of creating a second record.
type SubmitGuard struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewSubmitGuard returns a guard with the default in-flight window.
func NewSubmitGuard(client *redis.Client) *SubmitGuard {
	return &SubmitGuard{Client: client, TTL: 30 * time.Second}
}

// Key derives the guard key from the submitter identity and payload.
func (g *SubmitGuard) Key(owner, payload string) string {
	h := sha1.Sum([]byte(payload))
	return "submit:" + owner + ":" + hex.EncodeToString(h[:])
}

// Acquire claims the key for the duration of the request. It returns a
// release func and whether the claim succeeded. A guard-store failure is
// logged and treated as acquired: losing deduplication is preferable to
// refusing bookings.
func (g *SubmitGuard) Acquire(ctx context.Context, key string) (func(), bool) {
	ok, err := g.Client.SetNX(ctx, key, "1", g.TTL).Result()
	if err != nil {
		zap.L().Warn("Submit guard unavailable, proceeding without dedup", zap.Error(err))
		return func() {}, true
	}
	if !ok {
		return func() {}, false
	}
	return func() {
		// Background: the request context may already be done.
		_ = g.Client.Del(context.Background(), key).Err()
	}, true
}
