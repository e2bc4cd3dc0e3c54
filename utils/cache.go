// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"samfit/config"

	"github.com/go-redis/redis/v8"
)

// SubmitGuardClient is the dedicated client for in-flight submit guarding.
var SubmitGuardClient *redis.Client

// InitSubmitGuard initializes the Redis client used to deduplicate in-flight
// booking submissions.
func InitSubmitGuard() {
	SubmitGuardClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSubmitGuardDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SubmitGuardClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Submit Guard): %v", err)
	}
}

// GetSubmitGuardClient returns the Redis client for submit guarding.
func GetSubmitGuardClient() *redis.Client {
	if SubmitGuardClient == nil {
		InitSubmitGuard()
	}
	return SubmitGuardClient
}
