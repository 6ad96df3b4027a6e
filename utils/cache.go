// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"caredesk/config"

	"github.com/go-redis/redis/v8"
)

// AuditCacheClient is the dedicated Redis client for the authorization
// audit trail.
var AuditCacheClient *redis.Client

// InitAuditCache initializes the Redis client for audit logging (using the
// audit DB from AppConfig).
func InitAuditCache() {
	AuditCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuditDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuditCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Audit): %v", err)
	}
}

// GetAuditCacheClient returns the Redis client for the audit trail.
func GetAuditCacheClient() *redis.Client {
	if AuditCacheClient == nil {
		InitAuditCache()
	}
	return AuditCacheClient
}
