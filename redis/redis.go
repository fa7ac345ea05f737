package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/MohamedOscar3/booking-service-modules-sub001/config"
	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const refreshTokenPrefix = "refresh:"

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// StoreRefreshToken records an issued refresh token so logout can revoke it.
func StoreRefreshToken(token string, userID uint, ttl time.Duration) error {
	return Client.Set(Ctx, refreshTokenPrefix+token, userID, ttl).Err()
}

// RefreshTokenValid reports whether the token was issued and not revoked.
func RefreshTokenValid(token string) (bool, error) {
	_, err := Client.Get(Ctx, refreshTokenPrefix+token).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RevokeRefreshToken invalidates a refresh token on logout.
func RevokeRefreshToken(token string) error {
	return Client.Del(Ctx, refreshTokenPrefix+token).Err()
}
