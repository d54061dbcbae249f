package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type IRedis interface {
	SetRefreshToken(ctx context.Context, userID string, token string, expiration time.Duration) error
	GetRefreshToken(ctx context.Context, userID string) (string, error)
	DeleteRefreshToken(ctx context.Context, userID string) error
}

var ErrTokenNotFound = errors.New("refresh token not found")

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func refreshTokenKey(userID string) string {
	return fmt.Sprintf("refresh_token:%s", userID)
}

func (r *redisClient) SetRefreshToken(ctx context.Context, userID string, token string, expiration time.Duration) error {
	err := r.client.Set(ctx, refreshTokenKey(userID), token, expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error storing refresh token for user %s: %v", userID, err))
		return err
	}
	return nil
}

func (r *redisClient) GetRefreshToken(ctx context.Context, userID string) (string, error) {
	token, err := r.client.Get(ctx, refreshTokenKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrTokenNotFound
		}
		logrus.Error(fmt.Sprintf("Error getting refresh token for user %s: %v", userID, err))
		return "", err
	}
	return token, nil
}

func (r *redisClient) DeleteRefreshToken(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, refreshTokenKey(userID)).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting refresh token for user %s: %v", userID, err))
		return err
	}
	return nil
}
