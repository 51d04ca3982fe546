package chat

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "chat:session:"

// RedisSessionStore keeps conversation context per sender with a TTL,
// so abandoned conversations expire on their own.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sender string) (*Session, error) {
	key := sessionPrefix + sender
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &Session{}, nil
	}
	if err != nil {
		return nil, err
	}
	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sender string, session *Session) error {
	key := sessionPrefix + sender
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, sender string) error {
	return s.client.Del(ctx, sessionPrefix+sender).Err()
}
