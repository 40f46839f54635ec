package otp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrCodeNotFound = errors.New("otp code not found")

// Record is what gets stored per phone number. Only the bcrypt hash of the
// code is kept at rest.
type Record struct {
	CodeHash  string    `json:"code_hash"`
	ExpiresAt time.Time `json:"expires_at"`
	Verified  bool      `json:"verified"`
}

type Store interface {
	Save(ctx context.Context, phone string, rec Record, ttl time.Duration) error
	Get(ctx context.Context, phone string) (Record, error)
	MarkVerified(ctx context.Context, phone string) error
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string, db int) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{client: client}
}

func (s *RedisStore) key(phone string) string { return "otp:" + phone }

func (s *RedisStore) Save(ctx context.Context, phone string, rec Record, ttl time.Duration) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(phone), data, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, phone string) (Record, error) {
	data, err := s.client.Get(ctx, s.key(phone)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Record{}, ErrCodeNotFound
		}
		return Record{}, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *RedisStore) MarkVerified(ctx context.Context, phone string) error {
	rec, err := s.Get(ctx, phone)
	if err != nil {
		return err
	}
	rec.Verified = true
	ttl, err := s.client.TTL(ctx, s.key(phone)).Result()
	if err != nil || ttl < 0 {
		ttl = time.Minute
	}
	return s.Save(ctx, phone, rec, ttl)
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
