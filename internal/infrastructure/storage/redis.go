package storage

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/GriffinCanCode/CourseCatalog/backend/internal/domain/catalog"
)

// RedisStore keeps the catalog as a Redis list of JSON encoded courses.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a store on the list at key.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

// DialRedis connects to addr and verifies the connection with PING.
// Commands are not retried; a failed call fails the request.
func DialRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:       addr,
		Password:   password,
		DB:         db,
		MaxRetries: -1,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

// Load returns the whole list. A missing key is an empty catalog.
func (s *RedisStore) Load(ctx context.Context) ([]catalog.Course, error) {
	vals, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog list %s: %w", s.key, err)
	}

	courses := make([]catalog.Course, 0, len(vals))
	for i, v := range vals {
		var c catalog.Course
		if err := sonic.UnmarshalString(v, &c); err != nil {
			return nil, &ParseError{Source: fmt.Sprintf("redis list %s[%d]", s.key, i), Err: err}
		}
		courses = append(courses, c)
	}
	return courses, nil
}

// Save appends course with a single RPUSH.
func (s *RedisStore) Save(ctx context.Context, course catalog.Course) error {
	data, err := sonic.MarshalString(course)
	if err != nil {
		return fmt.Errorf("failed to encode course: %w", err)
	}
	if err := s.client.RPush(ctx, s.key, data).Err(); err != nil {
		return fmt.Errorf("failed to append to catalog list %s: %w", s.key, err)
	}
	return nil
}

// Close releases the client connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
