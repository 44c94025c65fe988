package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// IDGenerator hands out identifiers for records whose caller left the id empty.
type IDGenerator interface {
	NextID(ctx context.Context, kind Kind) (string, error)
}

// UUIDGenerator generates random v4 UUIDs.
type UUIDGenerator struct{}

// NextID returns a new UUID string regardless of kind.
func (UUIDGenerator) NextID(context.Context, Kind) (string, error) {
	return uuid.NewString(), nil
}

// RedisSequence generates short per-kind sequential ids (Y-001, C-014, R-002)
// from counters kept in Redis.
type RedisSequence struct {
	client *redis.Client
}

// NewRedisSequence creates a RedisSequence on top of an existing client.
func NewRedisSequence(client *redis.Client) *RedisSequence {
	return &RedisSequence{client: client}
}

// DialRedisSequence connects to Redis at addr and verifies the connection.
func DialRedisSequence(ctx context.Context, addr string) (*RedisSequence, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("could not connect to redis (%s): %w", addr, err)
	}
	return NewRedisSequence(client), nil
}

// NextID increments the counter for kind and formats it.
func (s *RedisSequence) NextID(ctx context.Context, kind Kind) (string, error) {
	prefix, ok := sequencePrefixes[kind]
	if !ok {
		return "", fmt.Errorf("no id sequence for kind %q", kind)
	}
	n, err := s.client.Incr(ctx, sequenceKey(kind)).Result()
	if err != nil {
		return "", fmt.Errorf("increment %s sequence: %w", kind, err)
	}
	return fmt.Sprintf("%s-%03d", prefix, n), nil
}

// Close closes the Redis connection.
func (s *RedisSequence) Close() error {
	return s.client.Close()
}

// LazyRedisSequence dials Redis on the first NextID, so callers that supply
// their own ids never need Redis to be reachable.
type LazyRedisSequence struct {
	addr string

	mu  sync.Mutex
	seq *RedisSequence
}

// NewLazyRedisSequence creates a sequence for the Redis at addr without connecting.
func NewLazyRedisSequence(addr string) *LazyRedisSequence {
	return &LazyRedisSequence{addr: addr}
}

// NextID connects on first use, then delegates to RedisSequence.NextID.
// A failed connection is retried on the next call.
func (l *LazyRedisSequence) NextID(ctx context.Context, kind Kind) (string, error) {
	l.mu.Lock()
	if l.seq == nil {
		seq, err := DialRedisSequence(ctx, l.addr)
		if err != nil {
			l.mu.Unlock()
			return "", err
		}
		l.seq = seq
	}
	seq := l.seq
	l.mu.Unlock()
	return seq.NextID(ctx, kind)
}

// Close closes the connection if one was made.
func (l *LazyRedisSequence) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.seq == nil {
		return nil
	}
	err := l.seq.Close()
	l.seq = nil
	return err
}

var sequencePrefixes = map[Kind]string{
	KindYCH:        "Y",
	KindCommission: "C",
	KindRequest:    "R",
}

func sequenceKey(kind Kind) string {
	return fmt.Sprintf("artm:seq:%s", kind)
}
