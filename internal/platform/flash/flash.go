// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package flash stores one-shot notices between a redirect and the next page.

A notice is added for the current browser session and removed the first time
it is read. Unread notices expire after [constants.FlashTTL].
*/
package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/bookmanager/internal/platform/constants"
)

// Level classifies a notice for display.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Message is a single notice.
type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Store adds and drains the notices of a session.
type Store interface {
	Add(ctx context.Context, session string, message Message) error
	Pop(ctx context.Context, session string) ([]Message, error)
}

// # Redis Store

// RedisStore keeps notices in a Redis list per session.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisStore returns a store expiring unread notices after [constants.FlashTTL].
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client, ttl: constants.FlashTTL}
}

// Key returns the Redis key holding the notices of session.
func Key(session string) string {
	return constants.RedisPrefixFlash + session
}

// Add appends a notice and refreshes the expiry of the list.
func (store *RedisStore) Add(ctx context.Context, session string, message Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("flash: encode: %w", err)
	}

	key := Key(session)
	_, err = store.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, payload)
		pipe.Expire(ctx, key, store.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("flash: add: %w", err)
	}

	return nil
}

// Pop returns every pending notice in insertion order and deletes them.
func (store *RedisStore) Pop(ctx context.Context, session string) ([]Message, error) {
	key := Key(session)

	var values *redis.StringSliceCmd
	_, err := store.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		values = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("flash: pop: %w", err)
	}

	return decode(values.Val()), nil
}

// decode skips entries that are not valid notices.
func decode(values []string) []Message {
	messages := make([]Message, 0, len(values))
	for _, value := range values {
		var message Message
		if err := json.Unmarshal([]byte(value), &message); err != nil || message.Text == "" {
			continue
		}
		messages = append(messages, message)
	}
	return messages
}

// # Memory Store

// MemoryStore keeps notices in process memory. Notices do not expire.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]Message
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]Message)}
}

// Add appends a notice for session.
func (store *MemoryStore) Add(_ context.Context, session string, message Message) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.sessions[session] = append(store.sessions[session], message)
	return nil
}

// Pop drains the notices of session.
func (store *MemoryStore) Pop(_ context.Context, session string) ([]Message, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	messages := store.sessions[session]
	delete(store.sessions, session)
	return messages, nil
}
