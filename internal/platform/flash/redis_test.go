// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package flash

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookmanager/internal/platform/constants"
	"github.com/taibuivan/bookmanager/pkg/uuid"
)

// setupIntegrationRedis connects to TEST_REDIS_URL. The test is skipped when
// no server is reachable.
func setupIntegrationRedis(t *testing.T) *redis.Client {
	t.Helper()

	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("Skipping integration test: TEST_REDIS_URL is not set")
	}

	options, err := redis.ParseURL(redisURL)
	require.NoError(t, err)

	client := redis.NewClient(options)
	t.Cleanup(func() { _ = client.Close() })

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Skipping integration test: cannot ping test redis: %v", err)
	}
	return client
}

/*
TestRedisStore_AddPop returns notices once, in order, and scopes them per session.
*/
func TestRedisStore_AddPop(t *testing.T) {
	client := setupIntegrationRedis(t)
	store := NewRedisStore(client)
	ctx := context.Background()

	session, other := uuid.New(), uuid.New()
	t.Cleanup(func() { client.Del(context.Background(), Key(session), Key(other)) })

	require.NoError(t, store.Add(ctx, session, Message{Level: LevelSuccess, Text: "Added Dune"}))
	require.NoError(t, store.Add(ctx, session, Message{Level: LevelError, Text: "Could not fetch book data (status 404)"}))
	require.NoError(t, store.Add(ctx, other, Message{Level: LevelInfo, Text: "other"}))

	messages, err := store.Pop(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, []Message{
		{Level: LevelSuccess, Text: "Added Dune"},
		{Level: LevelError, Text: "Could not fetch book data (status 404)"},
	}, messages)

	messages, err = store.Pop(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, messages)

	exists, err := client.Exists(ctx, Key(session)).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)

	messages, err = store.Pop(ctx, other)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

/*
TestRedisStore_Expiry sets the flash TTL on every add.
*/
func TestRedisStore_Expiry(t *testing.T) {
	client := setupIntegrationRedis(t)
	store := NewRedisStore(client)
	ctx := context.Background()

	session := uuid.New()
	t.Cleanup(func() { client.Del(context.Background(), Key(session)) })

	require.NoError(t, store.Add(ctx, session, Message{Level: LevelInfo, Text: "pending"}))

	ttl, err := client.TTL(ctx, Key(session)).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
	assert.LessOrEqual(t, ttl, constants.FlashTTL)
}

/*
TestRedisStore_SkipsInvalidEntries drops entries that are not notices.
*/
func TestRedisStore_SkipsInvalidEntries(t *testing.T) {
	client := setupIntegrationRedis(t)
	store := NewRedisStore(client)
	ctx := context.Background()

	session := uuid.New()
	t.Cleanup(func() { client.Del(context.Background(), Key(session)) })

	require.NoError(t, client.RPush(ctx, Key(session), "not json").Err())
	require.NoError(t, store.Add(ctx, session, Message{Level: LevelInfo, Text: "kept"}))

	messages, err := store.Pop(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, []Message{{Level: LevelInfo, Text: "kept"}}, messages)
}
