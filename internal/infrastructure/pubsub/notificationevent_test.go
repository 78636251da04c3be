package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisNotificationSink_PublishSubscribe(t *testing.T) {
	client := setupTestRedis(t)
	sink := NewRedisNotificationSink(client, "ticket:notifications:test", logger.NewNopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	received := make(chan NotificationEvent, 1)
	go func() {
		_ = sink.Subscribe(ctx, func(event NotificationEvent) { received <- event })
	}()

	// wait for the subscription to be registered
	require.Eventually(t, func() bool {
		n, err := client.PubSubNumSub(ctx, "ticket:notifications:test").Result()
		return err == nil && n["ticket:notifications:test"] > 0
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, sink.Notify(ctx, "alice@x.com", "Welcome", "hello"))

	select {
	case event := <-received:
		assert.Equal(t, "alice@x.com", event.To)
		assert.Equal(t, "Welcome", event.Subject)
		assert.NotEmpty(t, event.ID)
	case <-ctx.Done():
		t.Fatal("notification event not received")
	}
}

func TestRedisNotificationSink_UnreachableIsSinkError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	sink := NewRedisNotificationSink(client, "", logger.NewNopLogger())
	assert.Equal(t, SinkNameRedis, sink.Name())

	err := sink.Notify(context.Background(), "bob@x.com", "New ticket", "body")
	require.Error(t, err)
	assert.True(t, apperrors.IsSinkError(err))
}
