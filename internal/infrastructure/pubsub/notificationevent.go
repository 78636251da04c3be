package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/biztime"
	apperrors "github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/goroutine"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

const (
	SinkNameRedis = "redis"

	DefaultNotificationChannel = "ticket:notifications"
)

// NotificationEvent is the payload published for every delivered notification.
// Downstream mailers consume it and do the actual delivery.
type NotificationEvent struct {
	ID         string `json:"id"`
	To         string `json:"to"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	Timestamp  int64  `json:"timestamp"`
	InstanceID string `json:"instance_id,omitempty"`
}

// RedisNotificationSink publishes notifications on a Redis Pub/Sub channel.
type RedisNotificationSink struct {
	client     *redis.Client
	channel    string
	logger     logger.Interface
	instanceID string
}

func NewRedisNotificationSink(client *redis.Client, channel string, logger logger.Interface) *RedisNotificationSink {
	if channel == "" {
		channel = DefaultNotificationChannel
	}
	return &RedisNotificationSink{
		client:     client,
		channel:    channel,
		logger:     logger,
		instanceID: uuid.NewString(),
	}
}

func (s *RedisNotificationSink) Name() string {
	return SinkNameRedis
}

func (s *RedisNotificationSink) Notify(ctx context.Context, to, subject, body string) error {
	event := NotificationEvent{
		ID:         uuid.NewString(),
		To:         to,
		Subject:    subject,
		Body:       body,
		Timestamp:  biztime.NowUTC().Unix(),
		InstanceID: s.instanceID,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return apperrors.NewSinkError(SinkNameRedis, to, fmt.Errorf("failed to marshal notification event: %w", err))
	}

	if err := s.client.Publish(ctx, s.channel, data).Err(); err != nil {
		return apperrors.NewSinkError(SinkNameRedis, to, fmt.Errorf("failed to publish notification: %w", err))
	}

	s.logger.Debugw("notification published to Redis",
		"event_id", event.ID,
		"channel", s.channel,
	)
	return nil
}

// Subscribe delivers events from the channel to handler until ctx is done,
// reconnecting with exponential backoff.
func (s *RedisNotificationSink) Subscribe(ctx context.Context, handler func(event NotificationEvent)) error {
	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		err := s.subscribe(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		s.logger.Warnw("notification subscription disconnected, reconnecting",
			"channel", s.channel,
			"error", err,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (s *RedisNotificationSink) subscribe(ctx context.Context, handler func(event NotificationEvent)) error {
	sub := s.client.Subscribe(ctx, s.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel %s: %w", s.channel, err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			var event NotificationEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				s.logger.Warnw("failed to unmarshal notification event",
					"payload", msg.Payload,
					"error", err,
				)
				continue
			}

			goroutine.SafeGo(s.logger, "notification-event-handler", func() {
				handler(event)
			})
		}
	}
}
