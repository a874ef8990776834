package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"

	"github.com/contactd/contactd/internal/metrics"
	"github.com/contactd/contactd/internal/model"
)

const (
	// StreamKey is the Redis stream for contact events.
	StreamKey = "stream:contact_events"

	// MaxStreamLen is the approximate max length of the stream.
	MaxStreamLen = 100000

	// PublishTimeout bounds how long a create request waits on Redis.
	PublishTimeout = 250 * time.Millisecond
)

// Publisher appends contact events to a Redis stream.
type Publisher struct {
	redis   *redis.Client
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewPublisher creates a new contact event publisher.
func NewPublisher(client *redis.Client, logger *slog.Logger, recorder metrics.Recorder) *Publisher {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Publisher{
		redis:   client,
		logger:  logger.With("component", "events.publisher"),
		metrics: recorder,
	}
}

// Publish adds a contact.created event to the stream and returns its stream ID.
func (p *Publisher) Publish(ctx context.Context, contact *model.Contact) (string, error) {
	event := contact.ToEvent(ulid.Make().String())

	data, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("marshal event: %w", err)
	}

	values := event.StreamFields()
	values["payload"] = string(data)

	result, err := p.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey,
		MaxLen: MaxStreamLen,
		Approx: true,
		ID:     "*",
		Values: values,
	}).Result()
	if err != nil {
		return "", fmt.Errorf("xadd: %w", err)
	}

	return result, nil
}

// ContactCreated publishes the event under PublishTimeout. Failures are
// logged and counted but not returned: the contact is already stored.
func (p *Publisher) ContactCreated(ctx context.Context, contact *model.Contact) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PublishTimeout)
	defer cancel()

	streamID, err := p.Publish(ctx, contact)
	if err != nil {
		p.logger.Warn("failed to publish contact event",
			"contact_id", contact.ID,
			"error", err,
		)
		p.metrics.IncEventPublished("dropped")
		return
	}

	p.logger.Debug("contact event published",
		"contact_id", contact.ID,
		"stream_id", streamID,
	)
	p.metrics.IncEventPublished("success")
}

// Ping checks Redis connectivity.
func (p *Publisher) Ping(ctx context.Context) error {
	return p.redis.Ping(ctx).Err()
}

// Close closes the Redis client.
func (p *Publisher) Close() error {
	return p.redis.Close()
}
