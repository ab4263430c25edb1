package sessionbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"voterdesk/internal/domain/entity"
	"voterdesk/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// redisBus fans session events out to every instance through a Redis channel.
// Each instance delivers received events to its own local subscribers.
type redisBus struct {
	client  *redis.Client
	pubsub  *redis.PubSub
	channel string
	local   *localBus
	logger  *slog.Logger
	done    chan struct{}
	closing sync.Once
}

func newRedisBus(ctx context.Context, redisURL, channel string, logger *slog.Logger) (*redisBus, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "ping redis")
	}

	pubsub := client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		_ = client.Close()

		return nil, errors.Wrapf(err, "subscribe to %s", channel)
	}

	bus := &redisBus{
		client:  client,
		pubsub:  pubsub,
		channel: channel,
		local:   newLocalBus(logger),
		logger:  logger,
		done:    make(chan struct{}),
	}
	go bus.listen(pubsub.Channel())

	return bus, nil
}

func (b *redisBus) listen(messages <-chan *redis.Message) {
	defer close(b.done)

	for msg := range messages {
		b.handleMessage(msg.Payload)
	}
}

func (b *redisBus) handleMessage(payload string) {
	var event entity.SessionEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		b.logger.Warn("Dropping malformed session event", slog.String("channel", b.channel), slog.Any("error", err))

		return
	}

	b.local.dispatch(event)
}

func (b *redisBus) Publish(ctx context.Context, event entity.SessionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return errors.Wrapf(err, "publish session event to %s", b.channel)
	}

	return nil
}

func (b *redisBus) Subscribe(identityID uuid.UUID, fn func(entity.SessionEvent)) func() {
	return b.local.Subscribe(identityID, fn)
}

func (b *redisBus) Close() error {
	var err error
	b.closing.Do(func() {
		err = errors.Join(b.pubsub.Close(), b.client.Close(), b.local.Close())
		<-b.done
	})

	return err
}
