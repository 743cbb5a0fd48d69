package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const changeChannel = "vendorguard:changed"

// ChangeFeed implements ports.ChangeFeed on Redis pub/sub. Notifications
// carry no payload; subscribers re-read the stores on every tick.
type ChangeFeed struct {
	client *goredis.Client
	log    zerolog.Logger
}

// NewChangeFeed creates a Redis-backed change feed.
func NewChangeFeed(client *goredis.Client, log zerolog.Logger) *ChangeFeed {
	return &ChangeFeed{client: client, log: log}
}

// Publish broadcasts a payload-less change notification.
func (f *ChangeFeed) Publish(ctx context.Context) error {
	if err := f.client.Publish(ctx, changeChannel, "").Err(); err != nil {
		return fmt.Errorf("redis change publish: %w", err)
	}
	return nil
}

// Subscribe returns a channel that receives one tick per published change.
// The channel closes when ctx is cancelled. Slow consumers drop ticks rather
// than block the feed.
func (f *ChangeFeed) Subscribe(ctx context.Context) (<-chan struct{}, error) {
	sub := f.client.Subscribe(ctx, changeChannel)

	// Force the subscription to be established before returning so callers
	// never miss a notification published right after Subscribe.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("redis change subscribe: %w", err)
	}

	ticks := make(chan struct{}, 1)
	go func() {
		defer close(ticks)
		defer func() { _ = sub.Close() }()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case ticks <- struct{}{}:
				default:
					f.log.Debug().Msg("change feed tick dropped, consumer busy")
				}
			}
		}
	}()

	return ticks, nil
}
