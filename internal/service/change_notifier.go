package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ChangeChannel is the pub/sub channel carrying table change events.
const ChangeChannel = "bloodlink:changes"

// Change actions
const (
	ChangeActionInsert = "insert"
	ChangeActionUpdate = "update"
	ChangeActionDelete = "delete"
)

// ChangeEvent announces that a row changed in one of the profile tables.
// Consumers reload everything; the event deliberately carries no row data.
type ChangeEvent struct {
	Table  string    `json:"table"`
	Action string    `json:"action"`
	At     time.Time `json:"at"`
}

// Publisher emits change events after successful writes.
type Publisher interface {
	Publish(ctx context.Context, ev ChangeEvent) error
}

// Notifier is the full change-notification surface: publish on write,
// subscribe for a stream of events. Subscribe returns a channel that is
// closed when ctx is cancelled or the underlying connection drops.
type Notifier interface {
	Publisher
	Subscribe(ctx context.Context) (<-chan ChangeEvent, error)
}

// RedisNotifier implements Notifier over Redis pub/sub.
type RedisNotifier struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisNotifier(client *redis.Client, log *logrus.Logger) *RedisNotifier {
	return &RedisNotifier{client: client, log: log}
}

func (n *RedisNotifier) Publish(ctx context.Context, ev ChangeEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return n.client.Publish(ctx, ChangeChannel, payload).Err()
}

func (n *RedisNotifier) Subscribe(ctx context.Context) (<-chan ChangeEvent, error) {
	pubsub := n.client.Subscribe(ctx, ChangeChannel)

	// Confirm the subscription before handing out the channel.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	out := make(chan ChangeEvent, 16)
	msgs := pubsub.Channel()

	go func() {
		defer close(out)
		defer pubsub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					n.log.Warnf("Dropping malformed change event: %+v", err)
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
