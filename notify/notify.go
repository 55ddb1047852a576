// Package notify broadcasts committed board mutations so presentation layers
// can refresh without polling the store.
package notify

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Event kinds, one per store mutation.
const (
	TaskCreated = "task-created"
	TaskUpdated = "task-updated"
	TaskDeleted = "task-deleted"
	TaskMoved   = "task-moved"
	BoardReset  = "board-reset"
	BoardLoaded = "board-loaded"
)

// Event describes one committed board mutation.
type Event struct {
	Kind       string `json:"kind"`
	TaskID     string `json:"taskId,omitempty"`
	FromColumn string `json:"fromColumn,omitempty"`
	ToColumn   string `json:"toColumn,omitempty"`
	Time       int64  `json:"time"`
}

// Publisher broadcasts board change events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// RedisPublisher publishes events onto a Redis channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher creates a publisher for the given channel.
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	if client == nil {
		panic("notify.NewRedisPublisher: redis client is nil")
	}
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	if ev.Time == 0 {
		ev.Time = nextTimestamp()
	}
	data, err := sonic.Marshal(ev)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.channel, data).Err()
}

// Subscribe listens on the channel and hands each decoded event to handler
// until ctx is cancelled. Malformed payloads are logged and skipped.
func Subscribe(ctx context.Context, logger *log.Logger, rc *redis.Client, channel string, handler func(Event)) {
	if logger == nil {
		logger = log.StandardLogger()
	}
	sub := rc.Subscribe(ctx, channel)
	defer sub.Close()
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				logger.Error("board update channel closed")
				return
			}
			var ev Event
			if err := sonic.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				logger.WithError(err).Error("unable to parse board update")
				continue
			}
			handler(ev)
		}
	}
}
