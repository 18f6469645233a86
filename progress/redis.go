package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher mirrors transfer progress into a Redis hash and
// publishes each event on a channel, so an external dashboard or
// fleet-management tool can watch a transfer live. It is one optional
// implementation of xmodem.Reporter among several, never a core
// dependency: a hash of current state plus a pub/sub channel carrying
// "field:value" updates.
type RedisPublisher struct {
	client  *redis.Client
	ctx     context.Context
	key     string
	channel string
}

// NewRedisPublisher connects to addr and returns a RedisPublisher that
// writes to the hash at key and publishes to channel. session identifies
// this transfer (e.g. the file name) and is stored in the hash under
// "session" on the first write.
func NewRedisPublisher(addr, password string, db int, key, channel, session string) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("progress: connect to redis: %w", err)
	}

	rp := &RedisPublisher{client: client, ctx: ctx, key: key, channel: channel}
	_ = rp.publish("session", session)
	return rp, nil
}

// Close releases the underlying Redis connection.
func (r *RedisPublisher) Close() error {
	return r.client.Close()
}

func (r *RedisPublisher) publish(field, value string) error {
	pipe := r.client.Pipeline()
	pipe.HSet(r.ctx, r.key, field, value)
	pipe.Publish(r.ctx, r.channel, fmt.Sprintf("%s:%s", field, value))
	_, err := pipe.Exec(r.ctx)
	return err
}

func (r *RedisPublisher) Progress(block byte, bytesTransferred int64) {
	_ = r.publish("block", fmt.Sprintf("%d", block))
	_ = r.publish("bytes", fmt.Sprintf("%d", bytesTransferred))
	_ = r.publish("event", EventProgress)
}

func (r *RedisPublisher) Retry(block byte, attempt int, reason string) {
	_ = r.publish("event", EventRetry)
	_ = r.publish("retry", fmt.Sprintf("block=%d attempt=%d reason=%s", block, attempt, reason))
}

func (r *RedisPublisher) Done(bytesTransferred int64, err error) {
	_ = r.publish("event", EventDone)
	_ = r.publish("bytes", fmt.Sprintf("%d", bytesTransferred))
	_ = r.publish("finished_at", time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		_ = r.publish("error", err.Error())
	} else {
		_ = r.publish("error", "")
	}
}
