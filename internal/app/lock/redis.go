package lock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// освобождаем ключ только если он всё ещё наш
var unlockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Redis is a lease-based lock shared by every service instance. A lease
// expires after ttl even if the holder dies.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	wait   time.Duration
	retry  time.Duration
}

var _ Locker = (*Redis)(nil)

// NewRedis connects to Redis and checks the connection.
func NewRedis(ctx context.Context, endpoint, password string, ttl, wait time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     endpoint,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "redis ping")
	}
	logrus.Infof("redis lock connected: %s", endpoint)
	return NewRedisWithClient(client, ttl, wait), nil
}

func NewRedisWithClient(client *redis.Client, ttl, wait time.Duration) *Redis {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if wait <= 0 {
		wait = 10 * time.Second
	}
	return &Redis{
		client: client,
		prefix: "fueleu:lock:",
		ttl:    ttl,
		wait:   wait,
		retry:  25 * time.Millisecond,
	}
}

func (l *Redis) Lock(ctx context.Context, keys ...string) (func(), error) {
	keys = normalize(keys)
	token := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	acquired := make([]string, 0, len(keys))
	for _, key := range keys {
		if err := l.acquire(waitCtx, l.prefix+key, token); err != nil {
			l.release(acquired, token)
			return nil, err
		}
		acquired = append(acquired, l.prefix+key)
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		l.release(acquired, token)
	}, nil
}

func (l *Redis) acquire(ctx context.Context, key, token string) error {
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return errors.Wrapf(err, "acquire lock %s", key)
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "acquire lock %s", key)
		case <-time.After(l.retry):
		}
	}
}

func (l *Redis) release(keys []string, token string) {
	for _, key := range keys {
		// контекст запроса мог уже завершиться
		if err := unlockScript.Run(context.Background(), l.client, []string{key}, token).Err(); err != nil {
			logrus.WithField("key", key).Errorf("redis unlock error: %v", err)
		}
	}
}

func (l *Redis) Close() error {
	return l.client.Close()
}
