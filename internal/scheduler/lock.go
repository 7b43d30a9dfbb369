package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

const lockPrefix = "poolledger:job:"

var errLockLost = errors.New("job lock expired or taken over")

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker grants one job run across all instances.
type Locker interface {
	Acquire(ctx context.Context, job string, ttl time.Duration) (release func(ctx context.Context) error, acquired bool, err error)
}

type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, job string, ttl time.Duration) (func(ctx context.Context) error, bool, error) {
	key := lockPrefix + job
	token := uuid.New().String()

	acquired, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, apperrors.NewValueError("unable to acquire job lock", utils.Caller(), err)
	}
	if !acquired {
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		deleted, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int64()
		if err != nil {
			return apperrors.NewValueError("unable to release job lock", utils.Caller(), err)
		}
		if deleted == 0 {
			return errLockLost
		}
		return nil
	}

	return release, true, nil
}
