package redis

import (
	"errors"

	"github.com/go-redis/redis"
	"github.com/omnifaces/locator/locator"
	"github.com/omnifaces/locator/util/errs"
	"github.com/spf13/cast"
)

// Environment entries understood by the Redis directory provider.
const (
	PropRedisAddress  = "redis.address"
	PropRedisPassword = "redis.password"
	PropRedisDatabase = "redis.database"
)

func init() {
	locator.RegisterProvider("redis", NewDirectory)
}

// Directory backed by Redis string keys.
//
// The qualified lookup name is used verbatim as the Redis key; the resolved
// object is the value, as []byte.
type RedisDirectory struct {
	client *redis.Client
}

// Connect to Redis using the locator environment entries.
//
// The connection is verified with a PING before the directory is returned.
func NewDirectory(env map[string]string) (locator.Directory, error) {
	addr := "localhost:6379"
	if a, ok := env[PropRedisAddress]; ok {
		addr = a
	}

	db := 0
	if d, ok := env[PropRedisDatabase]; ok {
		n, err := cast.ToIntE(d)
		if err != nil {
			return nil, errs.WrapErrf(err, "illegal %s value '%s'", PropRedisDatabase, d)
		}
		db = n
	}

	locator.Infof("Connecting to Redis on %s, database: %d", addr, db)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: env[PropRedisPassword],
		DB:       db,
	})
	if cmd := client.Ping(); cmd.Err() != nil {
		return nil, errs.WrapErrf(cmd.Err(), "ping redis on '%s' failed", addr)
	}
	return &RedisDirectory{client: client}, nil
}

func (d *RedisDirectory) Lookup(name string) (any, error) {
	cmd := d.client.Get(name)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, locator.ErrNameNotFound.Wrapf(err, "redis key '%s' missing", name)
		}
		return nil, errs.WrapErrf(err, "get redis key '%s' failed", name)
	}
	return []byte(cmd.Val()), nil
}
