package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bizsuite/loyalty/internal/model"
)

const cachedCustomerTimeToLive = 10 * time.Minute

// CustomerCacheRepository is read-through cache for customer records
type CustomerCacheRepository interface {
	FindByID(context.Context, string) (*model.Customer, error)
	Create(context.Context, *model.Customer) error
	DeleteByID(context.Context, string) error
}

type redisCustomerCache struct {
	client *redis.Client
}

// NewRedisCustomerCache builds redis-backed CustomerCacheRepository
func NewRedisCustomerCache(client *redis.Client) CustomerCacheRepository {
	return &redisCustomerCache{client: client}
}

func (r *redisCustomerCache) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	res, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var c model.Customer
	if err := msgpack.Unmarshal([]byte(res), &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *redisCustomerCache) Create(ctx context.Context, c *model.Customer) error {
	encoded, err := msgpack.Marshal(c)
	if err != nil {
		return err
	}

	if _, err := r.client.SetNX(ctx, r.key(c.ID), encoded, cachedCustomerTimeToLive).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisCustomerCache) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.client.Del(ctx, r.key(id)).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisCustomerCache) key(id string) string {
	return fmt.Sprintf("loyalty:customer:%s", id)
}
