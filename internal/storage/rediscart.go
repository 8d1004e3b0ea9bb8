package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCart keeps each user's cart as a hash cart:<userID> of
// dishID -> quantity. The hash lives outside any durable transaction;
// the checkout coordinator owns the ordering guarantees around it.
type RedisCart struct {
	Client  *redis.Client
	LockTTL time.Duration
}

func NewRedisCart(client *redis.Client, lockTTL time.Duration) *RedisCart {
	return &RedisCart{Client: client, LockTTL: lockTTL}
}

func cartKey(userID int) string {
	return "cart:" + strconv.Itoa(userID)
}

func checkoutLockKey(userID int) string {
	return "checkout:" + strconv.Itoa(userID)
}

func (c *RedisCart) Increment(ctx context.Context, userID, dishID, delta int) error {
	return c.Client.HIncrBy(ctx, cartKey(userID), strconv.Itoa(dishID), int64(delta)).Err()
}

// DecrementOrRemove drops the whole entry when amount covers the stored
// quantity, so a quantity never lingers at zero or below. The read and
// the write are two round trips; a concurrent mutation of the same
// user's cart in between is last-write-wins.
func (c *RedisCart) DecrementOrRemove(ctx context.Context, userID, dishID, amount int) error {
	field := strconv.Itoa(dishID)
	current, err := c.Client.HGet(ctx, cartKey(userID), field).Int()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	if current <= amount {
		return c.Client.HDel(ctx, cartKey(userID), field).Err()
	}
	return c.Client.HIncrBy(ctx, cartKey(userID), field, int64(-amount)).Err()
}

// ReadAll returns the user's full cart as dishID -> quantity; an empty
// map when the user has no cart. Iteration order carries no meaning.
func (c *RedisCart) ReadAll(ctx context.Context, userID int) (map[int]int, error) {
	raw, err := c.Client.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	cart := make(map[int]int, len(raw))
	for field, value := range raw {
		dishID, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		quantity, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		cart[dishID] = quantity
	}
	return cart, nil
}

func (c *RedisCart) Clear(ctx context.Context, userID int) error {
	return c.Client.Del(ctx, cartKey(userID)).Err()
}

// AcquireCheckoutLock takes an advisory per-user lock so only one
// checkout runs for a user at a time. The TTL bounds the lock lifetime
// if the process dies before releasing it.
func (c *RedisCart) AcquireCheckoutLock(ctx context.Context, userID int) (bool, error) {
	return c.Client.SetNX(ctx, checkoutLockKey(userID), "1", c.LockTTL).Result()
}

func (c *RedisCart) ReleaseCheckoutLock(ctx context.Context, userID int) error {
	return c.Client.Del(ctx, checkoutLockKey(userID)).Err()
}
