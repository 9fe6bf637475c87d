package booking

import (
	"context"
	"encoding/json"
	"time"

	"swiftcab/models"

	"github.com/go-redis/redis/v8"
)

const cachePrefix = "booking:"

// BookingCache is a read-through cache in front of the booking repository.
// Any failure is a miss; the repository stays authoritative.
type BookingCache interface {
	Get(ctx context.Context, id string) (*models.Booking, bool)
	Set(ctx context.Context, booking *models.Booking)
	Invalidate(ctx context.Context, id string)
}

// RedisBookingCache keeps booking records as JSON blobs with a TTL.
type RedisBookingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisBookingCache(client *redis.Client, ttl time.Duration) *RedisBookingCache {
	return &RedisBookingCache{client: client, ttl: ttl}
}

func (c *RedisBookingCache) Get(ctx context.Context, id string) (*models.Booking, bool) {
	data, err := c.client.Get(ctx, cachePrefix+id).Result()
	if err != nil {
		return nil, false
	}
	var booking models.Booking
	if err := json.Unmarshal([]byte(data), &booking); err != nil {
		return nil, false
	}
	return &booking, true
}

func (c *RedisBookingCache) Set(ctx context.Context, booking *models.Booking) {
	b, err := json.Marshal(booking)
	if err != nil {
		return
	}
	c.client.Set(ctx, cachePrefix+booking.ID, b, c.ttl)
}

func (c *RedisBookingCache) Invalidate(ctx context.Context, id string) {
	c.client.Del(ctx, cachePrefix+id)
}
