package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/DjapsSparrow/Kine-siologie/internal/config"
)

const calendarTTL = 2 * time.Minute

// Cache keeps short-lived calendar projections in redis. Every helper
// fails soft: a cache outage must never fail the request it serves.
type Cache struct {
	client *redis.Client
}

func New(cfg *config.Config) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return &Cache{client: client}
}

func calendarKey(from, to string) string {
	return "calendar:" + from + ":" + to
}

func (c *Cache) GetCalendar(ctx context.Context, from, to string, out any) bool {
	if c == nil || c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, calendarKey(from, to)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("cache get error:", err)
		}
		return false
	}

	return json.Unmarshal(raw, out) == nil
}

func (c *Cache) SetCalendar(ctx context.Context, from, to string, value any) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, calendarKey(from, to), raw, calendarTTL).Err(); err != nil {
		log.Println("cache set error:", err)
	}
}

// InvalidateCalendar drops every cached calendar range. Called after
// any appointment mutation.
func (c *Cache) InvalidateCalendar(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, "calendar:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Println("cache del error:", err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Println("cache scan error:", err)
	}
}
