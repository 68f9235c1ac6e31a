package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client caches derived menu and report views so repeated reads between
// writes skip the database joins.
type Client struct {
	rdb *redis.Client
}

var ErrCacheMiss = fmt.Errorf("cache miss")

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Menu snapshot caching

func (c *Client) SetMenuSnapshot(value interface{}, ttl time.Duration) error {
	return c.set("menu:visible", value, ttl)
}

func (c *Client) GetMenuSnapshot(dest interface{}) error {
	return c.get("menu:visible", dest)
}

func (c *Client) DeleteMenuSnapshot() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "menu:visible").Err()
}

// Serve-date list caching

func (c *Client) SetServeDates(dates []string, ttl time.Duration) error {
	return c.set("serve_dates", dates, ttl)
}

func (c *Client) GetServeDates() ([]string, error) {
	var dates []string
	if err := c.get("serve_dates", &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

// Shift report caching

func (c *Client) SetShiftReport(serveDate string, value interface{}, ttl time.Duration) error {
	return c.set("shift_report:"+serveDate, value, ttl)
}

func (c *Client) GetShiftReport(serveDate string, dest interface{}) error {
	return c.get("shift_report:"+serveDate, dest)
}

// InvalidateReports drops every cached derived view; called after any menu
// or order write since all three views derive from the same rows.
func (c *Client) InvalidateReports() error {
	ctx := context.Background()
	keys := []string{"menu:visible", "serve_dates"}
	iter := c.rdb.Scan(ctx, 0, "shift_report:*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan report keys: %w", err)
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *Client) set(key string, value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return c.rdb.Set(ctx, key, jsonData, ttl).Err()
}

func (c *Client) get(key string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get cached value: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
