package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"ordering-backend/internal/domain"
)

const previewCacheKey = "restaurants:preview"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// ReviewMarkerKey names the fast-path marker set once an order is reviewed.
func (c *RedisCache) ReviewMarkerKey(orderID int) string {
	return "review:order:" + strconv.Itoa(orderID)
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *RedisCache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", c.TTL).Err()
}

func (c *RedisCache) DeleteMarker(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

func (c *RedisCache) GetPreview(ctx context.Context) ([]domain.RestaurantPreview, bool) {
	payload, err := c.Client.Get(ctx, previewCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var previews []domain.RestaurantPreview
	if err := json.Unmarshal(payload, &previews); err != nil {
		return nil, false
	}
	return previews, true
}

func (c *RedisCache) SetPreview(ctx context.Context, previews []domain.RestaurantPreview) error {
	payload, err := json.Marshal(previews)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, previewCacheKey, payload, c.TTL).Err()
}

func (c *RedisCache) InvalidatePreview(ctx context.Context) error {
	return c.Client.Del(ctx, previewCacheKey).Err()
}

func salesKey(restaurantID int, day string) string {
	return "sales:daily:" + day + ":" + strconv.Itoa(restaurantID)
}

// AddDailySales accumulates a completed order's total into the per-day
// counter the sales consumer keeps warm.
func (c *RedisCache) AddDailySales(ctx context.Context, restaurantID int, day string, total int) error {
	key := salesKey(restaurantID, day)
	if err := c.Client.IncrBy(ctx, key, int64(total)).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, 40*24*time.Hour).Err()
}

// DailySalesRange reads the counters for every day in [from, before). The
// second return is false when the cache cannot answer the whole range, in
// which case the caller falls back to SQL.
func (c *RedisCache) DailySalesRange(ctx context.Context, restaurantID int, from, before time.Time) (map[string]int, bool) {
	keys := []string{}
	days := []string{}
	for day := from; day.Before(before); day = day.AddDate(0, 0, 1) {
		d := day.Format("2006-01-02")
		days = append(days, d)
		keys = append(keys, salesKey(restaurantID, d))
	}
	if len(keys) == 0 {
		return map[string]int{}, true
	}

	values, err := c.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, false
	}

	totals := map[string]int{}
	hit := false
	for i, v := range values {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		total, err := strconv.Atoi(s)
		if err != nil {
			return nil, false
		}
		totals[days[i]] = total
		hit = true
	}
	// An all-miss range is indistinguishable from "no sales"; let SQL decide.
	return totals, hit
}
