package compliance

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// 缓存键前缀，Flush 时用来圈定本应用的键
const redisKeyPrefix = "halaldesk:"

// RedisCache 基于 Redis 的缓存实现
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisCache 创建 Redis 缓存
func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

// Get 读取缓存
func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, redisKeyPrefix+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set 写入缓存
func (r *RedisCache) Set(key string, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, redisKeyPrefix+key, value, ttl).Err()
}

// Flush 删除本应用前缀下的所有键
func (r *RedisCache) Flush() error {
	keys, err := r.client.Keys(r.ctx, redisKeyPrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(r.ctx, keys...).Err()
}
