package compliance

import (
	"sync"
	"time"
)

// Cache 合规视图缓存接口
// 演示默认用内存实现；配置了 Redis 地址时切换到 RedisCache
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
	// Flush 清空缓存（证书数据发生变化时调用）
	Flush() error
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache 进程内缓存
type MemoryCache struct {
	mu    sync.Mutex
	items map[string]memoryEntry
}

// NewMemoryCache 创建内存缓存
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items: make(map[string]memoryEntry),
	}
}

// Get 读取缓存
func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.items, key)
		return "", false
	}
	return e.value, true
}

// Set 写入缓存
func (c *MemoryCache) Set(key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Flush 清空缓存
func (c *MemoryCache) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]memoryEntry)
	return nil
}
