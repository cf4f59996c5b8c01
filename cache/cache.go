package cache

import (
	"sync"
	"time"
)

type Item struct {
	data      []byte
	expiredAt time.Time
}

type Cache struct {
	store map[string]Item
	lock  *sync.RWMutex
	now   func() time.Time
}

func New() *Cache {
	return &Cache{
		store: map[string]Item{},
		lock:  &sync.RWMutex{},
		now:   time.Now,
	}
}

// NewWithClock is used by tests to control entry expiration.
func NewWithClock(now func() time.Time) *Cache {
	cache := New()
	cache.now = now
	return cache
}

func (c *Cache) Get(key string) ([]byte, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	item, ok := c.store[key]
	if !ok {
		return nil, false
	}

	if c.now().After(item.expiredAt) {
		return nil, false
	}

	return item.data, true
}

func (c *Cache) Set(key string, data []byte, lifeTime time.Duration) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.store[key] = Item{
		data:      data,
		expiredAt: c.now().Add(lifeTime),
	}
}

func (c *Cache) Delete(key string) {
	c.lock.Lock()
	defer c.lock.Unlock()

	delete(c.store, key)
}
