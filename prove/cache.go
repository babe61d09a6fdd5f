package prove

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sync"
	"time"
)

type cacheEntry struct {
	Result       Result
	CreatedAt    time.Time
	LastAccessed time.Time
}

// Cache wraps an Engine and remembers results by claim text, so files that
// are saved again without changes are not searched twice.
type Cache struct {
	engine  Engine
	entries map[string]cacheEntry
	mutex   sync.Mutex
	maxAge  time.Duration
	now     func() time.Time
}

var _ Engine = (*Cache)(nil)

// NewCache returns a Cache in front of engine. A zero maxAge keeps entries
// forever.
func NewCache(engine Engine, maxAge time.Duration) *Cache {
	return &Cache{
		engine:  engine,
		entries: make(map[string]cacheEntry),
		maxAge:  maxAge,
		now:     time.Now,
	}
}

func (c *Cache) Prove(filePath string) (Result, error) {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return Result{Filename: filePath}, err
	}
	res, err := c.ProveSource(source)
	if err != nil {
		return Result{Filename: filePath}, err
	}
	res.Filename = filePath
	return res, nil
}

func (c *Cache) ProveSource(source []byte) (Result, error) {
	key := contentHash(source)
	if res, ok := c.get(key); ok {
		return res, nil
	}

	res, err := c.engine.ProveSource(source)
	if err != nil {
		return res, err
	}
	c.set(key, res)
	return res, nil
}

// Len is the number of live entries.
func (c *Cache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.entries)
}

func (c *Cache) InvalidateAll() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = make(map[string]cacheEntry)
}

func (c *Cache) get(key string) (Result, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		return Result{}, false
	}
	if c.maxAge > 0 && c.now().Sub(entry.CreatedAt) > c.maxAge {
		delete(c.entries, key)
		return Result{}, false
	}

	entry.LastAccessed = c.now()
	c.entries[key] = entry
	return entry.Result, true
}

func (c *Cache) set(key string, res Result) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := c.now()
	c.entries[key] = cacheEntry{Result: res, CreatedAt: now, LastAccessed: now}
}

func contentHash(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}
