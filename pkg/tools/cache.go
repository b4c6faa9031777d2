package tools

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/trace"
)

// cacheEntry is one cached tool result on the LRU list.
type cacheEntry struct {
	key          string
	result       any
	expiresAt    time.Time
	invalidateOn []string
}

// Cache is the content-addressed tool result cache: entries keyed by
// tool name + hash of the arguments, expired by TTL, evicted LRU at the
// size bound, and droppable by invalidation event.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front = most recently used

	ttl        time.Duration
	maxEntries int
	keyMode    config.CacheKeyMode
	exclude    map[string]bool
	enabled    bool

	now func() time.Time
}

// NewCache builds a cache from the cascade's tool_caching config. A nil or
// disabled config yields a cache whose Get always misses.
func NewCache(cfg *config.ToolCachingConfig) *Cache {
	c := &Cache{
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		ttl:        config.DefaultToolCacheTTL,
		maxEntries: config.DefaultToolCacheSize,
		keyMode:    config.CacheKeyArgs,
		exclude:    make(map[string]bool),
		now:        time.Now,
	}
	if cfg == nil || !cfg.Enabled {
		return c
	}
	c.enabled = true
	if cfg.TTL != "" {
		if d, err := time.ParseDuration(cfg.TTL); err == nil && d > 0 {
			c.ttl = d
		} else {
			slog.Warn("Invalid tool cache TTL, using default", "ttl", cfg.TTL)
		}
	}
	if cfg.MaxEntries > 0 {
		c.maxEntries = cfg.MaxEntries
	}
	if cfg.Key.IsValid() {
		c.keyMode = cfg.Key
	}
	for _, name := range cfg.Exclude {
		c.exclude[name] = true
	}
	return c
}

// Cacheable reports whether results for the named tool are cached at all.
func (c *Cache) Cacheable(toolName string) bool {
	return c.enabled && !c.exclude[toolName]
}

// Key derives the cache key for one call. Under the query key mode only the
// "query" argument participates; otherwise the full canonicalized map does.
func (c *Cache) Key(toolName string, args map[string]any) string {
	var material any = args
	if c.keyMode == config.CacheKeyQuery {
		material = map[string]any{"query": args["query"]}
	}
	canonical, err := trace.CanonicalJSON(material)
	if err != nil {
		canonical = []byte(toolName)
	}
	sum := sha256.Sum256(canonical)
	return toolName + ":" + hex.EncodeToString(sum[:])
}

// Get returns the cached result for the call, if present and fresh.
func (c *Cache) Get(toolName string, args map[string]any) (any, bool) {
	if !c.Cacheable(toolName) {
		return nil, false
	}
	key := c.Key(toolName, args)

	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*cacheEntry)
	if c.now().After(entry.expiresAt) {
		c.removeLocked(elem)
		return nil, false
	}
	c.order.MoveToFront(elem)
	return entry.result, true
}

// Put stores one tool result. invalidateOn lists the events that drop this
// entry before its TTL (taken from the tool descriptor).
func (c *Cache) Put(toolName string, args map[string]any, result any, invalidateOn []string) {
	if !c.Cacheable(toolName) {
		return
	}
	key := c.Key(toolName, args)

	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.result = result
		entry.expiresAt = c.now().Add(c.ttl)
		entry.invalidateOn = invalidateOn
		c.order.MoveToFront(elem)
		return
	}

	elem := c.order.PushFront(&cacheEntry{
		key:          key,
		result:       result,
		expiresAt:    c.now().Add(c.ttl),
		invalidateOn: invalidateOn,
	})
	c.entries[key] = elem

	for len(c.entries) > c.maxEntries {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.removeLocked(oldest)
	}
}

// Invalidate drops every entry subscribed to the event.
func (c *Cache) Invalidate(event string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var doomed []*list.Element
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		entry := elem.Value.(*cacheEntry)
		for _, e := range entry.invalidateOn {
			if e == event {
				doomed = append(doomed, elem)
				break
			}
		}
	}
	for _, elem := range doomed {
		c.removeLocked(elem)
	}
	return len(doomed)
}

// Len returns the live entry count.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) removeLocked(elem *list.Element) {
	entry := elem.Value.(*cacheEntry)
	c.order.Remove(elem)
	delete(c.entries, entry.key)
}
