package domquery

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheKey identifies a compiled query.
type cacheKey struct {
	text string
	kind Kind
}

// queryCache memoizes compiled queries. Concurrent compilation of the same
// key may happen; put returns the query stored first, so all callers end up
// sharing one instance.
type queryCache interface {
	get(key cacheKey) (*Query, bool)
	put(key cacheKey, q *Query) *Query
	size() int
}

// mapCache is an unbounded cache. Entries are never evicted.
type mapCache struct {
	sync.RWMutex
	queries map[cacheKey]*Query
}

func newMapCache() *mapCache {
	return &mapCache{queries: make(map[cacheKey]*Query)}
}

func (c *mapCache) get(key cacheKey) (*Query, bool) {
	c.RLock()
	defer c.RUnlock()
	q, ok := c.queries[key]
	return q, ok
}

func (c *mapCache) put(key cacheKey, q *Query) *Query {
	c.Lock()
	defer c.Unlock()
	if prev, ok := c.queries[key]; ok {
		return prev
	}
	c.queries[key] = q
	return q
}

func (c *mapCache) size() int {
	c.RLock()
	defer c.RUnlock()
	return len(c.queries)
}

// lruCache holds at most a fixed number of queries, evicting the least
// recently used one.
type lruCache struct {
	queries *lru.Cache[cacheKey, *Query]
}

func newLRUCache(n int) (*lruCache, error) {
	c, err := lru.New[cacheKey, *Query](n)
	if err != nil {
		return nil, err
	}
	return &lruCache{queries: c}, nil
}

func (c *lruCache) get(key cacheKey) (*Query, bool) {
	return c.queries.Get(key)
}

func (c *lruCache) put(key cacheKey, q *Query) *Query {
	if prev, found, _ := c.queries.PeekOrAdd(key, q); found {
		return prev
	}
	return q
}

func (c *lruCache) size() int {
	return c.queries.Len()
}
