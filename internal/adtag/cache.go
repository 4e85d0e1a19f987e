package adtag

import (
	"strings"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCacheSize = 100

// Cache holds pasted ad tags for preview pages. Bounded LRU: old previews
// silently expire, the test page then 404s.
type Cache struct {
	tags *lru.Cache[string, string]
}

func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Cache{tags: c}, nil
}

// Put stores an ad tag and returns its preview id.
func (c *Cache) Put(html string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	c.tags.Add(id, html)
	return id
}

func (c *Cache) Get(id string) (string, bool) {
	return c.tags.Get(id)
}
