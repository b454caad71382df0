package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 64

// TextureCache is a small LRU cache for rendered textures, keyed by string.
// List rows and icons are rendered once and looked up per frame.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // tracks recency for LRU eviction
	maxSize  int

	// destroy releases an evicted texture. Overridable in tests, where no
	// SDL renderer exists.
	destroy func(*sdl.Texture)
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
		destroy:  func(t *sdl.Texture) { t.Destroy() },
	}
}

// Get returns the cached texture for key, marking it most recently used.
func (c *TextureCache) Get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture
	}
	return nil
}

// Set stores a texture under key, evicting the least recently used entry
// when the cache is full.
func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if old, exists := c.textures[key]; exists {
		if old != nil && old != texture {
			c.destroy(old)
		}
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// Remove drops and destroys the entry for key, if present.
func (c *TextureCache) Remove(key string) {
	texture, exists := c.textures[key]
	if !exists {
		return
	}
	delete(c.textures, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	if texture != nil {
		c.destroy(texture)
	}
}

// Len returns the number of cached entries.
func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		if texture != nil {
			c.destroy(texture)
		}
		delete(c.textures, oldest)
	}
}

// Destroy releases every cached texture and empties the cache.
func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		if texture != nil {
			c.destroy(texture)
		}
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
