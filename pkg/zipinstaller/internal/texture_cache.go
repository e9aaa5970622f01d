package internal

import (
	"fmt"
	"image"
	"image/draw"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/icons"
)

const defaultMaxCacheSize = 16

// lru keeps at most maxSize values, evicting the least recently used.
type lru[V any] struct {
	values  map[string]V
	order   []string // tracks insertion order for LRU eviction
	maxSize int
	evict   func(V)
}

func newLRU[V any](maxSize int, evict func(V)) *lru[V] {
	return &lru[V]{
		values:  make(map[string]V),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		evict:   evict,
	}
}

func (c *lru[V]) get(key string) (V, bool) {
	v, ok := c.values[key]
	if ok {
		c.moveToEnd(key)
	}
	return v, ok
}

func (c *lru[V]) set(key string, v V) {
	if _, exists := c.values[key]; exists {
		c.values[key] = v
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.values[key] = v
	c.order = append(c.order, key)
}

func (c *lru[V]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *lru[V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if v, exists := c.values[oldest]; exists {
		if c.evict != nil {
			c.evict(v)
		}
		delete(c.values, oldest)
	}
}

func (c *lru[V]) clear() {
	for _, v := range c.values {
		if c.evict != nil {
			c.evict(v)
		}
	}
	c.values = make(map[string]V)
	c.order = c.order[:0]
}

// TextureCache holds textures by key and destroys evicted ones.
type TextureCache struct {
	cache *lru[*sdl.Texture]
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{cache: newLRU(maxSize, func(t *sdl.Texture) { t.Destroy() })}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	t, _ := c.cache.get(key)
	return t
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	c.cache.set(key, texture)
}

func (c *TextureCache) Destroy() {
	c.cache.clear()
}

var iconTextures *TextureCache

// IconTexture returns a texture of the named icon at size x size pixels in
// color, rendering and caching it on first use.
func IconTexture(renderer *sdl.Renderer, name string, size int32, color sdl.Color) (*sdl.Texture, error) {
	if iconTextures == nil {
		iconTextures = NewTextureCacheWithSize(32)
	}

	key := fmt.Sprintf("%s/%d/%02x%02x%02x%02x", name, size, color.R, color.G, color.B, color.A)
	if t := iconTextures.Get(key); t != nil {
		return t, nil
	}

	rgba, err := icons.Render(name, int(size), NRGBA(color))
	if err != nil {
		return nil, err
	}

	// SDL expects straight alpha.
	nrgba := image.NewNRGBA(rgba.Bounds())
	draw.Draw(nrgba, nrgba.Bounds(), rgba, image.Point{}, draw.Src)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&nrgba.Pix[0]),
		size, size, 32, int32(nrgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("icon surface %s: %w", name, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("icon texture %s: %w", name, err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	iconTextures.Set(key, texture)
	return texture, nil
}

// RenderIcon draws the named icon with its top-left corner at x, y.
func RenderIcon(renderer *sdl.Renderer, name string, x, y, size int32, color sdl.Color) {
	texture, err := IconTexture(renderer, name, size, color)
	if err != nil {
		GetInternalLogger().Debug("Failed to render icon", "icon", name, "error", err)
		return
	}
	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: size, H: size})
}

func closeIconTextures() {
	if iconTextures != nil {
		iconTextures.Destroy()
		iconTextures = nil
	}
}
