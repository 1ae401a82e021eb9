// Package textures produces and caches every raster the installation
// needs: the petal sprite sampled by the particle shader, the bark tile
// for the frame material and per-photo placeholder cards. Everything is
// generated procedurally on the CPU; GPU upload belongs to the renderer.
package textures

import (
	"fmt"
	"image"
	"sync"
	"time"
)

const (
	petalSize       = 128
	barkSize        = 256
	placeholderSize = 256
)

// Manager caches rasters by name so each one is generated at most once.
// Lookups after the first are read-locked map hits, cheap enough for the
// render loop to call every frame.
type Manager struct {
	mu     sync.RWMutex
	images map[string]*image.RGBA
	seed   int64
}

// NewManager creates a manager. Seed 0 draws bark grain from time entropy;
// any other value reproduces the same rasters.
func NewManager(seed int64) *Manager {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Manager{
		images: make(map[string]*image.RGBA),
		seed:   seed,
	}
}

// Petal returns the blossom sprite raster.
func (m *Manager) Petal() *image.RGBA {
	return m.cached("petal", func() *image.RGBA {
		return GeneratePetal(petalSize)
	})
}

// Bark returns the tiling bark raster used by the frame material.
func (m *Manager) Bark() *image.RGBA {
	return m.cached("bark", func() *image.RGBA {
		return GenerateBark(barkSize, barkSize, m.seed)
	})
}

// Placeholder returns the stand-in card for photo entity index, tinted per
// index so entities stay distinguishable before their images load.
func (m *Manager) Placeholder(index int) *image.RGBA {
	if index < 0 {
		index = 0
	}
	return m.cached(fmt.Sprintf("placeholder/%03d", index), func() *image.RGBA {
		return GeneratePlaceholder(placeholderSize, placeholderSize, index)
	})
}

func (m *Manager) cached(key string, generate func() *image.RGBA) *image.RGBA {
	m.mu.RLock()
	if img, ok := m.images[key]; ok {
		m.mu.RUnlock()
		return img
	}
	m.mu.RUnlock()

	img := generate()

	m.mu.Lock()
	// Another goroutine may have raced the generation; keep the first.
	if prior, ok := m.images[key]; ok {
		m.mu.Unlock()
		return prior
	}
	m.images[key] = img
	m.mu.Unlock()
	return img
}
