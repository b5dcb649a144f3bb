package kestrel

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureSource resolves texture names used by surfaces.
type TextureSource interface {
	// TextureSize returns the pixel size of the named texture, or false if
	// it is not loaded.
	TextureSize(name string) (PixelSize, bool)
	// Texture returns the named image, or nil.
	Texture(name string) *ebiten.Image
}

// TextureStore is a TextureSource safe for concurrent use. Loaders running
// on other goroutines populate an image fully and then Publish it; frames
// never observe a partially loaded texture.
type TextureStore struct {
	mu     sync.RWMutex
	images map[string]*ebiten.Image
}

// NewTextureStore creates an empty store.
func NewTextureStore() *TextureStore {
	return &TextureStore{images: make(map[string]*ebiten.Image)}
}

// Publish makes img available under name, replacing any previous image.
// A nil img removes the entry.
func (s *TextureStore) Publish(name string, img *ebiten.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if img == nil {
		delete(s.images, name)
		return
	}
	s.images[name] = img
}

// Texture returns the named image, or nil.
func (s *TextureStore) Texture(name string) *ebiten.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.images[name]
}

// TextureSize returns the pixel size of the named image.
func (s *TextureStore) TextureSize(name string) (PixelSize, bool) {
	img := s.Texture(name)
	if img == nil {
		return PixelSize{}, false
	}
	b := img.Bounds()
	return PixelSize{b.Dx(), b.Dy()}, true
}

// Len returns the number of published textures.
func (s *TextureStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}
