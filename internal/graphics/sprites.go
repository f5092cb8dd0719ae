package graphics

import (
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteManager loads sprite images by key on first use. Keys without an
// image on disk get a flat white placeholder that is tinted at draw time.
type SpriteManager struct {
	dir         string
	sprites     map[string]*ebiten.Image
	placeholder map[string]bool
}

func NewSpriteManager(dir string) *SpriteManager {
	return &SpriteManager{
		dir:         dir,
		sprites:     make(map[string]*ebiten.Image),
		placeholder: make(map[string]bool),
	}
}

// searchPaths lists where a sprite for key may live, most specific first.
func (sm *SpriteManager) searchPaths(key string) []string {
	return []string{
		filepath.Join(sm.dir, "mobs", key+".png"),
		filepath.Join(sm.dir, "spells", key+".png"),
		filepath.Join(sm.dir, key+".png"),
	}
}

func (sm *SpriteManager) createPlaceholder(key string) *ebiten.Image {
	size := 16
	if key == "" {
		size = 8
	}
	img := ebiten.NewImage(size, size)
	img.Fill(color.White)
	return img
}

// GetSprite returns the image for key and whether it is a placeholder.
func (sm *SpriteManager) GetSprite(key string) (*ebiten.Image, bool) {
	if sprite, exists := sm.sprites[key]; exists {
		return sprite, sm.placeholder[key]
	}

	if key != "" {
		if img := sm.load(key); img != nil {
			sm.sprites[key] = img
			return img, false
		}
	}

	img := sm.createPlaceholder(key)
	sm.sprites[key] = img
	sm.placeholder[key] = true
	return img, true
}

func (sm *SpriteManager) load(key string) *ebiten.Image {
	for _, path := range sm.searchPaths(key) {
		file, err := os.Open(path)
		if err != nil {
			continue
		}
		img, _, err := image.Decode(file)
		file.Close()
		if err == nil {
			return ebiten.NewImageFromImage(img)
		}
	}
	return nil
}
