package live

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"deck/document"
	"deck/surface"
)

// textureTable loads images on first reference and keeps them for the whole
// session.
type textureTable struct {
	baseDir string
	items   map[string]*surface.Texture
	upload  func(data []byte) (*surface.Texture, error)
	log     *zap.Logger
}

func newTextureTable(baseDir string, log *zap.Logger) *textureTable {
	return &textureTable{
		baseDir: baseDir,
		items:   make(map[string]*surface.Texture),
		upload:  surface.LoadTexture,
		log:     log,
	}
}

func (t *textureTable) get(key string) (*surface.Texture, error) {
	if tex, ok := t.items[key]; ok {
		return tex, nil
	}

	path := document.ResolveKey(t.baseDir, key)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read image '%s' (%s): %w", key, path, err)
	}
	tex, err := t.upload(data)
	if err != nil {
		return nil, fmt.Errorf("unable to load image '%s' (%s): %w", key, path, err)
	}
	t.items[key] = tex
	t.log.Debug("Image loaded", zap.String("key", key), zap.String("path", path),
		zap.Float64("width", tex.Size.X), zap.Float64("height", tex.Size.Y))
	return tex, nil
}
