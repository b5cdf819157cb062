// pkg/render/face_cache.go
package render

import (
	"fmt"

	"github.com/spf13/afero"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	// DefaultTextSize — размер текста, если в Paint он не задан
	DefaultTextSize = 12.0
	fontDPI         = 72
)

// FaceCache хранит шрифт и созданные из него начертания по размеру в пикселях.
type FaceCache struct {
	font  *opentype.Font
	faces map[float32]font.Face
}

// NewFaceCache разбирает TTF/OTF-данные.
func NewFaceCache(data []byte) (*FaceCache, error) {
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FaceCache{font: tt, faces: make(map[float32]font.Face)}, nil
}

// DefaultFaceCache использует встроенный Go Regular.
func DefaultFaceCache() (*FaceCache, error) {
	return NewFaceCache(goregular.TTF)
}

// LoadFaceCache читает файл шрифта из fs.
func LoadFaceCache(fs afero.Fs, path string) (*FaceCache, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	return NewFaceCache(data)
}

// Face возвращает начертание заданного размера, создавая его при первом запросе.
func (c *FaceCache) Face(size float32) (font.Face, error) {
	if size <= 0 {
		size = DefaultTextSize
	}
	if face, ok := c.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face of size %v: %w", size, err)
	}
	c.faces[size] = face
	return face, nil
}

// Close освобождает все созданные начертания.
func (c *FaceCache) Close() error {
	for size, face := range c.faces {
		if err := face.Close(); err != nil {
			return fmt.Errorf("failed to close face of size %v: %w", size, err)
		}
		delete(c.faces, size)
	}
	return nil
}
