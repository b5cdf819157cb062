// internal/config/attributes.go
package config

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	"go-percent-view/pkg/render"
	"go-percent-view/pkg/units"
)

// Attributes — необязательные атрибуты стиля виджета. Отсутствующее поле
// означает значение по умолчанию.
type Attributes struct {
	CircleBg        *render.Color    `json:"circleBg,omitempty"`
	ArcColor        *render.Color    `json:"arcColor,omitempty"`
	ArcWidth        *units.Dimension `json:"arcWidth,omitempty"`
	PercentTextSize *units.Dimension `json:"percentTextSize,omitempty"`
	Radius          *units.Dimension `json:"radius,omitempty"`
}

// LoadAttributes reads a JSON attribute file.
func LoadAttributes(fs afero.Fs, path string) (*Attributes, error) {
	file, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read attributes file: %w", err)
	}

	var attrs Attributes
	if err := json.Unmarshal(file, &attrs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attributes: %w", err)
	}
	return &attrs, nil
}
