package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-percent-view/pkg/render"
	"go-percent-view/pkg/units"
)

func TestLoadAttributes(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/attrs.json", []byte(`{
		"circleBg": "#FF202020",
		"arcWidth": "8dp",
		"radius": "120px"
	}`), 0o644))

	attrs, err := LoadAttributes(fs, "/attrs.json")
	require.NoError(t, err)

	require.NotNil(t, attrs.CircleBg)
	assert.Equal(t, render.Color(0xFF202020), *attrs.CircleBg)
	require.NotNil(t, attrs.ArcWidth)
	assert.Equal(t, units.Dimension{Value: 8, Unit: units.Dp}, *attrs.ArcWidth)
	require.NotNil(t, attrs.Radius)
	assert.Equal(t, units.Dimension{Value: 120, Unit: units.Px}, *attrs.Radius)
	assert.Nil(t, attrs.ArcColor)
	assert.Nil(t, attrs.PercentTextSize)
}

func TestLoadAttributesErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad_color.json", []byte(`{"arcColor":"yellow"}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/bad_json.json", []byte(`{`), 0o644))

	_, err := LoadAttributes(fs, "/missing.json")
	assert.ErrorContains(t, err, "failed to read attributes file")

	_, err = LoadAttributes(fs, "/bad_color.json")
	assert.ErrorContains(t, err, "invalid color")

	_, err = LoadAttributes(fs, "/bad_json.json")
	assert.ErrorContains(t, err, "failed to unmarshal attributes")
}
