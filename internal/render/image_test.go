package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trenchworks/lagoon-engine/internal/dig"
	"github.com/trenchworks/lagoon-engine/internal/geometry"
)

func squareResult(t *testing.T) *geometry.Result {
	t.Helper()
	plan, err := dig.ParsePlan(strings.NewReader(
		"R 4 (#70c710)\nD 4 (#0dc571)\nL 4 (#5713f0)\nU 4 (#d2c081)"))
	require.NoError(t, err)
	result, err := geometry.Survey(plan)
	require.NoError(t, err)
	return result
}

func TestImage_CellColors(t *testing.T) {
	result := squareResult(t)
	img := Image(result.Grid, DefaultPalette)

	require.Equal(t, 5, img.Bounds().Dx())
	require.Equal(t, 5, img.Bounds().Dy())

	// Top edge keeps the color of the instruction that dug it.
	r, g, b, _ := img.At(2, 0).RGBA()
	assert.Equal(t, uint32(0x70), r>>8)
	assert.Equal(t, uint32(0xC7), g>>8)
	assert.Equal(t, uint32(0x10), b>>8)

	// Center is interior, painted with the fill color.
	r, g, b, _ = img.At(2, 2).RGBA()
	assert.Equal(t, uint32(0xFF), r>>8)
	assert.Equal(t, uint32(0x00), g>>8)
	assert.Equal(t, uint32(0x00), b>>8)
}

func TestImage_BackgroundPalette(t *testing.T) {
	grid := geometry.NewGrid(3, 3)
	img := Image(grid, DefaultPalette)
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xFF), r>>8)
	assert.Equal(t, uint32(0xFF), g>>8)
	assert.Equal(t, uint32(0xFF), b>>8)
}

func TestScale_NearestNeighbor(t *testing.T) {
	result := squareResult(t)
	img := Scale(Image(result.Grid, DefaultPalette), 3)

	assert.Equal(t, 15, img.Bounds().Dx())
	assert.Equal(t, 15, img.Bounds().Dy())

	// Every pixel of an upscaled boundary cell keeps the exact color.
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			r, g, b, _ := img.At(6+dx, dy).RGBA()
			assert.Equal(t, uint32(0x70), r>>8)
			assert.Equal(t, uint32(0xC7), g>>8)
			assert.Equal(t, uint32(0x10), b>>8)
		}
	}
}

func TestScale_FactorOfOneIsIdentity(t *testing.T) {
	result := squareResult(t)
	img := Image(result.Grid, DefaultPalette)
	assert.Same(t, img, Scale(img, 1))
}

func TestSavePNG_RoundTrip(t *testing.T) {
	result := squareResult(t)
	path := filepath.Join(t.TempDir(), "lagoon.png")
	require.NoError(t, SavePNG(path, Image(result.Grid, DefaultPalette)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 5, decoded.Bounds().Dx())
	assert.Equal(t, 5, decoded.Bounds().Dy())
}
