package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/trenchworks/lagoon-engine/internal/dig"
	"github.com/trenchworks/lagoon-engine/internal/geometry"
)

// Palette maps non-boundary cell states to output colors. Boundary cells
// always keep the color of the segment that dug them.
type Palette struct {
	Interior   dig.Color
	Background dig.Color
}

// DefaultPalette fills the lagoon red on a white background.
var DefaultPalette = Palette{
	Interior:   dig.ColorFromUint32(0xFF0000),
	Background: dig.ColorFromUint32(0xFFFFFF),
}

func rgba(c dig.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Image renders a classified grid at one pixel per cell.
func Image(grid *geometry.Grid, palette Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			var px color.RGBA
			switch grid.State(x, y) {
			case geometry.Boundary:
				px = rgba(grid.Color(x, y))
			case geometry.Interior:
				px = rgba(palette.Interior)
			default:
				px = rgba(palette.Background)
			}
			img.SetRGBA(x, y, px)
		}
	}
	return img
}

// Scale upscales img by an integer factor with nearest-neighbor sampling,
// keeping cell edges crisp. A factor below 2 returns img unchanged.
func Scale(img *image.RGBA, factor int) *image.RGBA {
	if factor < 2 {
		return img
	}
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}

// SavePNG writes img to path as a PNG file.
func SavePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}
