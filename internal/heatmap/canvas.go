package heatmap

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/drivergigspro/demandmap/internal/models"
)

var (
	colorBackground = color.RGBA{0xf8, 0xfa, 0xfc, 0xff}
	colorGrid       = color.RGBA{0xe2, 0xe8, 0xf0, 0xff}
	colorRoad       = color.RGBA{0x64, 0x74, 0x8b, 0xff}
	colorHigh       = color.RGBA{0xef, 0x44, 0x44, 0xff}
	colorMedium     = color.RGBA{0xf9, 0x73, 0x16, 0xff}
	colorLow        = color.RGBA{0x22, 0xc5, 0x5e, 0xff}
	colorUser       = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
	colorUserRing   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorSelected   = color.RGBA{0x1e, 0x40, 0xaf, 0xff}
	colorLabel      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorUserLabel  = color.RGBA{0x1e, 0x40, 0xaf, 0xff}
)

func tierColor(t models.Tier) color.RGBA {
	switch t {
	case models.TierHigh:
		return colorHigh
	case models.TierMedium:
		return colorMedium
	default:
		return colorLow
	}
}

// NewCanvas allocates the fixed-size raster every render pass paints into.
func NewCanvas() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, models.CanvasWidth, models.CanvasHeight))
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// blendPixel composites c over the existing pixel (source-over).
func blendPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return
	}
	if c.A == 0xff {
		img.SetRGBA(x, y, c)
		return
	}
	dst := img.RGBAAt(x, y)
	a := uint32(c.A)
	ia := 255 - a
	img.SetRGBA(x, y, color.RGBA{
		R: uint8((uint32(c.R)*a + uint32(dst.R)*ia) / 255),
		G: uint8((uint32(c.G)*a + uint32(dst.G)*ia) / 255),
		B: uint8((uint32(c.B)*a + uint32(dst.B)*ia) / 255),
		A: 0xff,
	})
}

func fillCanvas(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// fillCircle paints a solid disc, alpha-blended over the canvas.
func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	minX, maxX := int(math.Floor(cx-r)), int(math.Ceil(cx+r))
	minY, maxY := int(math.Floor(cy-r)), int(math.Ceil(cy+r))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if math.Hypot(float64(x)-cx, float64(y)-cy) <= r {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// strokeCircle paints a ring of the given stroke width centred on radius r.
func strokeCircle(img *image.RGBA, cx, cy, r, width float64, c color.RGBA) {
	half := width / 2
	minX, maxX := int(math.Floor(cx-r-half)), int(math.Ceil(cx+r+half))
	minY, maxY := int(math.Floor(cy-r-half)), int(math.Ceil(cy+r+half))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			if math.Abs(d-r) <= half {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// fillRadialGlow paints the soft halo: full alpha at the centre fading to
// transparent at the outer radius.
func fillRadialGlow(img *image.RGBA, cx, cy, outer float64, c color.RGBA, maxAlpha uint8) {
	minX, maxX := int(math.Floor(cx-outer)), int(math.Ceil(cx+outer))
	minY, maxY := int(math.Floor(cy-outer)), int(math.Ceil(cy+outer))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			if d > outer {
				continue
			}
			a := uint8(float64(maxAlpha) * (1 - d/outer))
			if a == 0 {
				continue
			}
			blendPixel(img, x, y, withAlpha(c, a))
		}
	}
}

func drawHLine(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		blendPixel(img, x, y, c)
	}
}

func drawVLine(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		blendPixel(img, x, y, c)
	}
}

// drawDashedHLine draws a horizontal line with a 5 px on / 5 px off pattern.
func drawDashedHLine(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		if ((x-x0)/5)%2 == 0 {
			blendPixel(img, x, y, c)
			blendPixel(img, x, y+1, c)
		}
	}
}

func drawDashedVLine(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		if ((y-y0)/5)%2 == 0 {
			blendPixel(img, x, y, c)
			blendPixel(img, x+1, y, c)
		}
	}
}

// strokeDashedCircle walks the circumference, toggling the dash pattern on
// arc length.
func strokeDashedCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	circumference := 2 * math.Pi * r
	steps := int(circumference * 2)
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		arc := float64(i) / float64(steps) * circumference
		if (int(arc)/5)%2 != 0 {
			continue
		}
		theta := float64(i) / float64(steps) * 2 * math.Pi
		x := cx + r*math.Cos(theta)
		y := cy + r*math.Sin(theta)
		blendPixel(img, int(x), int(y), c)
		blendPixel(img, int(x)+1, int(y), c)
	}
}

// drawCenteredText paints a label centred on (cx, cy) using the fixed
// bitmap face.
func drawCenteredText(img *image.RGBA, cx, cy float64, text string, c color.RGBA) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(cx*64) - width/2,
			Y: fixed.Int26_6((cy + float64(face.Ascent) - float64(face.Height)/2) * 64),
		},
	}
	d.DrawString(text)
}
