package tray

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	ico "github.com/sergeymakinen/go-ico"
)

const iconSize = 64

type segment struct{ x0, y0, x1, y1 float64 }

// Eyelashes above and below the eye.
var lashes = []segment{
	{8, 10, 16, 16},
	{28, 8, 32, 16},
	{48, 10, 56, 16},
	{8, 54, 16, 48},
	{28, 56, 32, 48},
	{48, 54, 56, 48},
}

// RenderIcon draws the tray glyph: an outlined eye with a filled pupil and
// three lashes top and bottom, black on transparent.
func RenderIcon() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	ink := color.NRGBA{A: 0xff}

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if eyeOutline(px, py) || pupil(px, py) || onLash(px, py) {
				img.SetNRGBA(x, y, ink)
			}
		}
	}
	return img
}

// IconData returns the icon encoded as ICO, the format systray expects on
// Windows.
func IconData() ([]byte, error) {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, RenderIcon()); err != nil {
		return nil, fmt.Errorf("encode tray icon: %w", err)
	}
	return buf.Bytes(), nil
}

// eyeOutline is a 3px ring inside the ellipse bounded by (8,16)-(56,48).
func eyeOutline(x, y float64) bool {
	return inEllipse(x, y, 32, 32, 24, 16) && !inEllipse(x, y, 32, 32, 21, 13)
}

func pupil(x, y float64) bool {
	return inEllipse(x, y, 32, 32, 8, 8)
}

func onLash(x, y float64) bool {
	for _, s := range lashes {
		if distToSegment(x, y, s) <= 1 {
			return true
		}
	}
	return false
}

func inEllipse(x, y, cx, cy, rx, ry float64) bool {
	dx, dy := (x-cx)/rx, (y-cy)/ry
	return dx*dx+dy*dy <= 1
}

func distToSegment(x, y float64, s segment) float64 {
	vx, vy := s.x1-s.x0, s.y1-s.y0
	t := ((x-s.x0)*vx + (y-s.y0)*vy) / (vx*vx + vy*vy)
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(x-(s.x0+t*vx), y-(s.y0+t*vy))
}
