// Package style holds the look-and-feel: the item cell renderer, the
// list-view cell renderers, the sidebar tab renderers, and all the
// colors, fonts, and image assets they share.
package style

import (
	"image/color"
	"math"
)

const pi = math.Pi

// cssColor converts a "#rrggbb" string to a color. Only used for
// package-level constants; bad input is a programming error.
func cssColor(css string) color.NRGBA {
	hex := func(s string) uint8 {
		var v uint8
		for i := 0; i < 2; i++ {
			c := s[i]
			v <<= 4
			switch {
			case c >= '0' && c <= '9':
				v |= c - '0'
			case c >= 'a' && c <= 'f':
				v |= c - 'a' + 10
			case c >= 'A' && c <= 'F':
				v |= c - 'A' + 10
			default:
				panic("style: bad css color " + s)
			}
		}
		return v
	}
	return color.NRGBA{R: hex(css[1:3]), G: hex(css[3:5]), B: hex(css[5:7]), A: 0xff}
}

// rgb builds an opaque color from 0..1 channel fractions.
func rgb(r, g, b float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: 0xff,
	}
}

// fontScaleFromPoints converts a point size to a scale relative to the
// 13pt default face.
func fontScaleFromPoints(points float64) float64 {
	return points / 13.0
}

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.NRGBA{A: 0xff}

	// AvailableColor marks newly available items in the status column
	// and in tab count bubbles.
	AvailableColor = rgb(38/255.0, 140/255.0, 250/255.0)
	// UnplayedColor marks downloaded-but-unplayed items.
	UnplayedColor = rgb(0.31, 0.75, 0.12)
	// DownloadingColor marks in-flight downloads.
	DownloadingColor = rgb(0.90, 0.45, 0.08)
	// ExpiringTextColor is the status-column color for expiring items.
	ExpiringTextColor = cssColor("#7b949d")

	// TabListBackgroundColor is the sidebar background.
	TabListBackgroundColor = rgb(221/255.0, 227/255.0, 234/255.0)

	blinkColor = cssColor("#fffb83")
)
