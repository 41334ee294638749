// Package indicator draws the circular profile-completeness gauge as SVG.
package indicator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tartampluch/go-profile/internal/config"
)

// Size describes the gauge circle. Diameter is the outer bounding box,
// i.e. twice the radius plus the track (snake) width.
type Size struct {
	Radius     float64
	Diameter   float64
	SnakeWidth float64
}

// DefaultSize is used when neither radius nor snake width is requested.
var DefaultSize = Size{
	Radius:     config.IndicatorDefaultRadius,
	Diameter:   config.IndicatorDefaultDiameter,
	SnakeWidth: config.IndicatorDefaultSnakeWidth,
}

// Indicator is the input of Render. Zero Radius or SnakeWidth means default.
type Indicator struct {
	Value      int // percentage, clamped into [0, 100]
	Radius     float64
	SnakeWidth float64
	Reverse    bool // mirror the track horizontally
}

// ResolveSize completes a partially specified size.
// With only a radius the default track width is kept; with only a track
// width the default diameter is kept and the radius shrinks to fit.
func ResolveSize(radius, snakeWidth float64) Size {
	size := DefaultSize
	switch {
	case radius > 0 && snakeWidth > 0:
		size = Size{Radius: radius, Diameter: radius*2 + snakeWidth, SnakeWidth: snakeWidth}
	case radius > 0:
		size.Radius = radius
		size.Diameter = radius*2 + config.IndicatorDefaultSnakeWidth
	case snakeWidth > 0:
		size.Radius = (config.IndicatorDefaultDiameter - snakeWidth) / 2
		size.SnakeWidth = snakeWidth
	}
	return size
}

// Circumference returns the track length of a full circle.
func Circumference(size Size) float64 {
	return 2 * math.Pi * size.Radius
}

// TrackLength returns the filled part of the circumference for a percentage.
func TrackLength(value int, circumference float64) float64 {
	return circumference * float64(clampValue(value)) / config.IndicatorMaxValue
}

// PathD returns the SVG path drawing the full circle as two half arcs,
// starting on the left edge of the track.
func PathD(size Size) string {
	half := size.Diameter / 2
	span := size.Diameter - size.SnakeWidth
	r := num(size.Radius)
	return fmt.Sprintf("M %s, %s m -%s, 0 a %s,%s 0 1,0 %s,0 a %s,%s 0 1,0 -%s,0",
		num(half+size.SnakeWidth/2), num(half),
		num(half),
		r, r, num(span),
		r, r, num(span),
	)
}

// Label returns the centered caption. A zero value has no caption.
func Label(value int) string {
	value = clampValue(value)
	if value == 0 {
		return ""
	}
	return fmt.Sprintf(config.IndicatorLabelFormat, value)
}

// Render produces a standalone SVG document for the gauge.
func Render(ind Indicator) []byte {
	size := ResolveSize(ind.Radius, ind.SnakeWidth)
	circ := Circumference(size)
	track := TrackLength(ind.Value, circ)
	d := num(size.Diameter)
	c := num(size.Diameter / 2)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`, d, d, d, d)
	fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
		c, c, num(size.Radius), config.ColorTrackBackground, num(size.SnakeWidth))

	transform := ""
	if ind.Reverse {
		transform = fmt.Sprintf(` transform="translate(%s,0) scale(-1,1)"`, d)
	}
	fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-dasharray="%s %s"%s/>`,
		PathD(size), config.ColorTrack, num(size.SnakeWidth), num(track), num(circ), transform)

	if label := Label(ind.Value); label != "" {
		fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="%s" fill="%s">%s</text>`,
			c, c, num(math.Round(size.Radius * 0.6)), config.ColorLabel, label)
	}
	b.WriteString(`</svg>`)
	return []byte(b.String())
}

func clampValue(v int) int {
	return max(0, min(v, config.IndicatorMaxValue))
}

// num prints the shortest decimal form, dropping trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
