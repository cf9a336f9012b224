package ui

import (
	"fmt"
	"strconv"
)

type Color struct {
	R, G, B, A float64
}

var (
	White = Color{1, 1, 1, 1}
	Red   = Color{1, 0, 0, 1}
)

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B), channel(c.A))
}

func channel(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

// Lerp interpolates from a to b with t clamped to [0,1].
func Lerp(a, b Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// AmmoText is the HUD counter of rounds left in the equipped weapon. Its colour
// fades toward EmptyColor as the magazine drains.
type AmmoText struct {
	UpdateColor bool
	EmptySpeed  float64
	EmptyColor  Color

	text  string
	color Color
}

func NewAmmoText(updateColor bool, emptySpeed float64, emptyColor Color) *AmmoText {
	return &AmmoText{
		UpdateColor: updateColor,
		EmptySpeed:  emptySpeed,
		EmptyColor:  emptyColor,
		color:       White,
	}
}

func (a *AmmoText) Update(current, total int) {
	a.text = strconv.Itoa(current)
	if !a.UpdateColor {
		return
	}
	ratio := 0.0
	if total > 0 {
		ratio = float64(current) / float64(total)
	}
	a.color = Lerp(a.EmptyColor, White, ratio*a.EmptySpeed)
}

func (a *AmmoText) Text() string { return a.text }
func (a *AmmoText) Color() Color { return a.color }
