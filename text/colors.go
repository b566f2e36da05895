package text

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// NamedColor is one of the 16 legacy Minecraft colors plus the reset marker.
type NamedColor int

const (
	Black NamedColor = iota
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
	Reset
)

type namedColorInfo struct {
	name       string
	legacyCode byte
	r, g, b    uint8
}

// namedColors is ordered black..white..reset, matching enumeration order so
// that nearest-color tie-breaks resolve deterministically.
var namedColors = []namedColorInfo{
	Black:       {"black", '0', 0, 0, 0},
	DarkBlue:    {"dark_blue", '1', 0, 0, 170},
	DarkGreen:   {"dark_green", '2', 0, 170, 0},
	DarkAqua:    {"dark_aqua", '3', 0, 170, 170},
	DarkRed:     {"dark_red", '4', 170, 0, 0},
	DarkPurple:  {"dark_purple", '5', 170, 0, 170},
	Gold:        {"gold", '6', 255, 170, 0},
	Gray:        {"gray", '7', 170, 170, 170},
	DarkGray:    {"dark_gray", '8', 85, 85, 85},
	Blue:        {"blue", '9', 85, 85, 255},
	Green:       {"green", 'a', 85, 255, 85},
	Aqua:        {"aqua", 'b', 85, 255, 255},
	Red:         {"red", 'c', 255, 85, 85},
	LightPurple: {"light_purple", 'd', 255, 85, 255},
	Yellow:      {"yellow", 'e', 255, 255, 85},
	White:       {"white", 'f', 255, 255, 255},
	Reset:       {"reset", 'r', 255, 255, 255},
}

func (c NamedColor) Name() string    { return namedColors[c].name }
func (c NamedColor) LegacyCode() byte { return namedColors[c].legacyCode }

func namedColorByName(name string) (NamedColor, bool) {
	for i, info := range namedColors {
		if info.name == name {
			return NamedColor(i), true
		}
	}
	return 0, false
}

// Color is either a named color or an arbitrary #rrggbb hex value.
type Color struct {
	named NamedColor
	hex   string // non-empty when this color is a hex value, e.g. "#6364ff"
}

func NamedColorValue(c NamedColor) Color { return Color{named: c} }

// HexColor constructs a Color from "#rrggbb". The value is stored verbatim
// and only resolved to a named color when legacy-rendered.
func HexColor(hex string) (Color, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return Color{}, fmt.Errorf("invalid hex color %q: must be #rrggbb", hex)
	}
	return Color{hex: hex}, nil
}

func (c Color) IsHex() bool { return c.hex != "" }

func (c Color) MarshalJSON() ([]byte, error) {
	if c.hex != "" {
		return json.Marshal(c.hex)
	}
	return json.Marshal(c.named.Name())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.HasPrefix(s, "#") {
		parsed, err := HexColor(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	named, ok := namedColorByName(s)
	if !ok {
		return fmt.Errorf("unknown color name %q", s)
	}
	*c = Color{named: named}
	return nil
}

// nearestNamed resolves this color to the legacy-renderable named color
// closest to it in CIE-Lab space. A color already named passes through
// unchanged.
func (c Color) nearestNamed() NamedColor {
	if c.hex == "" {
		return c.named
	}
	var r, g, b uint8
	fmt.Sscanf(c.hex[1:], "%02x%02x%02x", &r, &g, &b)
	targetL, targetA, targetBb := rgbToLab(r, g, b)

	best := NamedColor(0)
	bestDist := math.Inf(1)
	for i, info := range namedColors {
		l, a, bb := rgbToLab(info.r, info.g, info.b)
		dl, da, dbb := l-targetL, a-targetA, bb-targetBb
		dist := dl*dl + da*da + dbb*dbb
		if dist < bestDist {
			bestDist = dist
			best = NamedColor(i)
		}
	}
	return best
}

func rgbToLab(r, g, b uint8) (l, a, bb float64) {
	rl := srgbToLinear(float64(r) / 255)
	gl := srgbToLinear(float64(g) / 255)
	bl := srgbToLinear(float64(b) / 255)

	x := rl*0.4124564 + gl*0.3575761 + bl*0.1804375
	y := rl*0.2126729 + gl*0.7151522 + bl*0.0721750
	z := rl*0.0193339 + gl*0.1191920 + bl*0.9503041

	const xn, yn, zn = 0.95047, 1.0, 1.08883
	fx := labF(x / xn)
	fy := labF(y / yn)
	fz := labF(z / zn)

	l = 116*fy - 16
	a = 500 * (fx - fy)
	bb = 200 * (fy - fz)
	return
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

// Font is one of the four fonts a client ships.
type Font int

const (
	FontDefault Font = iota
	FontUniform
	FontEnchantingTable
	FontIllager
)

var fontNames = map[Font]string{
	FontDefault:         "minecraft:default",
	FontUniform:         "minecraft:uniform",
	FontEnchantingTable: "minecraft:alt",
	FontIllager:         "minecraft:illageralt",
}

func (f Font) MarshalJSON() ([]byte, error) {
	name, ok := fontNames[f]
	if !ok {
		return nil, fmt.Errorf("unknown font %d", f)
	}
	return json.Marshal(name)
}

func (f *Font) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for font, name := range fontNames {
		if name == s {
			*f = font
			return nil
		}
	}
	return fmt.Errorf("unknown font %q", s)
}
