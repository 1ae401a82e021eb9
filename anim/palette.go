package anim

import (
	"fmt"
	"strings"

	"hanami/core"
)

// Palette holds the sky anchors the background blends between as the tree
// disperses, plus the bloom strength suiting that mood.
type Palette struct {
	Name      string
	TreeSky   core.Color // clear color while assembled
	GalaxySky core.Color // clear color once dispersed
	Glow      float32    // bloom strength hint
}

// palettes defines the selectable installation moods. The first entry is
// the default.
var palettes = []Palette{
	{ // spring dusk fading into deep night
		Name:      "hanami",
		TreeSky:   core.Color{R: 0.09, G: 0.07, B: 0.14, A: 1},
		GalaxySky: core.Color{R: 0.01, G: 0.01, B: 0.04, A: 1},
		Glow:      0.90,
	},
	{ // colder, bluer mood for bright venues
		Name:      "frost",
		TreeSky:   core.Color{R: 0.06, G: 0.10, B: 0.18, A: 1},
		GalaxySky: core.Color{R: 0.01, G: 0.02, B: 0.06, A: 1},
		Glow:      0.70,
	},
	{ // warm festival lantern glow
		Name:      "lantern",
		TreeSky:   core.Color{R: 0.14, G: 0.08, B: 0.08, A: 1},
		GalaxySky: core.Color{R: 0.03, G: 0.01, B: 0.03, A: 1},
		Glow:      1.10,
	},
}

func DefaultPalette() Palette {
	return palettes[0]
}

// PaletteByName resolves a mood by its name.
func PaletteByName(name string) (Palette, error) {
	for _, p := range palettes {
		if p.Name == name {
			return p, nil
		}
	}
	return Palette{}, fmt.Errorf("unknown palette %q (available: %s)", name, strings.Join(PaletteNames(), ", "))
}

// PaletteNames lists the selectable moods in declaration order.
func PaletteNames() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}
