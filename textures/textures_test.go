package textures

import (
	"testing"
)

func TestPetalRaster(t *testing.T) {
	img := GeneratePetal(128)

	b := img.Bounds()
	if b.Dx() != 128 || b.Dy() != 128 {
		t.Fatalf("expected 128x128, got %dx%d", b.Dx(), b.Dy())
	}

	// Center sits inside the silhouette, corners outside it.
	if a := img.RGBAAt(64, 64).A; a != 255 {
		t.Errorf("expected opaque center, got alpha %d", a)
	}
	if a := img.RGBAAt(2, 2).A; a != 0 {
		t.Errorf("expected transparent corner, got alpha %d", a)
	}

	// Edge of the silhouette leans pink: more red than green.
	covered := 0
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			if img.RGBAAt(x, y).A > 0 {
				covered++
			}
		}
	}
	if covered == 0 {
		t.Fatal("expected nonzero alpha coverage")
	}
	if covered >= 128*128 {
		t.Error("expected transparent background around the petal")
	}
	c := img.RGBAAt(64, 100)
	if c.A == 0 || c.R < c.G {
		t.Errorf("expected pink-leaning petal pixel, got %v", c)
	}
}

func TestBarkRaster(t *testing.T) {
	a := GenerateBark(64, 64, 7)
	b := GenerateBark(64, 64, 7)

	if a.Bounds().Dx() != 64 || a.Bounds().Dy() != 64 {
		t.Fatalf("expected 64x64, got %v", a.Bounds())
	}

	for _, p := range [][2]int{{0, 0}, {13, 40}, {63, 63}, {31, 7}} {
		ca := a.RGBAAt(p[0], p[1])
		cb := b.RGBAAt(p[0], p[1])
		if ca != cb {
			t.Errorf("pixel %v: expected deterministic bark, got %v vs %v", p, ca, cb)
		}
		if ca.A != 255 {
			t.Errorf("pixel %v: expected opaque bark, got alpha %d", p, ca.A)
		}
		if ca.R < ca.B {
			t.Errorf("pixel %v: expected brown tone (R>=B), got %v", p, ca)
		}
	}

	// A different seed changes the grain somewhere.
	c := GenerateBark(64, 64, 8)
	same := true
	for y := 0; y < 64 && same; y++ {
		for x := 0; x < 64; x++ {
			if a.RGBAAt(x, y) != c.RGBAAt(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("expected different seeds to produce different bark")
	}
}

func TestPlaceholderDistinct(t *testing.T) {
	a := GeneratePlaceholder(128, 128, 0)
	b := GeneratePlaceholder(128, 128, 1)

	if a.Bounds().Dx() != 128 {
		t.Fatalf("expected width 128, got %d", a.Bounds().Dx())
	}
	if c := a.RGBAAt(64, 64); c.A != 255 {
		t.Errorf("expected opaque card, got alpha %d", c.A)
	}
	if a.RGBAAt(64, 64) == b.RGBAAt(64, 64) {
		t.Error("expected index tint to distinguish placeholder cards")
	}
}

func TestManagerCaching(t *testing.T) {
	m := NewManager(5)

	if m.Petal() != m.Petal() {
		t.Error("expected repeated Petal calls to return the cached raster")
	}
	if m.Bark() != m.Bark() {
		t.Error("expected repeated Bark calls to return the cached raster")
	}
	if m.Placeholder(3) != m.Placeholder(3) {
		t.Error("expected same-index placeholders to share a raster")
	}
	if m.Placeholder(1) == m.Placeholder(2) {
		t.Error("expected distinct rasters per placeholder index")
	}
}

func BenchmarkGenerateBark(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = GenerateBark(64, 64, int64(i+1))
	}
}
