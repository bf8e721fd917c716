package sand

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestMoundDisabledMatchesFlatLine(t *testing.T) {
	body := testBody(0)
	cfg := testConfig(0.5, 0)
	cfg.MoundFactor = 0

	pts := Outline(body, Bottom, cfg)
	if len(pts) < 3 {
		t.Fatalf("got %d points", len(pts))
	}

	// Flat base fill line at fill 0.5: -100 + 0.5 * (-4 - -100) = -52.
	if y := maxY(pts); math32.Abs(y+52) > 1e-2 {
		t.Errorf("flat sand surface at y = %.4f, want -52", y)
	}
}

func TestMoundRaisesCrestAboveBaseLine(t *testing.T) {
	body := testBody(0)

	flat := testConfig(0.5, 0)
	flat.MoundFactor = 0
	mounded := testConfig(0.5, 0)
	mounded.MoundFactor = 2

	flatTop := maxY(Outline(body, Bottom, flat))
	crest := maxY(Outline(body, Bottom, mounded))
	if crest <= flatTop {
		t.Errorf("mounded crest %.4f not above flat surface %.4f", crest, flatTop)
	}
}

func TestMoundCrestCentered(t *testing.T) {
	body := testBody(0)
	cfg := testConfig(0.5, 0)
	cfg.MoundFactor = 2

	pts := Outline(body, Bottom, cfg)
	if len(pts) < 3 {
		t.Fatalf("got %d points", len(pts))
	}

	top := maxY(pts)
	var crestX float32
	for _, p := range pts {
		if p.Y == top {
			crestX = p.X
		}
	}
	if math32.Abs(crestX) > 5 {
		t.Errorf("crest at x = %.4f, want near the centerline", crestX)
	}
}

func TestMoundScalesWithFactor(t *testing.T) {
	body := testBody(0)

	gentle := testConfig(0.5, 0)
	gentle.MoundFactor = 1
	steep := testConfig(0.5, 0)
	steep.MoundFactor = 2

	gentleCrest := maxY(Outline(body, Bottom, gentle))
	steepCrest := maxY(Outline(body, Bottom, steep))
	if steepCrest <= gentleCrest {
		t.Errorf("factor 2 crest %.4f not above factor 1 crest %.4f", steepCrest, gentleCrest)
	}
}

func TestMoundStaysBelowNeckCenter(t *testing.T) {
	body := testBody(0)
	cfg := testConfig(0.2, 0)
	cfg.MoundFactor = 3

	for i, p := range Outline(body, Bottom, cfg) {
		if p.Y > 0 {
			t.Errorf("point %d at y = %.4f rose above the neck center", i, p.Y)
		}
	}
}
