package spectrum

import (
	"math"
	"testing"

	"github.com/sahoos/cmbspec/internal/config"
)

func TestGridShape(t *testing.T) {
	g := Grid(GridPoints)

	if len(g) != 1000 {
		t.Fatalf("expected 1000 points, got %d", len(g))
	}
	for i := 1; i < len(g); i++ {
		if g[i] <= g[i-1] {
			t.Fatalf("grid not strictly increasing at index %d: %g <= %g", i, g[i], g[i-1])
		}
	}
	if math.Abs(g[0]-FreqMinHz)/FreqMinHz > 1e-9 {
		t.Errorf("expected first point ~1 GHz, got %g Hz", g[0])
	}
	if math.Abs(g[len(g)-1]-FreqMaxHz)/FreqMaxHz > 1e-9 {
		t.Errorf("expected last point ~1000 GHz, got %g Hz", g[len(g)-1])
	}
}

func TestEvaluateLengths(t *testing.T) {
	res, err := Evaluate(config.Default())
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	for name, arr := range map[string][]float64{
		"freq": res.FreqHz, "cmb": res.CMB, "sync": res.Sync, "dust": res.Dust, "total": res.Total,
	} {
		if len(arr) != GridPoints {
			t.Errorf("%s: expected %d points, got %d", name, GridPoints, len(arr))
		}
	}
}

func TestEvaluateTotalIsExactSum(t *testing.T) {
	res, err := Evaluate(config.Default())
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	for i := range res.Total {
		if res.Total[i] != res.CMB[i]+res.Sync[i]+res.Dust[i] {
			t.Fatalf("index %d: total %g != %g + %g + %g", i, res.Total[i], res.CMB[i], res.Sync[i], res.Dust[i])
		}
	}
}

func TestEvaluateAmplitudes(t *testing.T) {
	res, err := Evaluate(config.Default())
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	peak := res.CMB[0]
	for _, v := range res.CMB {
		if v > peak {
			peak = v
		}
	}

	if res.AmpSync != 1e-5*peak {
		t.Errorf("expected sync amplitude %g, got %g", 1e-5*peak, res.AmpSync)
	}
	if res.AmpDust != 1e-6*peak {
		t.Errorf("expected dust amplitude %g, got %g", 1e-6*peak, res.AmpDust)
	}
}

func TestEvaluateComponentsPositive(t *testing.T) {
	res, err := Evaluate(config.Default())
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	for i := range res.FreqHz {
		if !(res.CMB[i] > 0) || !(res.Sync[i] > 0) || !(res.Dust[i] > 0) {
			t.Fatalf("non-positive component at index %d (nu=%g)", i, res.FreqHz[i])
		}
	}
}

func TestEvaluateInvalidParams(t *testing.T) {
	p := config.Default()
	p.TCMB = -1

	if _, err := Evaluate(p); err == nil {
		t.Error("expected error for negative t_cmb")
	}
}

func TestPeak(t *testing.T) {
	res, err := Evaluate(config.Default())
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	freq, val := res.Peak()
	if !(val > 0) {
		t.Errorf("expected positive peak value, got %g", val)
	}
	// The 2.725 K blackbody peaks near 160 GHz and dominates the total.
	if freq < 100e9 || freq > 300e9 {
		t.Errorf("expected total peak near 160 GHz, got %g GHz", freq/1e9)
	}
}
