package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sahoos/cmbspec/internal/config"
	"github.com/sahoos/cmbspec/internal/spectrum"
)

func TestCSV(t *testing.T) {
	res, err := spectrum.Evaluate(config.Default())
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	var buf bytes.Buffer
	if err := CSV(&buf, res); err != nil {
		t.Fatalf("csv export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != spectrum.GridPoints+1 {
		t.Fatalf("expected %d lines, got %d", spectrum.GridPoints+1, len(lines))
	}
	if lines[0] != "freq_ghz,cmb,synchrotron,dust,total" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if fields := strings.Split(lines[1], ","); len(fields) != 5 {
		t.Errorf("expected 5 fields per row, got %d", len(fields))
	}
}

func TestJSON(t *testing.T) {
	res, err := spectrum.Evaluate(config.Default())
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	var buf bytes.Buffer
	if err := JSON(&buf, res); err != nil {
		t.Fatalf("json export failed: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if doc.Params.TCMB != config.DefaultTCMB {
		t.Errorf("expected t_cmb %g, got %g", config.DefaultTCMB, doc.Params.TCMB)
	}
	if len(doc.FreqGHz) != spectrum.GridPoints || len(doc.Total) != spectrum.GridPoints {
		t.Errorf("expected %d points, got %d freq / %d total", spectrum.GridPoints, len(doc.FreqGHz), len(doc.Total))
	}
	if doc.AmpSync != res.AmpSync || doc.AmpDust != res.AmpDust {
		t.Errorf("amplitudes not preserved: %g/%g vs %g/%g", doc.AmpSync, doc.AmpDust, res.AmpSync, res.AmpDust)
	}
}
