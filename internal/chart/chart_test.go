package chart_test

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/gehtsoft-usa/go_shotcalc"
	"github.com/gehtsoft-usa/go_shotcalc/internal/chart"
	"github.com/gehtsoft-usa/go_shotcalc/internal/input"
)

func defaultResult(t *testing.T) go_shotcalc.TrajectoryResult {
	t.Helper()
	result, err := input.New().Simulate()
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := chart.RenderPNG(&buf, defaultResult(t), "#7 1/2 Chilled"); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG image: %v", err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		t.Errorf("empty image %v", b)
	}
}

func TestRenderPNGNoData(t *testing.T) {
	var buf bytes.Buffer
	err := chart.RenderPNG(&buf, go_shotcalc.TrajectoryResult{}, "")
	if !errors.Is(err, chart.ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("data written for an empty result")
	}
}

func TestPlots(t *testing.T) {
	vp, dp, err := chart.Plots(defaultResult(t), "title")
	if err != nil {
		t.Fatal(err)
	}
	if vp.Title.Text != "title" {
		t.Errorf("title %q", vp.Title.Text)
	}
	if vp.Y.Max < 1350 {
		t.Errorf("velocity axis ends at %f", vp.Y.Max)
	}
	if dp.Y.Min > -3.6 {
		t.Errorf("drop axis starts at %f", dp.Y.Min)
	}
}

func TestVelocitySparkline(t *testing.T) {
	out := chart.VelocitySparkline(defaultResult(t), 40, 6)
	if !strings.Contains(out, "Velocity, fps (0-116 yd)") {
		t.Errorf("no caption in\n%s", out)
	}
	if !strings.Contains(out, "1350") {
		t.Errorf("no muzzle velocity label in\n%s", out)
	}
	if chart.VelocitySparkline(go_shotcalc.TrajectoryResult{}, 40, 6) != "" {
		t.Error("plot of an empty result")
	}
}
