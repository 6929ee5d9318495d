package chart

import (
	"bytes"
	"testing"

	"github.com/vanshika/salesboard/internal/domain"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderEmptySeries(t *testing.T) {
	png, err := New(400, 200).Render(nil, "empty")
	if err != nil {
		t.Fatalf("expected no error for an empty series, got %v", err)
	}
	if png != nil {
		t.Fatalf("expected nil bytes for an empty series, got %d bytes", len(png))
	}
}

func TestRenderProducesPNG(t *testing.T) {
	points := []domain.RevenuePoint{
		{Day: "2024-03-01", Total: 120},
		{Day: "2024-03-02", Total: 80},
		{Day: "2024-03-03", Total: 210},
	}
	png, err := New(400, 200).Render(points, "Revenue Trend: DATA1")
	if err != nil {
		t.Fatalf("expected render to succeed, got %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatalf("expected PNG output, got leading bytes %v", png[:min(4, len(png))])
	}
}

func TestRenderSinglePoint(t *testing.T) {
	png, err := New(400, 200).Render([]domain.RevenuePoint{{Day: "2024-03-01", Total: 50}}, "one day")
	if err != nil {
		t.Fatalf("expected a single-day series to render, got %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatalf("expected PNG output for a single-day series")
	}
}
