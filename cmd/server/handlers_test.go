package main

import (
	"image/png"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/trenchworks/lagoon-engine/internal/dig"
	"github.com/trenchworks/lagoon-engine/internal/geometry"
	"github.com/trenchworks/lagoon-engine/internal/ws"
)

func testState(t *testing.T) *SurveyState {
	t.Helper()
	plan, err := dig.ParsePlan(strings.NewReader(
		"R 4 (#70c710)\nD 4 (#0dc571)\nL 4 (#5713f0)\nU 4 (#d2c081)"))
	if err != nil {
		t.Fatalf("failed to parse plan: %v", err)
	}
	result, err := geometry.Survey(plan)
	if err != nil {
		t.Fatalf("survey failed: %v", err)
	}
	return &SurveyState{
		SurveyID: "test-survey",
		PlanPath: "test-plan.txt",
		Result:   result,
		Hub:      ws.NewHub(),
	}
}

func TestBuildSnapshot(t *testing.T) {
	state := testState(t)
	snapshot := buildSnapshot(state)

	if snapshot.GridWidth != 5 || snapshot.GridHeight != 5 {
		t.Fatalf("expected 5x5 snapshot, got %dx%d", snapshot.GridWidth, snapshot.GridHeight)
	}
	if snapshot.Area != 25 {
		t.Fatalf("expected area 25, got %d", snapshot.Area)
	}
	if len(snapshot.Cells) != 25 {
		t.Fatalf("expected 25 packed cells, got %d", len(snapshot.Cells))
	}
	if len(snapshot.BoundaryCells) != snapshot.BoundaryCount {
		t.Fatalf("boundary cell list (%d) does not match count (%d)",
			len(snapshot.BoundaryCells), snapshot.BoundaryCount)
	}
}

func TestHandleGridImage(t *testing.T) {
	state := testState(t)

	req := httptest.NewRequest("GET", "/grid.png?scale=2", nil)
	rec := httptest.NewRecorder()
	handleGridImage(state)(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("response is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 10 {
		t.Fatalf("expected 10x10 image, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestHandleGridImage_BadScale(t *testing.T) {
	state := testState(t)

	req := httptest.NewRequest("GET", "/grid.png?scale=huge", nil)
	rec := httptest.NewRecorder()
	handleGridImage(state)(rec, req)

	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON error, got content type %q", ct)
	}
}

func TestHandleRowChart(t *testing.T) {
	state := testState(t)

	req := httptest.NewRequest("GET", "/chart", nil)
	rec := httptest.NewRecorder()
	handleRowChart(state)(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Enclosed cells per row") {
		t.Fatalf("chart page missing title")
	}
}
