package views

import (
	"context"
	"strings"
	"testing"

	"github.com/trenchworks/lagoon-engine/internal/protocol"
)

func TestIndexPage_RendersSnapshot(t *testing.T) {
	snapshot := protocol.Snapshot{
		SurveyID:        "s-1",
		PlanPath:        "plans/demo.txt",
		GridWidth:       7,
		GridHeight:      10,
		Area:            62,
		BoundaryCount:   38,
		InteriorCount:   24,
		Cells:           make([]byte, 70),
		ProtocolVersion: "v0",
	}

	var sb strings.Builder
	if err := IndexPage(snapshot).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	page := sb.String()

	for _, want := range []string{"Lagoon Survey s-1", "plans/demo.txt", `id="area">62<`, "/stream", "/grid.png"} {
		if !strings.Contains(page, want) {
			t.Fatalf("rendered page missing %q", want)
		}
	}
}

func TestIndexPage_EscapesPlanPath(t *testing.T) {
	snapshot := protocol.Snapshot{SurveyID: "s", PlanPath: `<script>alert(1)</script>`}

	var sb strings.Builder
	if err := IndexPage(snapshot).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(sb.String(), "<script>alert(1)</script>") {
		t.Fatalf("plan path was not escaped")
	}
}
