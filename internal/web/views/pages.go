package views

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/trenchworks/lagoon-engine/internal/protocol"
)

// IndexPage renders the survey visualization page: a summary table, the
// grid canvas, and the client script that draws the snapshot and replays
// the flood fill from websocket patches.
func IndexPage(s protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		snapshot, err := json.Marshal(s)
		if err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>Lagoon Survey</title>`+pageStyle+`</head><body>`); err != nil {
			return err
		}

		header := fmt.Sprintf(
			`<h1>Lagoon Survey %s</h1><table><tr><th>Plan</th><td>%s</td></tr><tr><th>Grid</th><td>%d &times; %d</td></tr><tr><th>Boundary cells</th><td>%d</td></tr><tr><th>Interior cells</th><td>%d</td></tr><tr><th>Enclosed area</th><td id="area">%d</td></tr></table>`,
			templ.EscapeString(s.SurveyID),
			templ.EscapeString(s.PlanPath),
			s.GridWidth, s.GridHeight,
			s.BoundaryCount, s.InteriorCount, s.Area,
		)
		if _, err := io.WriteString(w, header); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<p><button id="replay">Replay fill</button> <a href="/grid.png?scale=4">PNG</a> <a href="/chart">Row chart</a></p><canvas id="grid"></canvas>`); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<script>const snapshot = %s;</script>`, snapshot); err != nil {
			return err
		}
		if _, err := io.WriteString(w, clientScript); err != nil {
			return err
		}

		_, err = io.WriteString(w, `</body></html>`)
		return err
	})
}

const pageStyle = `<style>
body { font-family: monospace; margin: 2rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.25rem 0.75rem; text-align: left; }
canvas { border: 1px solid #333; image-rendering: pixelated; margin-top: 1rem; }
</style>`

const clientScript = `<script>
const BACKGROUND = 0, BOUNDARY = 1, INTERIOR = 2;
const canvas = document.getElementById("grid");
const scale = Math.max(1, Math.min(12, Math.floor(640 / Math.max(snapshot.gridWidth, snapshot.gridHeight))));
canvas.width = snapshot.gridWidth * scale;
canvas.height = snapshot.gridHeight * scale;
const ctx = canvas.getContext("2d");

const cells = Uint8Array.from(atob(snapshot.cells), (c) => c.charCodeAt(0));
const boundaryColors = new Map();
for (const b of snapshot.boundaryCells) {
  boundaryColors.set(b.cell.y * snapshot.gridWidth + b.cell.x, b.color);
}

function paint(x, y, state) {
  if (state === BOUNDARY) {
    const c = boundaryColors.get(y * snapshot.gridWidth + x);
    ctx.fillStyle = c ? "rgb(" + c.r + "," + c.g + "," + c.b + ")" : "#000";
  } else if (state === INTERIOR) {
    ctx.fillStyle = "#f00";
  } else {
    ctx.fillStyle = "#fff";
  }
  ctx.fillRect(x * scale, y * scale, scale, scale);
}

function drawSnapshot(withInterior) {
  for (let y = 0; y < snapshot.gridHeight; y++) {
    for (let x = 0; x < snapshot.gridWidth; x++) {
      let state = cells[y * snapshot.gridWidth + x];
      if (!withInterior && state === INTERIOR) state = BACKGROUND;
      paint(x, y, state);
    }
  }
}
drawSnapshot(true);

const sock = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/stream");
sock.onmessage = (event) => {
  const patch = JSON.parse(event.data);
  if (patch.type === "CellsFilled") {
    for (const cell of patch.payload.cells) paint(cell.x, cell.y, INTERIOR);
  } else if (patch.type === "FillCompleted") {
    document.getElementById("area").textContent = patch.payload.area;
  } else if (patch.type === "SurveyLoaded") {
    if (patch.payload.snapshot.surveyId !== snapshot.surveyId) location.reload();
  }
};

document.getElementById("replay").addEventListener("click", () => {
  drawSnapshot(false);
  sock.send(JSON.stringify({ type: "RequestReplay", payload: { batchSize: 64 } }));
});
</script>`
