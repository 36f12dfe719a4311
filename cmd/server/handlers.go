package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/trenchworks/lagoon-engine/internal/geometry"
	"github.com/trenchworks/lagoon-engine/internal/protocol"
	"github.com/trenchworks/lagoon-engine/internal/render"
)

const replayBatchDelay = 15 * time.Millisecond

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// handleGridImage serves the classified grid as a PNG. Query params:
//   - scale (optional; default 4, capped at 64) nearest-neighbor upscale factor
func handleGridImage(state *SurveyState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scale := 4
		if s := r.URL.Query().Get("scale"); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil || v < 1 || v > 64 {
				writeJSONError(w, http.StatusBadRequest, "scale must be an integer in 1..64")
				return
			}
			scale = v
		}

		_, result := state.current()
		img := render.Scale(render.Image(result.Grid, render.DefaultPalette), scale)
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, img); err != nil {
			log.Printf("failed to encode grid image: %v", err)
		}
	}
}

// handleRowChart renders a quick bar chart (HTML) of enclosed cells per
// grid row using go-echarts. Debugging endpoint to eyeball the fill
// without the canvas page.
func handleRowChart(state *SurveyState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyID, result := state.current()
		grid := result.Grid

		rows := make([]string, grid.Height)
		enclosed := make([]opts.BarData, grid.Height)
		for y := 0; y < grid.Height; y++ {
			n := 0
			for x := 0; x < grid.Width; x++ {
				if grid.State(x, y) != geometry.Background {
					n++
				}
			}
			rows[y] = strconv.Itoa(y)
			enclosed[y] = opts.BarData{Value: n}
		}

		bar := charts.NewBar()
		bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
			Title:    "Enclosed cells per row",
			Subtitle: fmt.Sprintf("survey %s, total area %d", surveyID, result.Area),
		}))
		bar.SetXAxis(rows).AddSeries("enclosed", enclosed)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := bar.Render(w); err != nil {
			log.Printf("failed to render row chart: %v", err)
		}
	}
}

// streamFillReplay sends the recorded flood-fill order to one client in
// CellsFilled batches, then a FillCompleted patch.
func streamFillReplay(state *SurveyState, conn *websocket.Conn, batchSize int) {
	if batchSize < 1 || batchSize > 4096 {
		batchSize = 64
	}
	_, result := state.current()
	order := result.FillOrder
	log.Printf("replaying fill of %d cells in batches of %d", len(order), batchSize)

	for start := 0; start < len(order); start += batchSize {
		end := min(start+batchSize, len(order))
		cells := make([]protocol.CellAddress, 0, end-start)
		for _, p := range order[start:end] {
			cells = append(cells, protocol.CellAddress{X: p.X, Y: p.Y})
		}

		seq := atomic.AddUint64(&state.Sequence, 1)
		b, _ := json.Marshal(protocol.PatchEnvelope{
			Sequence: seq,
			Type:     "CellsFilled",
			Payload:  protocol.CellsFilled{Cells: cells},
		})
		if err := state.Hub.Send(conn, b); err != nil {
			log.Printf("replay aborted: %v", err)
			return
		}
		time.Sleep(replayBatchDelay)
	}

	seq := atomic.AddUint64(&state.Sequence, 1)
	b, _ := json.Marshal(protocol.PatchEnvelope{
		Sequence: seq,
		Type:     "FillCompleted",
		Payload:  protocol.FillCompleted{Area: result.Area, Interior: result.Interior},
	})
	if err := state.Hub.Send(conn, b); err != nil {
		log.Printf("replay completion not delivered: %v", err)
	}
}
