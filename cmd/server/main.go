package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"sync"
	"sync/atomic"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/trenchworks/lagoon-engine/internal/dig"
	"github.com/trenchworks/lagoon-engine/internal/geometry"
	"github.com/trenchworks/lagoon-engine/internal/protocol"
	"github.com/trenchworks/lagoon-engine/internal/web/views"
	"github.com/trenchworks/lagoon-engine/internal/ws"
)

const protocolVersion = "v0"

// SurveyState holds the currently loaded survey and the transport pieces
// the handlers share. SurveyID and Result are swapped as a pair under Lock
// when the plan is reloaded; a Result itself is immutable once built.
type SurveyState struct {
	PlanPath string
	Hub      *ws.Hub
	Sequence uint64
	Lock     sync.Mutex
	SurveyID string
	Result   *geometry.Result
}

func runSurvey(planPath string) (*geometry.Result, error) {
	plan, err := dig.LoadPlanFromFile(planPath)
	if err != nil {
		return nil, err
	}

	log.Printf("digging %d instructions from %s", len(plan), planPath)
	result, err := geometry.Survey(plan)
	if err != nil {
		return nil, err
	}
	log.Printf("surveyed grid %dx%d: area=%d boundary=%d interior=%d",
		result.Lagoon.Width, result.Lagoon.Height, result.Area, result.Boundary, result.Interior)
	return result, nil
}

// current returns the survey id and result as a consistent pair.
func (s *SurveyState) current() (string, *geometry.Result) {
	s.Lock.Lock()
	defer s.Lock.Unlock()
	return s.SurveyID, s.Result
}

// reload re-reads the plan file, re-surveys it, and swaps the state in.
func (s *SurveyState) reload() error {
	result, err := runSurvey(s.PlanPath)
	if err != nil {
		return err
	}
	s.Lock.Lock()
	s.SurveyID = uuid.NewString()
	s.Result = result
	s.Lock.Unlock()
	return nil
}

func buildSnapshot(state *SurveyState) protocol.Snapshot {
	surveyID, result := state.current()
	grid := result.Grid
	boundaryCells := make([]protocol.BoundaryCellLite, 0, result.Boundary)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.State(x, y) != geometry.Boundary {
				continue
			}
			c := grid.Color(x, y)
			boundaryCells = append(boundaryCells, protocol.BoundaryCellLite{
				Cell:  protocol.CellAddress{X: x, Y: y},
				Color: protocol.ColorLite{R: c.R, G: c.G, B: c.B},
			})
		}
	}

	return protocol.Snapshot{
		SurveyID:        surveyID,
		PlanPath:        state.PlanPath,
		GridWidth:       grid.Width,
		GridHeight:      grid.Height,
		Area:            result.Area,
		BoundaryCount:   result.Boundary,
		InteriorCount:   result.Interior,
		Cells:           grid.States(),
		BoundaryCells:   boundaryCells,
		ProtocolVersion: protocolVersion,
	}
}

func broadcastEvent(state *SurveyState, eventType string, payload any) {
	seq := atomic.AddUint64(&state.Sequence, 1)
	b, err := json.Marshal(protocol.PatchEnvelope{Sequence: seq, Type: eventType, Payload: payload})
	if err != nil {
		log.Printf("failed to marshal %s patch: %v", eventType, err)
		return
	}
	state.Hub.Broadcast(b)
}

func main() {
	planPath := flag.String("input", "plan.txt", "path to the dig plan file")
	flag.Parse()

	state := &SurveyState{PlanPath: *planPath, Hub: ws.NewHub()}
	if err := state.reload(); err != nil {
		log.Fatalf("failed to load survey: %v", err)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if err := views.IndexPage(buildSnapshot(state)).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	mux.HandleFunc("/grid.png", handleGridImage(state))
	mux.HandleFunc("/chart", handleRowChart(state))

	mux.HandleFunc("/reload", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSONError(w, http.StatusMethodNotAllowed, "reload requires POST")
			return
		}
		if err := state.reload(); err != nil {
			log.Printf("reload failed: %v", err)
			writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		broadcastEvent(state, "SurveyLoaded", protocol.SurveyLoaded{Snapshot: buildSnapshot(state)})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(buildSnapshot(state))
	})

	mux.HandleFunc("/stream", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		state.Hub.Add(conn)
		log.Printf("client connected, %d total", state.Hub.Count())

		hello, _ := json.Marshal(protocol.PatchEnvelope{
			Sequence: 0,
			Type:     "SurveyLoaded",
			Payload:  protocol.SurveyLoaded{Snapshot: buildSnapshot(state)},
		})
		_ = conn.Write(context.Background(), websocket.MessageText, hello)

		go func(c *websocket.Conn) {
			defer state.Hub.Remove(c)
			defer c.Close(websocket.StatusNormalClosure, "")
			for {
				_, data, err := c.Read(context.Background())
				if err != nil {
					return
				}
				var env protocol.IntentEnvelope
				if err := json.Unmarshal(data, &env); err != nil {
					continue
				}
				switch env.Type {
				case "RequestReplay":
					var req protocol.RequestReplay
					if err := json.Unmarshal(env.Payload, &req); err != nil {
						continue
					}
					streamFillReplay(state, c, req.BatchSize)
				}
			}
		}(conn)
	})

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
