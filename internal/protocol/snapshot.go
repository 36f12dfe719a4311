package protocol

// CellAddress identifies one grid cell.
type CellAddress struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ColorLite is a boundary cell color as sent to the client.
type ColorLite struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// BoundaryCellLite is one painted boundary cell with its segment color.
type BoundaryCellLite struct {
	Cell  CellAddress `json:"cell"`
	Color ColorLite   `json:"color"`
}

// Snapshot is the full survey state sent to a client on connect. Cells is
// the packed row-major cell-state buffer (one byte per cell: 0 background,
// 1 boundary, 2 interior) before any replay has run on the client.
type Snapshot struct {
	SurveyID        string             `json:"surveyId"`
	PlanPath        string             `json:"planPath"`
	GridWidth       int                `json:"gridWidth"`
	GridHeight      int                `json:"gridHeight"`
	Area            int                `json:"area"`
	BoundaryCount   int                `json:"boundaryCount"`
	InteriorCount   int                `json:"interiorCount"`
	Cells           []byte             `json:"cells"`
	BoundaryCells   []BoundaryCellLite `json:"boundaryCells"`
	ProtocolVersion string             `json:"protocolVersion"`
}
