package protocol

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

type SurveyLoaded struct {
	Snapshot Snapshot `json:"snapshot"`
}

type CellsFilled struct {
	Cells []CellAddress `json:"cells"`
}

type FillCompleted struct {
	Area     int `json:"area"`
	Interior int `json:"interior"`
}
