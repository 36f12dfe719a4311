package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RequestReplay asks the server to stream the flood fill cell by cell.
type RequestReplay struct {
	BatchSize int `json:"batchSize"`
}
