package model

// ScoreResult is the rounded outcome of scoring one play. Total is always
// Chips * Mult, with Chips >= 0 and Mult >= 1.
type ScoreResult struct {
	Chips int64 `json:"chips"`
	Mult  int64 `json:"mult"`
	Total int64 `json:"total"`
}
