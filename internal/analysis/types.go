package analysis

import (
	"encoding/json"
	"errors"
)

// Ripeness stages the vision model is instructed to choose from.
const (
	StageUnderripe = "underripe"
	StageRipe      = "ripe"
	StageOverripe  = "overripe"
	StageSpoiled   = "spoiled"
)

// ClassificationRecord is the structured result of the classification stage.
type ClassificationRecord struct {
	FruitType  string  `json:"fruit_type"`
	Variety    string  `json:"variety,omitempty"`
	Confidence float64 `json:"confidence"`
	Notes      string  `json:"notes,omitempty"`
}

// RipenessRecord is the structured result of the ripeness stage.
// DaysToOptimal is only meaningful when Stage is underripe.
type RipenessRecord struct {
	Stage            string  `json:"ripeness_stage"`
	Confidence       float64 `json:"confidence"`
	ColorDescription string  `json:"color_description,omitempty"`
	Recommendation   string  `json:"recommendation,omitempty"`
	DaysToOptimal    *int    `json:"days_to_optimal,omitempty"`
}

// DiseaseRecord is the structured result of the disease stage.
type DiseaseRecord struct {
	IsDiseased         bool     `json:"is_diseased"`
	DiseasesDetected   []string `json:"diseases_detected"`
	Confidence         float64  `json:"confidence"`
	Severity           string   `json:"severity,omitempty"`
	Treatment          string   `json:"treatment,omitempty"`
	PreventiveMeasures string   `json:"preventive_measures,omitempty"`
}

// ErrorRecord represents a failed stage. Failures travel through the
// pipeline as data; nothing below the HTTP layer raises them.
type ErrorRecord struct {
	Message      string `json:"error"`
	RawResponse  string `json:"raw_response,omitempty"`
	FallbackUsed bool   `json:"fallback_used"`
}

// StageResult is a tagged union: exactly one of the record pointers is set.
type StageResult struct {
	Classification *ClassificationRecord
	Ripeness       *RipenessRecord
	Disease        *DiseaseRecord
	Err            *ErrorRecord
}

// ClassificationResult wraps a classification record as a stage result.
func ClassificationResult(rec ClassificationRecord) StageResult {
	return StageResult{Classification: &rec}
}

// RipenessResult wraps a ripeness record as a stage result.
func RipenessResult(rec RipenessRecord) StageResult {
	return StageResult{Ripeness: &rec}
}

// DiseaseResult wraps a disease record as a stage result.
func DiseaseResult(rec DiseaseRecord) StageResult {
	return StageResult{Disease: &rec}
}

// ErrorResult wraps an error record as a stage result.
func ErrorResult(rec ErrorRecord) StageResult {
	return StageResult{Err: &rec}
}

// Failed reports whether the stage produced an error record.
func (r StageResult) Failed() bool {
	return r.Err != nil
}

// MarshalJSON serializes whichever variant is set.
func (r StageResult) MarshalJSON() ([]byte, error) {
	switch {
	case r.Err != nil:
		return json.Marshal(r.Err)
	case r.Classification != nil:
		return json.Marshal(r.Classification)
	case r.Ripeness != nil:
		return json.Marshal(r.Ripeness)
	case r.Disease != nil:
		return json.Marshal(r.Disease)
	default:
		return nil, errors.New("empty stage result")
	}
}

// Recommendation is the final purchase/consumption advice.
type Recommendation struct {
	Action  string `json:"action"`
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

// Recommendation actions.
const (
	ActionBuy     = "buy"
	ActionBuyWait = "buy_wait"
	ActionEatSoon = "eat_soon"
	ActionAvoid   = "avoid"
	ActionDiscard = "discard"
	ActionUnknown = "unknown"
	ActionRetry   = "retry"
)

// Report aggregates the outcome of one full analysis. Field presence
// mirrors which stages executed.
type Report struct {
	Language       string          `json:"language"`
	AnalysisMode   string          `json:"analysis_mode"`
	Classification *StageResult    `json:"fruit_classification,omitempty"`
	Ripeness       *StageResult    `json:"ripeness,omitempty"`
	Disease        *StageResult    `json:"disease,omitempty"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
	Message        string          `json:"message,omitempty"`
	Error          string          `json:"error,omitempty"`
}
