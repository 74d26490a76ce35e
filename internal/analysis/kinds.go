package analysis

// Kind selects which prompt template and result shape a stage uses.
type Kind string

const (
	KindClassification Kind = "fruit_classification"
	KindRipeness       Kind = "ripeness"
	KindDisease        Kind = "disease"
)
