package analysis

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestExtractRoundTrip(t *testing.T) {
	classification := ClassificationRecord{
		FruitType:  "mango",
		Variety:    "Kent",
		Confidence: 95,
		Notes:      "large yellow fruit with smooth skin",
	}
	ripeness := RipenessRecord{
		Stage:            StageUnderripe,
		Confidence:       88,
		ColorDescription: "mostly green",
		Recommendation:   "wait before eating",
		DaysToOptimal:    intPtr(4),
	}
	disease := DiseaseRecord{
		IsDiseased:         true,
		DiseasesDetected:   []string{"Anthracnose", "Powdery Mildew"},
		Confidence:         80,
		Severity:           "medium",
		Treatment:          "Remove affected areas",
		PreventiveMeasures: "Store in cool dry place",
	}

	t.Run("classification", func(t *testing.T) {
		data, err := json.Marshal(classification)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		result := Extract(KindClassification, string(data))
		if result.Failed() {
			t.Fatalf("unexpected error result: %+v", result.Err)
		}
		if !reflect.DeepEqual(*result.Classification, classification) {
			t.Fatalf("round trip mismatch: got %+v want %+v", *result.Classification, classification)
		}
	})

	t.Run("ripeness", func(t *testing.T) {
		data, err := json.Marshal(ripeness)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		result := Extract(KindRipeness, string(data))
		if result.Failed() {
			t.Fatalf("unexpected error result: %+v", result.Err)
		}
		if !reflect.DeepEqual(*result.Ripeness, ripeness) {
			t.Fatalf("round trip mismatch: got %+v want %+v", *result.Ripeness, ripeness)
		}
	})

	t.Run("disease", func(t *testing.T) {
		data, err := json.Marshal(disease)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		result := Extract(KindDisease, string(data))
		if result.Failed() {
			t.Fatalf("unexpected error result: %+v", result.Err)
		}
		if !reflect.DeepEqual(*result.Disease, disease) {
			t.Fatalf("round trip mismatch: got %+v want %+v", *result.Disease, disease)
		}
	})
}

func TestExtractToleratesWrapping(t *testing.T) {
	payload := `{"ripeness_stage": "ripe", "confidence": 92}`

	tests := []struct {
		name string
		raw  string
	}{
		{name: "bare", raw: payload},
		{name: "json_fence", raw: "```json\n" + payload + "\n```"},
		{name: "generic_fence", raw: "```\n" + payload + "\n```"},
		{name: "fence_without_close", raw: "```json\n" + payload},
		{name: "surrounding_prose", raw: "Here is the result you asked for:\n" + payload + "\nHope this helps!"},
		{name: "prose_and_whitespace", raw: "   The analysis follows.\n\n" + payload + "  "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			result := Extract(KindRipeness, tt.raw)
			if result.Failed() {
				t.Fatalf("unexpected error result: %+v", result.Err)
			}
			if result.Ripeness.Stage != StageRipe || result.Ripeness.Confidence != 92 {
				t.Fatalf("unexpected record: %+v", *result.Ripeness)
			}
		})
	}
}

func TestExtractBraceScanNestedObject(t *testing.T) {
	raw := `The model says: {"fruit_type": "tomato", "confidence": 75, "extra": {"skin": "smooth"}} and nothing else.`

	result := Extract(KindClassification, raw)
	if result.Failed() {
		t.Fatalf("unexpected error result: %+v", result.Err)
	}
	if result.Classification.FruitType != "tomato" {
		t.Fatalf("expected fruit_type tomato, got %q", result.Classification.FruitType)
	}
}

func TestExtractBraceScanIgnoresBracesInStrings(t *testing.T) {
	raw := `note {"fruit_type": "br{ace", "confidence": 5} end`

	result := Extract(KindClassification, raw)
	if result.Failed() {
		t.Fatalf("unexpected error result: %+v", result.Err)
	}
	if result.Classification.FruitType != "br{ace" {
		t.Fatalf("expected brace-containing fruit_type, got %q", result.Classification.FruitType)
	}
}

func TestExtractFailureYieldsErrorRecord(t *testing.T) {
	raw := strings.Repeat("definitely not json ", 40)

	result := Extract(KindRipeness, raw)
	if !result.Failed() {
		t.Fatalf("expected error result")
	}
	if result.Err.FallbackUsed {
		t.Fatalf("expected fallback_used=false")
	}
	if !strings.HasPrefix(result.Err.Message, "Failed to parse JSON:") {
		t.Fatalf("unexpected error message: %q", result.Err.Message)
	}
	if len([]rune(result.Err.RawResponse)) > 500 {
		t.Fatalf("excerpt exceeds 500 characters: %d", len([]rune(result.Err.RawResponse)))
	}
}

func TestExtractFailureExcerptTruncated(t *testing.T) {
	raw := strings.Repeat("x", 600)

	result := Extract(KindClassification, raw)
	if !result.Failed() {
		t.Fatalf("expected error result")
	}
	if got := len(result.Err.RawResponse); got != 500 {
		t.Fatalf("expected 500-character excerpt, got %d", got)
	}
}

func TestExtractMalformedObject(t *testing.T) {
	result := Extract(KindDisease, `{"is_diseased": tr`)
	if !result.Failed() {
		t.Fatalf("expected error result for truncated object")
	}
}

func TestExtractDiseaseListNeverNil(t *testing.T) {
	result := Extract(KindDisease, `{"is_diseased": false, "confidence": 85}`)
	if result.Failed() {
		t.Fatalf("unexpected error result: %+v", result.Err)
	}
	if result.Disease.DiseasesDetected == nil {
		t.Fatalf("expected empty diseases list, got nil")
	}
	if len(result.Disease.DiseasesDetected) != 0 {
		t.Fatalf("expected no diseases, got %v", result.Disease.DiseasesDetected)
	}
}

func TestExtractNormalizesRipenessStage(t *testing.T) {
	result := Extract(KindRipeness, `{"ripeness_stage": " Ripe ", "confidence": 90}`)
	if result.Failed() {
		t.Fatalf("unexpected error result: %+v", result.Err)
	}
	if result.Ripeness.Stage != StageRipe {
		t.Fatalf("expected normalized stage %q, got %q", StageRipe, result.Ripeness.Stage)
	}
}

func TestStageResultMarshal(t *testing.T) {
	errResult := ErrorResult(ErrorRecord{Message: "boom"})
	data, err := json.Marshal(errResult)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["error"] != "boom" {
		t.Fatalf("expected error field, got %v", decoded)
	}
	if _, ok := decoded["fallback_used"]; !ok {
		t.Fatalf("expected fallback_used field, got %v", decoded)
	}
}
