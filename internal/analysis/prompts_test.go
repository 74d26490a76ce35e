package analysis

import (
	"strings"
	"testing"
)

func TestPromptKnownKinds(t *testing.T) {
	kinds := []Kind{KindClassification, KindRipeness, KindDisease}
	for _, kind := range kinds {
		first := Prompt(kind)
		if first == "" {
			t.Fatalf("expected non-empty prompt for kind %q", kind)
		}
		if second := Prompt(kind); second != first {
			t.Fatalf("expected deterministic prompt for kind %q", kind)
		}
	}
}

func TestPromptUnknownKind(t *testing.T) {
	if got := Prompt(Kind("sweetness")); got != "" {
		t.Fatalf("expected empty prompt for unknown kind, got %q", got)
	}
}

func TestPromptMentionsExpectedFields(t *testing.T) {
	tests := []struct {
		kind  Kind
		field string
	}{
		{kind: KindClassification, field: "fruit_type"},
		{kind: KindRipeness, field: "ripeness_stage"},
		{kind: KindDisease, field: "diseases_detected"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			prompt := Prompt(tt.kind)
			if !strings.Contains(prompt, tt.field) {
				t.Fatalf("prompt for %q does not mention field %q", tt.kind, tt.field)
			}
		})
	}
}
