package analysis

import (
	"encoding/json"
	"strings"
)

const (
	// rawExcerptLimit bounds the diagnostic excerpt attached to parse errors.
	rawExcerptLimit = 500
	// braceScanLimit caps how much text the last-resort brace scan inspects.
	braceScanLimit = 64 << 10
)

// Extract parses raw model output into the record for the given kind. The
// model is instructed to emit pure JSON but sometimes wraps it in prose or
// code fences, so extraction degrades through increasingly permissive
// tiers: fence stripping, a direct parse, and finally a heuristic scan for
// the first brace-delimited object. When every tier fails the parse error
// is returned as an ErrorRecord rather than raised.
func Extract(kind Kind, raw string) StageResult {
	text := strings.TrimSpace(stripFences(raw))

	result, err := parseRecord(kind, text)
	if err == nil {
		return result
	}

	if candidate, ok := scanObject(text); ok {
		if fromScan, scanErr := parseRecord(kind, candidate); scanErr == nil {
			return fromScan
		}
	}

	return ErrorResult(ErrorRecord{
		Message:      "Failed to parse JSON: " + err.Error(),
		RawResponse:  excerpt(text, rawExcerptLimit),
		FallbackUsed: false,
	})
}

func parseRecord(kind Kind, text string) (StageResult, error) {
	switch kind {
	case KindClassification:
		var rec ClassificationRecord
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return StageResult{}, err
		}
		return ClassificationResult(rec), nil
	case KindRipeness:
		var rec RipenessRecord
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return StageResult{}, err
		}
		rec.Stage = strings.ToLower(strings.TrimSpace(rec.Stage))
		return RipenessResult(rec), nil
	case KindDisease:
		var rec DiseaseRecord
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return StageResult{}, err
		}
		rec.Severity = strings.ToLower(strings.TrimSpace(rec.Severity))
		if rec.DiseasesDetected == nil {
			rec.DiseasesDetected = []string{}
		}
		return DiseaseResult(rec), nil
	default:
		return StageResult{}, errUnsupportedKind(kind)
	}
}

type errUnsupportedKind Kind

func (e errUnsupportedKind) Error() string {
	return "unsupported analysis kind: " + string(e)
}

// stripFences returns the content between the first fence pair, preferring
// a fence explicitly tagged as JSON. Text without fences passes through.
func stripFences(s string) string {
	if _, after, ok := strings.Cut(s, "```json"); ok {
		inner, _, _ := strings.Cut(after, "```")
		return inner
	}
	if _, after, ok := strings.Cut(s, "```"); ok {
		inner, _, _ := strings.Cut(after, "```")
		return inner
	}
	return s
}

// scanObject finds the first balanced brace-delimited object in the text.
// It is a heuristic last resort, not a parser: candidates are still handed
// to the real JSON decoder. Input beyond braceScanLimit is ignored.
func scanObject(s string) (string, bool) {
	if len(s) > braceScanLimit {
		s = s[:braceScanLimit]
	}
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

func excerpt(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
