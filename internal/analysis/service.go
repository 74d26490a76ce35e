package analysis

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/google/uuid"

	"valor-backend/internal/shared/metrics"
	"valor-backend/internal/shared/telemetry"
	"valor-backend/internal/vision"
)

// Analysis modes reported to clients.
const (
	ModeOnline  = "online"
	ModeOffline = "offline"
)

// Service orchestrates the three-stage analysis pipeline against a vision
// backend. It holds no per-request state; a single instance serves all
// requests concurrently.
type Service struct {
	Vision       vision.Client
	Offline      vision.Client
	OfflineMode  bool
	StageTimeout time.Duration
}

// Mode returns the analysis mode the service is operating in.
func (s *Service) Mode() string {
	if s.OfflineMode {
		return ModeOffline
	}
	return ModeOnline
}

// FullAnalysis runs classification, then ripeness and disease detection,
// then the recommendation step. Classification gates the rest: ripeness
// and disease assessment of an unidentified object is meaningless, and
// skipping them saves two remote calls. Any panic in the pipeline is
// converted into a top-level error so callers always get a well-formed
// report.
func (s *Service) FullAnalysis(ctx context.Context, img image.Image, language string) (report Report) {
	analysisID := uuid.NewString()
	startedAt := time.Now()
	metrics.IncAnalysisStarted()

	report = Report{Language: language, AnalysisMode: s.Mode()}
	defer func() {
		if rec := recover(); rec != nil {
			metrics.IncAnalysisFailed()
			telemetry.Error("analysis.panic", map[string]any{
				"analysis_id": analysisID,
				"error":       fmt.Sprintf("%v", rec),
			})
			report = Report{
				Language:     language,
				AnalysisMode: s.Mode(),
				Error:        fmt.Sprintf("%v", rec),
				Message:      "Analysis failed. Please try again.",
			}
		}
	}()

	classification := s.RunStage(ctx, img, KindClassification)
	report.Classification = &classification
	if classification.Failed() {
		report.Message = "Could not identify produce type"
		s.logComplete(analysisID, report, startedAt)
		return report
	}

	// Ripeness and disease depend on classification success but not on
	// each other; issue them concurrently. A panic inside either goroutine
	// would escape the deferred recover above, so each captures its panic
	// value and the main goroutine re-raises it after the join.
	var ripeness, disease StageResult
	var ripenessPanic, diseasePanic any
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer func() { ripenessPanic = recover() }()
		ripeness = s.RunStage(ctx, img, KindRipeness)
	}()
	go func() {
		defer wg.Done()
		defer func() { diseasePanic = recover() }()
		disease = s.RunStage(ctx, img, KindDisease)
	}()
	wg.Wait()
	if ripenessPanic != nil {
		panic(ripenessPanic)
	}
	if diseasePanic != nil {
		panic(diseasePanic)
	}

	report.Ripeness = &ripeness
	report.Disease = &disease

	var rec Recommendation
	if !ripeness.Failed() && !disease.Failed() {
		rec = Recommend(*ripeness.Ripeness, *disease.Disease, language)
	} else {
		rec = RetryRecommendation()
	}
	report.Recommendation = &rec

	s.logComplete(analysisID, report, startedAt)
	return report
}

// RunStage executes one analysis stage: build the prompt, make a single
// remote call, extract the structured record. Every failure mode comes
// back as an ErrorRecord; this method never returns an error.
func (s *Service) RunStage(ctx context.Context, img image.Image, kind Kind) StageResult {
	prompt := Prompt(kind)
	if prompt == "" {
		return ErrorResult(ErrorRecord{Message: "unsupported analysis kind: " + string(kind)})
	}

	backend := s.backend()
	callCtx := ctx
	if s.StageTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.StageTimeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := backend.Complete(callCtx, img, prompt)
	metrics.ObserveVisionRequestMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncStageError()
		telemetry.Error("stage.error", map[string]any{
			"stage":   string(kind),
			"backend": backend.Name(),
			"error":   err.Error(),
		})
		return ErrorResult(ErrorRecord{
			Message:      err.Error(),
			FallbackUsed: errors.Is(err, vision.ErrOfflineUnavailable),
		})
	}

	result := Extract(kind, raw)
	if result.Failed() {
		metrics.IncStageError()
		telemetry.Error("stage.parse_error", map[string]any{
			"stage":   string(kind),
			"backend": backend.Name(),
			"error":   result.Err.Message,
		})
	}
	return result
}

func (s *Service) backend() vision.Client {
	if s.OfflineMode {
		return s.Offline
	}
	return s.Vision
}

func (s *Service) logComplete(analysisID string, report Report, startedAt time.Time) {
	metrics.IncAnalysisCompleted()
	action := ""
	if report.Recommendation != nil {
		action = report.Recommendation.Action
	}
	telemetry.Info("analysis.complete", map[string]any{
		"analysis_id":   analysisID,
		"language":      report.Language,
		"analysis_mode": report.AnalysisMode,
		"action":        action,
		"duration_ms":   float64(time.Since(startedAt).Microseconds()) / 1000.0,
	})
}
