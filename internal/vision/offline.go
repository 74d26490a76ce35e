package vision

import (
	"context"
	"image"
)

// OfflineClient is a stub for local on-device inference. It satisfies the
// same per-stage contract as the remote backends so the orchestrator can
// swap in a real local model later without changes.
//
// TODO: back this with a local TFLite/ONNX model invocation.
type OfflineClient struct{}

// Name identifies the backend in reports and logs.
func (OfflineClient) Name() string { return "offline" }

// Complete returns ErrOfflineUnavailable.
func (OfflineClient) Complete(context.Context, image.Image, string) (string, error) {
	return "", ErrOfflineUnavailable
}

var _ Client = OfflineClient{}
