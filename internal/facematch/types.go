// Package facematch runs the upload-then-compare workflow on top of the Betaface client.
// It is shared between the compare command and its tests.
package facematch

import (
	"context"
	"errors"

	"github.com/kozaktomas/face-compare/internal/betaface"
)

// ErrNotEnoughFaces is returned by PlanComparison when fewer than two faces were found.
var ErrNotEnoughFaces = errors.New("not enough faces detected for comparison, need at least 2 faces")

// API is the part of the Betaface client the workflow needs.
type API interface {
	UploadBatch(ctx context.Context, imagePaths []string, detectionFlags []string, onResult func(index int, result betaface.BatchResult)) []betaface.BatchResult
	Recognize(ctx context.Context, sourceFaceUUID string, targetFaceUUIDs []string) (betaface.RecognizeResponse, error)
}

// Outcome describes how the comparison step ended
type Outcome string

const (
	OutcomeSkipped Outcome = "skipped" // fewer than two faces, no request sent
	OutcomeFailed  Outcome = "failed"  // request failed or response has no results
	OutcomeMatched Outcome = "matched" // response carries results
)

// Plan is one recognition request: the first face against all the others.
type Plan struct {
	Source  string
	Targets []string
}

// Observer receives progress while Run executes. Nil fields are ignored.
type Observer struct {
	OnUpload  func(index int, result betaface.BatchResult)
	OnCompare func(plan Plan)
}

// Report is the full outcome of Run.
type Report struct {
	Results   []betaface.BatchResult
	FaceUUIDs []string
	Plan      *Plan                      // nil when the comparison was skipped
	Response  betaface.RecognizeResponse // nil unless the recognition request succeeded
	Err       error                      // ErrNotEnoughFaces or the recognition error
}
