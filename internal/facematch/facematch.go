package facematch

import (
	"context"

	"github.com/kozaktomas/face-compare/internal/betaface"
)

// CollectFaceUUIDs returns the face ids of all successful uploads in upload order.
func CollectFaceUUIDs(results []betaface.BatchResult) []string {
	faceUUIDs := []string{}
	for _, r := range results {
		if r.IDs == nil {
			continue
		}
		faceUUIDs = append(faceUUIDs, r.IDs.FaceUUIDs...)
	}
	return faceUUIDs
}

// PlanComparison uses the first face as the source and every other face as a target.
func PlanComparison(faceUUIDs []string) (Plan, error) {
	if len(faceUUIDs) < 2 {
		return Plan{}, ErrNotEnoughFaces
	}
	return Plan{
		Source:  faceUUIDs[0],
		Targets: append([]string(nil), faceUUIDs[1:]...),
	}, nil
}

// Run uploads all images, then compares the first detected face against the
// rest. No recognition request is sent when fewer than two faces were found.
func Run(ctx context.Context, api API, imagePaths []string, detectionFlags []string, obs Observer) *Report {
	report := &Report{}
	report.Results = api.UploadBatch(ctx, imagePaths, detectionFlags, obs.OnUpload)
	report.FaceUUIDs = CollectFaceUUIDs(report.Results)

	plan, err := PlanComparison(report.FaceUUIDs)
	if err != nil {
		report.Err = err
		return report
	}
	report.Plan = &plan

	if obs.OnCompare != nil {
		obs.OnCompare(plan)
	}

	resp, err := api.Recognize(ctx, plan.Source, plan.Targets)
	if err != nil {
		report.Err = err
		return report
	}
	report.Response = resp
	return report
}

// Outcome classifies the comparison step.
func (r *Report) Outcome() Outcome {
	switch {
	case r.Plan == nil:
		return OutcomeSkipped
	case r.Err != nil || !r.Response.HasResults():
		return OutcomeFailed
	default:
		return OutcomeMatched
	}
}

// Uploaded returns how many images were uploaded successfully.
func (r *Report) Uploaded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}
