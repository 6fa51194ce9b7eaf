package betaface

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// MinMatchScore is the threshold sent with every recognition request.
const MinMatchScore = 0.4

// UploadResponse is the raw JSON body returned by the media upload endpoint.
type UploadResponse []byte

// RecognizeResponse is the raw JSON body returned by the recognition endpoint.
type RecognizeResponse []byte

// HasResults reports whether the response carries a "results" key.
func (r RecognizeResponse) HasResults() bool {
	return len(r) > 0 && gjson.GetBytes(r, "results").Exists()
}

// Indent pretty-prints the response with four-space indentation.
func (r RecognizeResponse) Indent() (string, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, r, "", "    "); err != nil {
		return "", fmt.Errorf("could not indent response: %w", err)
	}
	return out.String(), nil
}

// Identifiers holds the ids extracted from one upload response.
type Identifiers struct {
	MediaUUID string
	FaceUUIDs []string
}

// FirstFaceUUID returns the first detected face, if any.
func (ids Identifiers) FirstFaceUUID() (string, bool) {
	if len(ids.FaceUUIDs) == 0 {
		return "", false
	}
	return ids.FaceUUIDs[0], true
}

// BatchResult is the outcome of uploading one image in a batch.
// Response and IDs are nil when Err is set.
type BatchResult struct {
	ImagePath string
	Response  UploadResponse
	IDs       *Identifiers
	Err       error
}

// OK reports whether the upload succeeded.
func (r BatchResult) OK() bool {
	return r.Err == nil && r.IDs != nil
}

type recognizeRequest struct {
	APIKey     string   `json:"api_key"`
	FacesUUIDs []string `json:"faces_uuids"`
	Targets    []string `json:"targets"`
	Parameters string   `json:"parameters"`
}

func recognizeParameters() string {
	return fmt.Sprintf("min_match_score:%g", MinMatchScore)
}
