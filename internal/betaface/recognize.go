package betaface

import (
	"context"

	"github.com/kozaktomas/face-compare/internal/logging"
	"go.uber.org/zap"
)

const recognizeEndpoint = "v2/recognize"

// Recognize compares one source face against the target faces using the
// fixed MinMatchScore threshold and returns the raw JSON response.
func (c *Client) Recognize(ctx context.Context, sourceFaceUUID string, targetFaceUUIDs []string) (RecognizeResponse, error) {
	log := logging.WithOperation(c.logger, "recognize").With(
		zap.String("source", sourceFaceUUID),
		zap.Int("targets", len(targetFaceUUIDs)),
	)

	targets := targetFaceUUIDs
	if targets == nil {
		targets = []string{}
	}

	payload := recognizeRequest{
		APIKey:     c.apiKey,
		FacesUUIDs: []string{sourceFaceUUID},
		Targets:    targets,
		Parameters: recognizeParameters(),
	}

	body, err := c.postJSON(ctx, log, "recognize", recognizeEndpoint, payload)
	if err != nil {
		return nil, err
	}

	return RecognizeResponse(body), nil
}
