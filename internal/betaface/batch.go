package betaface

import (
	"context"

	"go.uber.org/zap"
)

// UploadBatch uploads the images one after another and extracts their ids.
// It always returns one result per path, in input order; a failed image never
// stops the batch. onResult, when non-nil, is called after each image.
func (c *Client) UploadBatch(ctx context.Context, imagePaths []string, detectionFlags []string, onResult func(index int, result BatchResult)) []BatchResult {
	results := make([]BatchResult, 0, len(imagePaths))

	for i, imagePath := range imagePaths {
		log := c.logger.With(
			zap.String("image", imagePath),
			zap.Int("index", i+1),
			zap.Int("total", len(imagePaths)),
		)
		log.Info("uploading image")

		result := BatchResult{ImagePath: imagePath}

		resp, err := c.UploadFile(ctx, imagePath, detectionFlags)
		if err != nil {
			log.Warn("failed to upload image", zap.Stringer("kind", KindOf(err)), zap.Error(err))
			result.Err = err
		} else {
			ids := Extract(resp)
			if problem := shapeProblem(resp); problem != "" {
				log.Debug("unexpected upload response shape", zap.String("problem", problem))
			}
			result.Response = resp
			result.IDs = &ids

			if first, ok := ids.FirstFaceUUID(); ok {
				log.Info("image uploaded",
					zap.String("media_uuid", ids.MediaUUID),
					zap.String("first_face_uuid", first),
					zap.Int("faces", len(ids.FaceUUIDs)),
				)
			} else {
				log.Info("image uploaded, no faces detected", zap.String("media_uuid", ids.MediaUUID))
			}
		}

		results = append(results, result)
		if onResult != nil {
			onResult(i, result)
		}
	}

	return results
}
