package betaface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"strings"

	"github.com/kozaktomas/face-compare/internal/logging"
	"go.uber.org/zap"
)

const mediaFileEndpoint = "v2/media/file"

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// UploadFile uploads a single image to the media endpoint and returns the raw
// JSON response. detectionFlags may be empty.
func (c *Client) UploadFile(ctx context.Context, imagePath string, detectionFlags []string) (UploadResponse, error) {
	log := logging.WithOperation(c.logger, "upload").With(zap.String("image", imagePath))

	var body bytes.Buffer
	contentType, err := c.writeUploadForm(&body, imagePath, detectionFlags)
	if err != nil {
		log.Error("could not prepare upload", zap.Error(err))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolveURL(mediaFileEndpoint), &body)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Op: "upload", Path: imagePath, Err: fmt.Errorf("could not create request: %w", err)}
	}
	req.Header.Set("Content-Type", contentType)

	respBody, err := c.send(req, log, "upload", mediaFileEndpoint)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			apiErr.Path = imagePath
		}
		return nil, err
	}

	return UploadResponse(respBody), nil
}

// writeUploadForm writes the multipart form for imagePath to dst and returns
// its content type. The file is closed before returning on every path.
func (c *Client) writeUploadForm(dst io.Writer, imagePath string, detectionFlags []string) (string, error) {
	fileErr := func(err error) error {
		return &Error{Kind: KindFile, Op: "upload", Path: imagePath, Err: err}
	}
	formErr := func(format string, err error) error {
		return &Error{Kind: KindUnknown, Op: "upload", Path: imagePath, Err: fmt.Errorf(format, err)}
	}

	file, err := os.Open(imagePath) //nolint:gosec // user-provided file path for upload
	if err != nil {
		return "", fileErr(err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fileErr(err)
	}
	if info.IsDir() {
		return "", fileErr(errors.New("is a directory"))
	}

	partType, err := sniffContentType(file)
	if err != nil {
		return "", fileErr(err)
	}

	writer := multipart.NewWriter(dst)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(uploadFilename(imagePath))))
	header.Set("Content-Type", partType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", formErr("could not create form file: %w", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return "", fileErr(fmt.Errorf("could not copy file data: %w", err))
	}

	if err := writer.WriteField("api_key", c.apiKey); err != nil {
		return "", formErr("could not write api_key field: %w", err)
	}

	if len(detectionFlags) > 0 {
		flags, err := json.Marshal(detectionFlags)
		if err != nil {
			return "", formErr("could not marshal detection flags: %w", err)
		}
		if err := writer.WriteField("detection_flags", string(flags)); err != nil {
			return "", formErr("could not write detection_flags field: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return "", formErr("could not close writer: %w", err)
	}

	return writer.FormDataContentType(), nil
}
