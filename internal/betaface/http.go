package betaface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// logBodyLimit is how many characters of a response body end up in logs and errors.
const logBodyLimit = 200

// truncate shortens s to at most limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// postJSON marshals requestBody and posts it to endpoint.
func (c *Client) postJSON(ctx context.Context, log *zap.Logger, op, endpoint string, requestBody any) ([]byte, error) {
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Op: op, Err: fmt.Errorf("could not marshal request body: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolveURL(endpoint), bytes.NewReader(jsonBody))
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Op: op, Err: fmt.Errorf("could not create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req, log, op, endpoint)
}

// send performs the request and returns the body of a 2xx JSON response.
// Every failure is logged and returned as *Error.
func (c *Client) send(req *http.Request, log *zap.Logger, op, endpoint string) ([]byte, error) {
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req) //nolint:gosec // URL built from the configured base URL via resolveURL
	if err != nil {
		log.Error("request failed", zap.Error(err))
		return nil, &Error{Kind: KindTransport, Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("could not read response body", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, &Error{Kind: KindTransport, Op: op, Err: fmt.Errorf("could not read response body: %w", err)}
	}

	log.Info("response received",
		zap.Int("status", resp.StatusCode),
		zap.String("body", truncate(string(body), logBodyLimit)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("request failed", zap.Int("status", resp.StatusCode))
		return nil, &Error{
			Kind:       KindStatus,
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body), logBodyLimit),
			Err:        fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	if !gjson.ValidBytes(body) {
		log.Error("response is not valid JSON")
		return nil, &Error{Kind: KindMalformed, Op: op, Err: errors.New("response body is not valid JSON")}
	}

	c.captureResponse(endpoint, body)

	return body, nil
}
