// Package reporter submits OTLP metric payloads to the metrics gateway.
package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"git.home.luguber.info/inful/metricpush/internal/errors"
	"git.home.luguber.info/inful/metricpush/internal/otlp"
	"git.home.luguber.info/inful/metricpush/internal/version"
)

// Reporter delivers one export request per call. Implementations must issue
// at most one outbound request per Push and never retry; retry policy
// belongs to the invoking pipeline.
type Reporter interface {
	Push(ctx context.Context, req *otlp.ExportRequest) error
}

// HTTPReporter POSTs payloads to an OTLP/HTTP endpoint with Basic auth.
type HTTPReporter struct {
	httpClient *http.Client
	endpoint   string
	username   string
	key        string
}

// NewHTTPReporter creates a reporter for the given endpoint and credentials.
// A nil httpClient falls back to a client with no timeout: the push blocks
// until the transport itself gives up, matching the tool's contract.
// Credentials may be empty; the request is sent regardless and the gateway's
// rejection is surfaced to the caller.
func NewHTTPReporter(httpClient *http.Client, endpoint, username, key string) *HTTPReporter {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPReporter{
		httpClient: httpClient,
		endpoint:   endpoint,
		username:   username,
		key:        key,
	}
}

// Push marshals the request and submits it. Exactly one HTTP request is
// issued; all failure modes return a classified error.
func (r *HTTPReporter) Push(ctx context.Context, payload *otlp.ExportRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.InternalError("failed to marshal metrics payload").
			WithCause(err).
			Build()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.ConfigError("failed to create gateway request").
			WithCause(err).
			WithContext("endpoint", r.endpoint).
			Build()
	}
	req.SetBasicAuth(r.username, r.key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "metricpush/"+version.Version)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return errors.NetworkError("failed to reach metrics gateway").
			WithCause(err).
			WithContext("endpoint", r.endpoint).
			Build()
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Read limited body for diagnostics
		limitedBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		bodyStr := strings.ReplaceAll(string(limitedBody), "\n", " ")

		builder := errors.TelemetryError(fmt.Sprintf("gateway rejected metrics: %s", resp.Status))
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			builder = errors.AuthError(fmt.Sprintf("gateway rejected credentials: %s", resp.Status))
		}

		return builder.
			WithContext("status", resp.Status).
			WithContext("code", resp.StatusCode).
			WithContext("endpoint", r.endpoint).
			WithContext("response", bodyStr).
			Build()
	}

	// The response body is not consumed beyond the status line.
	return nil
}
