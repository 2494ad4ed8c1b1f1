package reporter

import (
	"context"
	"encoding/json"
	"io"

	"git.home.luguber.info/inful/metricpush/internal/errors"
	"git.home.luguber.info/inful/metricpush/internal/otlp"
)

// DryRunReporter writes the payload to Out instead of the network.
// It lets pipeline authors inspect the exact body a real run would send.
type DryRunReporter struct {
	Out io.Writer
}

// Push pretty-prints the payload. No network activity occurs.
func (d *DryRunReporter) Push(_ context.Context, payload *otlp.ExportRequest) error {
	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errors.InternalError("failed to marshal metrics payload").
			WithCause(err).
			Build()
	}
	body = append(body, '\n')
	if _, err := d.Out.Write(body); err != nil {
		return errors.InternalError("failed to write dry-run payload").
			WithCause(err).
			Build()
	}
	return nil
}
