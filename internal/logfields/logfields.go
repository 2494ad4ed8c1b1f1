package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyMetric     = "metric"
	KeyValue      = "value"
	KeyEndpoint   = "endpoint"
	KeyPipelineID = "pipeline_id"
	KeyReportID   = "report_id"
	KeyStatus     = "status"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Metric(name string) slog.Attr      { return slog.String(KeyMetric, name) }
func Value(v float64) slog.Attr         { return slog.Float64(KeyValue, v) }
func Endpoint(url string) slog.Attr     { return slog.String(KeyEndpoint, url) }
func PipelineID(id string) slog.Attr    { return slog.String(KeyPipelineID, id) }
func ReportID(id string) slog.Attr      { return slog.String(KeyReportID, id) }
func Status(s string) slog.Attr         { return slog.String(KeyStatus, s) }
func DurationMS(ms float64) slog.Attr   { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
