// Package otlp models the OTLP/HTTP JSON metrics payload accepted by the
// Grafana Cloud OTLP gateway.
//
// Only the gauge subset used by metricpush is modeled. Fields follow the
// OpenTelemetry metrics-over-HTTP JSON field names (resourceMetrics →
// scopeMetrics → metrics → gauge → dataPoints). TimeUnixNano is an int64
// JSON number rather than the protobuf-JSON string mapping; the gateway
// accepts both and the CI producer has always emitted a number.
package otlp

import "time"

// ExportRequest is the top-level body POSTed to the /v1/metrics endpoint.
type ExportRequest struct {
	ResourceMetrics []ResourceMetrics `json:"resourceMetrics"`
}

// ResourceMetrics groups metrics by originating resource.
type ResourceMetrics struct {
	ScopeMetrics []ScopeMetrics `json:"scopeMetrics"`
}

// ScopeMetrics groups metrics by instrumentation scope.
type ScopeMetrics struct {
	Metrics []Metric `json:"metrics"`
}

// Metric is a single named metric carrying gauge data.
type Metric struct {
	Name  string `json:"name"`
	Gauge Gauge  `json:"gauge"`
}

// Gauge holds point-in-time readings.
type Gauge struct {
	DataPoints []NumberDataPoint `json:"dataPoints"`
}

// NumberDataPoint is one reading with its timestamp and attributes.
type NumberDataPoint struct {
	AsDouble     float64    `json:"asDouble"`
	TimeUnixNano int64      `json:"timeUnixNano"`
	Attributes   []KeyValue `json:"attributes"`
}

// KeyValue is an OTLP attribute.
type KeyValue struct {
	Key   string   `json:"key"`
	Value AnyValue `json:"value"`
}

// AnyValue carries the attribute value. Only string attributes are emitted.
type AnyValue struct {
	StringValue string `json:"stringValue"`
}

// StringAttr builds a string-valued attribute.
func StringAttr(key, value string) KeyValue {
	return KeyValue{Key: key, Value: AnyValue{StringValue: value}}
}

// DefaultJob is the job attribute stamped on every data point unless
// overridden by configuration.
const DefaultJob = "gitops_pipeline"

// NewGaugeRequest builds the export request for a single gauge reading.
//
// The timestamp is truncated to whole seconds before scaling to nanoseconds,
// so readings carry second-level precision only. The fixed job and instance
// attributes come first; extra attributes follow in the order given.
func NewGaugeRequest(name string, value float64, ts time.Time, job, instance string, extra ...KeyValue) *ExportRequest {
	attrs := make([]KeyValue, 0, 2+len(extra))
	attrs = append(attrs,
		StringAttr("job", job),
		StringAttr("instance", instance),
	)
	attrs = append(attrs, extra...)

	return &ExportRequest{
		ResourceMetrics: []ResourceMetrics{{
			ScopeMetrics: []ScopeMetrics{{
				Metrics: []Metric{{
					Name: name,
					Gauge: Gauge{
						DataPoints: []NumberDataPoint{{
							AsDouble:     value,
							TimeUnixNano: ts.Unix() * int64(time.Second),
							Attributes:   attrs,
						}},
					},
				}},
			}},
		}},
	}
}
