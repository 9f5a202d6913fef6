package surfmap

import (
	"surfmap/lib/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var tracer = telemetry.Tracer("surfmap.services.surfmap")
var meter = telemetry.Meter("surfmap.services.surfmap")

var spotCounter, _ = meter.Int64Counter(
	"surfmap.spots",
	metric.WithDescription("spots scraped, by outcome"),
)
var rowsAppended, _ = meter.Int64Counter(
	"surfmap.rows_appended",
	metric.WithDescription("report rows committed to the store"),
)

const (
	outcomeFound         = "found"
	outcomeFetchFailed   = "fetch_failed"
	outcomeWidgetMissing = "widget_missing"
)

func outcomeAttr(outcome string) metric.AddOption {
	return metric.WithAttributes(attribute.String("outcome", outcome))
}
