package surfmap

import (
	"context"
	"fmt"
	"log/slog"
	"surfmap/lib/chrono"
	"surfmap/lib/reportstore"
	"surfmap/lib/scrapers/msw"
	"surfmap/lib/spots"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Fetcher retrieves a report page, failures are carried in the page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) msw.Page
}

// Collector scrapes every spot of a registry into a batch of rows.
type Collector struct {
	fetcher   Fetcher
	extractor msw.Extractor
	clock     chrono.API
}

func NewCollector(fetcher Fetcher, extractor msw.Extractor, clock chrono.API) Collector {
	return Collector{
		fetcher:   fetcher,
		extractor: extractor,
		clock:     clock,
	}
}

// Collect fetches and extracts each spot one at a time in registry order.
// Every row shares the time captured before the first fetch. Spots that
// could not be fetched or have no rating still get a row, an extraction
// error aborts the whole collection.
func (c Collector) Collect(ctx context.Context, registry spots.Registry) (reportstore.Batch, error) {
	ctx, span := tracer.Start(ctx, "Collect")
	defer span.End()

	stamp := chrono.NewStamp(c.clock.Now())
	span.SetAttributes(
		attribute.String("date", stamp.Date),
		attribute.String("time", stamp.Time),
		attribute.Int("spots", registry.Len()),
	)

	batch := make(reportstore.Batch, 0, registry.Len())
	for _, spot := range registry.Spots() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := c.fetcher.Fetch(ctx, spot.URL)
		rating, err := c.extractor.Extract(ctx, page)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "extraction failed")
			return nil, fmt.Errorf("spot %q: %w", spot.Label, err)
		}

		switch {
		case page.Err != nil:
			slog.WarnContext(ctx, "failed to fetch spot", "spot", spot.Label, "err", page.Err)
			spotCounter.Add(ctx, 1, outcomeAttr(outcomeFetchFailed))
		case !rating.Found:
			slog.WarnContext(ctx, "no rating found", "spot", spot.Label, "url", spot.URL)
			spotCounter.Add(ctx, 1, outcomeAttr(outcomeWidgetMissing))
		default:
			slog.DebugContext(
				ctx, "scraped spot",
				"spot", spot.Label,
				"height", rating.HeightLabel,
				"dark", rating.Stars.Dark,
				"light", rating.Stars.Light,
				"empty", rating.Stars.Empty,
			)
			spotCounter.Add(ctx, 1, outcomeAttr(outcomeFound))
		}

		batch = append(batch, NewRow(spot.Label, stamp, rating))
	}

	return batch, nil
}
