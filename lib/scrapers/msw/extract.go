package msw

import (
	"context"
	"errors"
	"fmt"
	"surfmap/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	widgetSelector      = "ul.rating.rating-large.clearfix"
	ratingTextSelector  = "li.rating-text.text-dark"
	activeSelector      = "li.active"
	inactiveSelector    = "li.inactive"
	placeholderSelector = "li.placeholder"
)

// ErrMalformedWidget is returned when the rating widget is present
// but does not contain the rating text.
var ErrMalformedWidget = errors.New("rating widget is missing its rating text")

// Stars holds the star counts of a rating widget, the counts are
// reported as found and need not add up to any total.
type Stars struct {
	Dark  int
	Light int
	Empty int
}

// Rating is the result of extracting a report page. The zero value
// means no rating was found on the page.
type Rating struct {
	Found       bool
	HeightLabel string
	Stars       Stars
}

func NotFound() Rating {
	return Rating{}
}

func Found(heightLabel string, stars Stars) Rating {
	return Rating{Found: true, HeightLabel: heightLabel, Stars: stars}
}

// Extractor turns a fetched report page into a rating.
type Extractor interface {
	Extract(ctx context.Context, page Page) (Rating, error)
}

// WidgetExtractor reads the large star rating widget of a magicseaweed
// surf report.
type WidgetExtractor struct{}

func (WidgetExtractor) Extract(ctx context.Context, page Page) (Rating, error) {
	_, span := tracer.Start(ctx, "Extract")
	defer span.End()
	span.SetAttributes(attribute.String("url", page.URL))

	if page.Err != nil || page.Document == nil {
		span.AddEvent("fetch failed")
		return NotFound(), nil
	}

	widget := page.Document.Find(widgetSelector).First()
	if widget.Length() == 0 {
		span.AddEvent("widget not found")
		return NotFound(), nil
	}

	rating, err := ExtractWidget(widget)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed widget")
		return Rating{}, fmt.Errorf("%s: %w", page.URL, err)
	}

	span.SetAttributes(
		attribute.String("height", rating.HeightLabel),
		attribute.Int("stars.dark", rating.Stars.Dark),
		attribute.Int("stars.light", rating.Stars.Light),
		attribute.Int("stars.empty", rating.Stars.Empty),
	)
	return rating, nil
}

// ExtractWidget reads the rating text and star counts from a widget
// selection that is already known to exist.
func ExtractWidget(widget *goquery.Selection) (Rating, error) {
	text := widget.Find(ratingTextSelector)
	if text.Length() == 0 {
		return Rating{}, ErrMalformedWidget
	}

	return Found(htmlutil.TrimmedText(text), Stars{
		Dark:  widget.Find(activeSelector).Length(),
		Light: widget.Find(inactiveSelector).Length(),
		Empty: widget.Find(placeholderSelector).Length(),
	}), nil
}
