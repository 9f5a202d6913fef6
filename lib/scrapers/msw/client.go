package msw

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"surfmap/lib/restyutil"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

var (
	// ErrFetch wraps every failure to obtain a document for a page.
	ErrFetch = errors.New("failed to fetch report page")
	// ErrBadStatus is returned when the server answers with a 4xx or 5xx status.
	ErrBadStatus = errors.New("unexpected response status")
)

// Page is the outcome of fetching a report page, either Document or Err is set.
type Page struct {
	URL      string
	Document *goquery.Document
	Err      error
}

type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	UserAgent string
	// Timeout bounds a single request, zero means 30 seconds.
	Timeout time.Duration
	// DisableCloudflareBypass keeps the default transport, tests against
	// local servers set this.
	DisableCloudflareBypass bool
}

func NewClient(opts ClientOptions) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	client := resty.New()
	if !opts.DisableCloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetTimeout(opts.Timeout)

	restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)

	return &Client{http: client}
}

// Fetch performs a GET on the report page and parses the body. Failures
// are reported through Page.Err instead of being returned, a failed fetch
// is an expected outcome for a spot.
func (c *Client) Fetch(ctx context.Context, link string) Page {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", link))

	page := Page{URL: link}

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to make request")
		page.Err = fmt.Errorf("%w: %w", ErrFetch, err)
		return page
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "bad status")
		page.Err = fmt.Errorf("%w: %w: %s", ErrFetch, ErrBadStatus, res.Status())
		return page
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		page.Err = fmt.Errorf("%w: %w", ErrFetch, err)
		return page
	}
	page.Document = doc
	return page
}
