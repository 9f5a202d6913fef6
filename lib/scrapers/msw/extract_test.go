package msw

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"surfmap/lib/telemetry"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func loadPage(t testing.TB, name string) Page {
	f, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		t.Fatal(err)
	}
	return Page{URL: "file://" + name, Document: doc}
}

func TestExtract(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/msw")
	defer cleanup()

	testCases := []struct {
		name     string
		file     string
		expected Rating
	}{
		{
			name:     "Report",
			file:     "report.html",
			expected: Found("3-4 ft", Stars{Dark: 2, Light: 1, Empty: 2}),
		},
		{
			name:     "ClassOrderIgnored",
			file:     "flat.html",
			expected: Found("Flat", Stars{Dark: 0, Light: 0, Empty: 5}),
		},
		{
			name:     "NoWidget",
			file:     "no_widget.html",
			expected: NotFound(),
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			rating, err := WidgetExtractor{}.Extract(context.Background(), loadPage(t, test.file))
			require.NoError(t, err)
			require.Equal(t, test.expected, rating)
		})
	}
}

func TestExtractFetchFailure(t *testing.T) {
	page := Page{
		URL: "https://example.invalid",
		Err: errors.New("dial tcp: no such host"),
	}
	rating, err := WidgetExtractor{}.Extract(context.Background(), page)
	require.NoError(t, err)
	require.Equal(t, NotFound(), rating)
	require.False(t, rating.Found)

	// a document left over alongside an error is never parsed
	withDoc := loadPage(t, "report.html")
	withDoc.Err = ErrFetch
	rating, err = WidgetExtractor{}.Extract(context.Background(), withDoc)
	require.NoError(t, err)
	require.Equal(t, NotFound(), rating)
}

func TestExtractMalformedWidget(t *testing.T) {
	_, err := WidgetExtractor{}.Extract(context.Background(), loadPage(t, "malformed.html"))
	require.ErrorIs(t, err, ErrMalformedWidget)
	require.Contains(t, err.Error(), "malformed.html")
}

func TestExtractWidgetCounts(t *testing.T) {
	for dark := 0; dark <= 3; dark++ {
		for light := 0; light <= 2; light++ {
			for empty := 0; empty <= 2; empty++ {
				var body strings.Builder
				body.WriteString(`<ul class="rating rating-large clearfix"><li class="rating-text text-dark"> 1 ft </li>`)
				body.WriteString(strings.Repeat(`<li class="active"></li>`, dark))
				body.WriteString(strings.Repeat(`<li class="inactive"></li>`, light))
				body.WriteString(strings.Repeat(`<li class="placeholder"></li>`, empty))
				body.WriteString(`</ul>`)

				doc, err := goquery.NewDocumentFromReader(strings.NewReader(body.String()))
				require.NoError(t, err)

				rating, err := WidgetExtractor{}.Extract(context.Background(), Page{Document: doc})
				require.NoError(t, err)
				require.Equal(t, Found("1 ft", Stars{Dark: dark, Light: light, Empty: empty}), rating)
			}
		}
	}
}

func TestExtractUsesFirstWidget(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<ul class="rating rating-large clearfix">
			<li class="rating-text text-dark">2-3 ft</li>
			<li class="active"></li>
		</ul>
		<ul class="rating rating-large clearfix">
			<li class="rating-text text-dark">8-10 ft</li>
			<li class="active"></li>
			<li class="active"></li>
		</ul>
	`))
	require.NoError(t, err)

	rating, err := WidgetExtractor{}.Extract(context.Background(), Page{Document: doc})
	require.NoError(t, err)
	require.Equal(t, Found("2-3 ft", Stars{Dark: 1}), rating)
}
