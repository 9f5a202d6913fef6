package surfmap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"surfmap/lib/chrono"
	configsqlite "surfmap/lib/configutil/sqlite"
	"surfmap/lib/reportstore"
	"surfmap/lib/reportstore/db"
	"surfmap/lib/scrapers/msw"
	"surfmap/lib/spots"
	"surfmap/lib/telemetry"
	"surfmap/lib/testutil"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

func widgetPage(height string, dark, light, empty int) string {
	var out strings.Builder
	out.WriteString(`<html><body><ul class="rating rating-large clearfix">`)
	fmt.Fprintf(&out, `<li class="rating-text text-dark">  %s  </li>`, height)
	out.WriteString(strings.Repeat(`<li class="active"></li>`, dark))
	out.WriteString(strings.Repeat(`<li class="inactive"></li>`, light))
	out.WriteString(strings.Repeat(`<li class="placeholder"></li>`, empty))
	out.WriteString(`</ul></body></html>`)
	return out.String()
}

func newReportServer(t testing.TB, pages map[string]string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

type runFixture struct {
	dbpath string
	opened int
}

func (f *runFixture) open() (*sql.DB, error) {
	f.opened++
	return configsqlite.Struct{File: f.dbpath}.OpenDB()
}

func (f *runFixture) rows(t testing.TB) reportstore.Batch {
	database, err := configsqlite.Struct{File: f.dbpath}.OpenDB()
	if err != nil {
		t.Fatal(err)
	}
	defer database.Close()

	_, err = database.Exec(db.Schema)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := database.Query("select spot, date, time, surf_ht, stars_dark, stars_light, stars_empty from msw_stars order by rowid")
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	var out reportstore.Batch
	for rows.Next() {
		var r reportstore.Row
		err := rows.Scan(&r.Spot, &r.Date, &r.Time, &r.SurfHeight, &r.StarsDark, &r.StarsLight, &r.StarsEmpty)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, r)
	}
	return out
}

func newFixture(t testing.TB) *runFixture {
	return &runFixture{dbpath: filepath.Join(t.TempDir(), "surf_map.db")}
}

var runTime = time.Date(2024, time.August, 26, 7, 5, 42, 0, time.UTC)

func runOnce(t testing.TB, fixture *runFixture, registry spots.Registry) error {
	client := msw.NewClient(msw.ClientOptions{
		Timeout:                 time.Second * 5,
		DisableCloudflareBypass: true,
	})
	return Run(context.Background(), RunOptions{
		Registry:  registry,
		Collector: NewCollector(client, msw.WidgetExtractor{}, fixedClock(runTime)),
		OpenDB:    fixture.open,
	})
}

func TestRunReport(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:services/surfmap")
	defer cleanup()

	server := newReportServer(t, map[string]string{
		"/a": widgetPage("3-4 ft", 2, 1, 2),
	})
	registry := spots.MustRegistry(spots.Spot{Label: "Spot A", URL: server.URL + "/a"})

	fixture := newFixture(t)
	require.NoError(t, runOnce(t, fixture, registry))

	expected := reportstore.Batch{{
		Spot:       "Spot A",
		Date:       "2024-08-26",
		Time:       "07:05",
		SurfHeight: sql.NullString{String: "3-4 ft", Valid: true},
		StarsDark:  2,
		StarsLight: 1,
		StarsEmpty: 2,
	}}
	if diff := cmp.Diff(expected, fixture.rows(t)); diff != "" {
		t.Fatalf("unexpected rows (-want +got):\n%s", diff)
	}

	// every run appends
	require.NoError(t, runOnce(t, fixture, registry))
	require.Len(t, fixture.rows(t), 2)
}

func TestRunUnreachable(t *testing.T) {
	closed := httptest.NewServer(http.NotFoundHandler())
	link := closed.URL + "/a"
	closed.Close()

	registry := spots.MustRegistry(spots.Spot{Label: "Spot A", URL: link})
	fixture := newFixture(t)
	require.NoError(t, runOnce(t, fixture, registry))

	expected := reportstore.Batch{{
		Spot:       "Spot A",
		Date:       "2024-08-26",
		Time:       "07:05",
		StarsDark:  -1,
		StarsLight: -1,
		StarsEmpty: -1,
	}}
	if diff := cmp.Diff(expected, fixture.rows(t)); diff != "" {
		t.Fatalf("unexpected rows (-want +got):\n%s", diff)
	}
}

func TestRunMixed(t *testing.T) {
	server := newReportServer(t, map[string]string{
		"/ghb":    widgetPage("3-4 ft", 2, 1, 2),
		"/nahant": `<html><body><p>no report</p></body></html>`,
		"/wall":   widgetPage("Flat", 0, 0, 5),
	})
	registry := spots.MustRegistry(
		spots.Spot{Label: "Good Harbor Beach", URL: server.URL + "/ghb"},
		spots.Spot{Label: "Cape Ann", URL: server.URL + "/gone"},
		spots.Spot{Label: "Nahant", URL: server.URL + "/nahant"},
		spots.Spot{Label: "The Wall", URL: server.URL + "/wall"},
	)

	fixture := newFixture(t)
	require.NoError(t, runOnce(t, fixture, registry))

	rows := fixture.rows(t)
	require.Len(t, rows, 4)
	for i, spot := range registry.Spots() {
		require.Equal(t, spot.Label, rows[i].Spot)
		require.Equal(t, rows[0].Date, rows[i].Date)
		require.Equal(t, rows[0].Time, rows[i].Time)
	}
	require.Equal(t, "3-4 ft", rows[0].SurfHeight.String)
	require.False(t, rows[1].SurfHeight.Valid)
	require.False(t, rows[2].SurfHeight.Valid)
	require.Equal(t, "Flat", rows[3].SurfHeight.String)
	require.Equal(t, 5, rows[3].StarsEmpty)
}

func TestRunMalformedPersistsNothing(t *testing.T) {
	server := newReportServer(t, map[string]string{
		"/a": widgetPage("3-4 ft", 2, 1, 2),
		"/b": `<ul class="rating rating-large clearfix"><li class="active"></li></ul>`,
	})
	registry := spots.MustRegistry(
		spots.Spot{Label: "Spot A", URL: server.URL + "/a"},
		spots.Spot{Label: "Spot B", URL: server.URL + "/b"},
	)

	fixture := newFixture(t)
	err := runOnce(t, fixture, registry)
	require.ErrorIs(t, err, msw.ErrMalformedWidget)
	require.Equal(t, 0, fixture.opened)
	require.Empty(t, fixture.rows(t))
}

func TestPersistOpenFailure(t *testing.T) {
	boom := errors.New("no disk")
	err := Persist(context.Background(), func() (*sql.DB, error) {
		return nil, boom
	}, reportstore.Batch{})
	require.ErrorIs(t, err, boom)
}

func TestPersistClosesOnFailure(t *testing.T) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{Name: "services/surfmap"})
	defer cleanup()

	_, err := res.DB.Exec(`create view msw_stars as select 1 as spot`)
	require.NoError(t, err)

	err = Persist(context.Background(), func() (*sql.DB, error) {
		return res.DB, nil
	}, reportstore.Batch{NewRow("Nahant", chrono.NewStamp(runTime), msw.NotFound())})
	require.Error(t, err)

	// the run released its handle
	require.Error(t, res.DB.Ping())
}
