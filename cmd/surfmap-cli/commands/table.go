package commands

import (
	"io"
	"strconv"
	"surfmap/lib/reportstore"
	"surfmap/lib/spots"

	"github.com/jedib0t/go-pretty/v6/table"
)

func renderSpots(out io.Writer, registry spots.Registry) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"#", "Spot", "URL"})
	for i, s := range registry.Spots() {
		t.AppendRow(table.Row{i + 1, s.Label, s.URL})
	}
	t.Render()
}

func renderBatch(out io.Writer, batch reportstore.Batch) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Spot", "Date", "Time", "Surf", "Dark", "Light", "Empty"})
	for _, r := range batch {
		height := "<none>"
		if r.SurfHeight.Valid {
			height = r.SurfHeight.String
		}
		t.AppendRow(table.Row{
			r.Spot, r.Date, r.Time, height,
			strconv.Itoa(r.StarsDark),
			strconv.Itoa(r.StarsLight),
			strconv.Itoa(r.StarsEmpty),
		})
	}
	t.Render()
}
