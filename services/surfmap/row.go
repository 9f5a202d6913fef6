package surfmap

import (
	"database/sql"
	"surfmap/lib/chrono"
	"surfmap/lib/reportstore"
	"surfmap/lib/scrapers/msw"
)

// missingCount is stored for every star count of a spot without a rating.
const missingCount = -1

// NewRow assembles the persisted row of a spot, a rating that was not
// found is stored as (NULL, -1, -1, -1).
func NewRow(spot string, stamp chrono.Stamp, rating msw.Rating) reportstore.Row {
	row := reportstore.Row{
		Spot: spot,
		Date: stamp.Date,
		Time: stamp.Time,
	}
	if !rating.Found {
		row.StarsDark = missingCount
		row.StarsLight = missingCount
		row.StarsEmpty = missingCount
		return row
	}

	row.SurfHeight = sql.NullString{String: rating.HeightLabel, Valid: true}
	row.StarsDark = rating.Stars.Dark
	row.StarsLight = rating.Stars.Light
	row.StarsEmpty = rating.Stars.Empty
	return row
}
