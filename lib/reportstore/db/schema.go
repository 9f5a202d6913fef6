package db

import _ "embed"

//go:embed schema.sql
var Schema string

// Table is the name of the append-only table surf reports are written to.
const Table = "msw_stars"

const InsertRow = `insert into msw_stars (
    spot, date, time, surf_ht, stars_dark, stars_light, stars_empty
) values (?, ?, ?, ?, ?, ?, ?)`
