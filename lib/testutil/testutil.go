package testutil

import (
	"database/sql"
	"surfmap/lib/telemetry"
	"testing"

	_ "modernc.org/sqlite"
)

type ServiceParams struct {
	Name string
	// if unspecified, the database is left empty
	DbSchema string
	// if unspecified, it will use `:memory:`
	DbPath string
}

type ServiceResult struct {
	DB *sql.DB
}

// SetupService sets up telemetry for tests and opens a sqlite database.
// the database is limited to a single connection so `:memory:` databases
// are shared by every query of the test.
func SetupService(t testing.TB, params ServiceParams) (ServiceResult, func()) {
	cleanupTelemetry := telemetry.SetupForTesting(t, "test:"+params.Name)

	dbpath := params.DbPath
	if dbpath == "" {
		dbpath = ":memory:"
	}
	sqlite, err := sql.Open("sqlite", dbpath)
	if err != nil {
		t.Fatal(err)
	}
	sqlite.SetMaxOpenConns(1)

	if params.DbSchema != "" {
		_, err = sqlite.Exec(params.DbSchema)
		if err != nil {
			t.Fatal(err)
		}
	}

	return ServiceResult{DB: sqlite}, func() {
		sqlite.Close()
		cleanupTelemetry()
	}
}

// CountRows returns the number of rows in `table`.
func CountRows(t testing.TB, db *sql.DB, table string) int {
	var count int
	err := db.QueryRow("select count(*) from " + table).Scan(&count)
	if err != nil {
		t.Fatal(err)
	}
	return count
}
