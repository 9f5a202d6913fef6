package reportstore

import (
	"context"
	"database/sql"
	"fmt"
	"surfmap/lib/reportstore/db"
	"surfmap/lib/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("surfmap.lib.reportstore")

// Row is a single scraped report as it is persisted. A spot without a
// rating has a NULL SurfHeight and -1 for every star count.
type Row struct {
	Spot       string
	Date       string
	Time       string
	SurfHeight sql.NullString
	StarsDark  int
	StarsLight int
	StarsEmpty int
}

// Batch is every row of one run, in registry order.
type Batch []Row

type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) Store {
	return Store{db: database}
}

// EnsureSchema creates the report table if it does not exist, an existing
// table is left as is.
func (s Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, db.Schema)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Append inserts every row of the batch in a single transaction, either
// all rows are written or none are.
func (s Store) Append(ctx context.Context, batch Batch) error {
	ctx, span := tracer.Start(ctx, "Append")
	defer span.End()
	span.SetAttributes(attribute.Int("rows", len(batch)))

	err := s.append(ctx, batch)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to append batch")
		return fmt.Errorf("append batch: %w", err)
	}
	return nil
}

func (s Store) append(ctx context.Context, batch Batch) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, db.InsertRow)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range batch {
		_, err = stmt.ExecContext(
			ctx,
			row.Spot,
			row.Date,
			row.Time,
			row.SurfHeight,
			row.StarsDark,
			row.StarsLight,
			row.StarsEmpty,
		)
		if err != nil {
			return fmt.Errorf("insert %q: %w", row.Spot, err)
		}
	}

	return tx.Commit()
}
