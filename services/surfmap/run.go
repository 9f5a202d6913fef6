package surfmap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"surfmap/lib/reportstore"
	"surfmap/lib/spots"

	"go.opentelemetry.io/otel/codes"
)

// OpenDB acquires the database a run writes to, the run closes it.
type OpenDB func() (*sql.DB, error)

type RunOptions struct {
	Registry  spots.Registry
	Collector Collector
	OpenDB    OpenDB
}

// Run performs a single pass: every spot is collected before the store
// is opened, then the batch is appended in one transaction.
func Run(ctx context.Context, opts RunOptions) error {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	batch, err := opts.Collector.Collect(ctx, opts.Registry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "collect failed")
		return fmt.Errorf("collect: %w", err)
	}

	err = Persist(ctx, opts.OpenDB, batch)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist failed")
		return err
	}

	slog.InfoContext(ctx, "run complete", "rows", len(batch))
	return nil
}

// Persist opens the store, ensures its schema and appends the batch. The
// database is closed on every path.
func Persist(ctx context.Context, open OpenDB, batch reportstore.Batch) (err error) {
	database, err := open()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		closeErr := database.Close()
		if closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close store: %w", closeErr))
		}
	}()

	store := reportstore.NewStore(database)
	err = store.EnsureSchema(ctx)
	if err != nil {
		return err
	}
	err = store.Append(ctx, batch)
	if err != nil {
		return err
	}

	rowsAppended.Add(ctx, int64(len(batch)))
	return nil
}
