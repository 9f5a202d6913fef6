package commands

import (
	"log/slog"
	"surfmap/lib/configutil"
	"surfmap/lib/serviceutil"
	"surfmap/lib/spots"
	"surfmap/lib/telemetry"
	"surfmap/services/surfmap"
	"time"

	"github.com/spf13/cobra"
)

var scrapeDb *string
var scrapeDryRun *bool

func init() {
	scrapeDb = scrapeCmd.Flags().String("db", "", "The database to write scrape results to, overrides the config.")
	scrapeDryRun = scrapeCmd.Flags().Bool("dry-run", false, "Print the batch instead of writing it.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--db <path/to/output.db>] [--dry-run]",
	Short: "Scrapes every spot once and appends the reports to a database.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg, err := configutil.ReadConfigOr("config.json5", surfmap.DefaultConfig())
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		if *scrapeDb != "" {
			cfg.Database.File = *scrapeDb
			cfg.Database.Url = ""
		}

		tel, err := telemetry.SetupFromEnv(ctx, "surfmap-cli")
		if err != nil {
			serviceutil.Fatal("failed to setup telemetry", err)
		}
		defer tel.Shutdown(ctx)

		collector, err := cfg.NewCollector()
		if err != nil {
			serviceutil.Fatal("failed to create collector", err)
		}
		registry := spots.NewEngland()

		t1 := time.Now()
		if *scrapeDryRun {
			batch, err := collector.Collect(ctx, registry)
			if err != nil {
				serviceutil.Fatal("failed to collect", err)
			}
			renderBatch(cmd.OutOrStdout(), batch)
		} else {
			err = surfmap.Run(ctx, surfmap.RunOptions{
				Registry:  registry,
				Collector: collector,
				OpenDB:    cfg.Database.OpenDB,
			})
			if err != nil {
				serviceutil.Fatal("run failed", err)
			}
		}
		t2 := time.Now()

		slog.Info("scraping time", "seconds", t2.Sub(t1).Seconds())
	},
}
