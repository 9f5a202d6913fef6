package main

import (
	"context"
	"surfmap/lib/configutil"
	"surfmap/lib/serviceutil"
	"surfmap/lib/spots"
	"surfmap/lib/telemetry"
	"surfmap/services/surfmap"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.InitSlog(false)

	config, err := configutil.ReadConfigOr("config.json5", surfmap.DefaultConfig())
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}

	t, err := telemetry.SetupFromEnv(ctx, "surfmap")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}

	collector, err := config.NewCollector()
	if err != nil {
		serviceutil.Fatal("failed to create collector", err)
	}

	err = surfmap.Run(ctx, surfmap.RunOptions{
		Registry:  spots.NewEngland(),
		Collector: collector,
		OpenDB:    config.Database.OpenDB,
	})
	shutdownErr := t.Shutdown(context.Background())
	if err != nil {
		serviceutil.Fatal("run failed", err)
	}
	if shutdownErr != nil {
		serviceutil.Fatal("failed to flush telemetry", shutdownErr)
	}
}
