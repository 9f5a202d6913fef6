package surfmap

import (
	"surfmap/lib/chrono"
	configsqlite "surfmap/lib/configutil/sqlite"
	"surfmap/lib/restyutil"
	"surfmap/lib/scrapers/msw"
	"time"
)

type HttpConfig struct {
	UserAgent               string `json:"user_agent"`
	TimeoutSeconds          int    `json:"timeout_seconds"`
	DisableCloudflareBypass bool   `json:"disable_cloudflare_bypass"`
}

// Config is read from config.json5 (and config.local.json5) next to
// the binary, every field is optional.
type Config struct {
	Database configsqlite.Struct `json:"database"`
	Http     HttpConfig          `json:"http"`
	Timezone string              `json:"timezone"`
	// RestyDumpDir, when set, receives the full text of every http
	// message while debug logging is on.
	RestyDumpDir string `json:"resty_dump_dir"`
}

const DefaultDatabaseFile = "surf_map.db"

func DefaultConfig() Config {
	return Config{
		Database: configsqlite.Struct{File: DefaultDatabaseFile},
		Http:     HttpConfig{TimeoutSeconds: 30},
		Timezone: chrono.DefaultLocation,
	}
}

// NewCollector builds a collector that fetches over http with the
// configured client options.
func (c Config) NewCollector() (Collector, error) {
	clock, err := chrono.NewStandardImpl(c.Timezone)
	if err != nil {
		return Collector{}, err
	}

	if c.RestyDumpDir != "" {
		out, err := restyutil.NewFilesystemOutput(c.RestyDumpDir)
		if err != nil {
			return Collector{}, err
		}
		msw.SetRestyInstrumentOutput(out)
	}

	client := msw.NewClient(msw.ClientOptions{
		UserAgent:               c.Http.UserAgent,
		Timeout:                 time.Duration(c.Http.TimeoutSeconds) * time.Second,
		DisableCloudflareBypass: c.Http.DisableCloudflareBypass,
	})
	return NewCollector(client, msw.WidgetExtractor{}, clock), nil
}
