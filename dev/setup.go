package main

import (
	"context"
	"fmt"
	"os"
	devenv "surfmap/dev/env"
	configsqlite "surfmap/lib/configutil/sqlite"
	"surfmap/lib/reportstore"
)

const devDatabase = "<dev_state>/surf_map.db"

func CreateReportDB() error {
	path, err := devenv.ResolvePath(devDatabase)
	if err != nil {
		return err
	}
	fmt.Println("ensuring report database at", path)

	db, err := configsqlite.Struct{File: devDatabase}.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()
	return reportstore.NewStore(db).EnsureSchema(context.Background())
}

const localConfig = `{
  // written by dev/main.go, runs from the repository root use the dev database
  database: {
    file: "<dev_state>/surf_map.db",
  },
  resty_dump_dir: "<dev_state>/resty",
}
`

func WriteLocalConfig() error {
	_, err := os.Stat("config.local.json5")
	if err == nil {
		fmt.Println("config.local.json5 already exists, leaving it as is")
		return nil
	}
	fmt.Println("writing config.local.json5")
	return os.WriteFile("config.local.json5", []byte(localConfig), 0644)
}
