package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/fetch"
	"jobsift-engine/internal/notify"
	"jobsift-engine/internal/run"
	"jobsift-engine/internal/secrets"
	"jobsift-engine/internal/store"

	_ "modernc.org/sqlite"
)

func main() {
	_ = godotenv.Load()

	dataDir := os.Getenv("JOBSIFT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; two sweeps sharing a SQLite file is asking
	// for trouble.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock: %v", err)
	}
	if !locked {
		log.Fatalf("another engine instance holds %s", lock.Path())
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "services.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatal(err)
	}

	apiKey, err := secrets.ScraperAPIKey()
	if err != nil {
		log.Fatal(err)
	}

	var reporter *notify.Reporter
	if cfg.Notify.Enabled {
		token, terr := secrets.TelegramToken()
		if terr != nil {
			log.Fatal(terr)
		}
		reporter, err = notify.New(token, cfg.Notify.ChatID)
		if err != nil {
			log.Fatal(err)
		}
	}

	dbPath := filepath.Join(dataDir, "jobsift.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	for _, svc := range cfg.EnabledServices() {
		if err := store.EnsureTable(db, svc.Table); err != nil {
			log.Fatal(err)
		}
	}

	outDir := cfg.App.OutDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(dataDir, outDir)
	}

	deps := run.Deps{
		DB:     db,
		Fetch:  fetch.New(cfg.Scraper.Endpoint, apiKey),
		Notify: reporter,
		OutDir: outDir,
	}

	added, err := run.Sweep(context.Background(), deps, cfg)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	log.Printf("engine done (db=%s added=%d)", dbPath, added)
}
