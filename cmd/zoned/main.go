package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/emberkeep/zoneforge/internal/config"
	"github.com/emberkeep/zoneforge/internal/logger"
	"github.com/emberkeep/zoneforge/internal/server"
	"github.com/emberkeep/zoneforge/internal/store"
	"github.com/emberkeep/zoneforge/internal/theme"
)

func main() {
	configFile := flag.String("config", "zoned.yaml", "Path to daemon config YAML file")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	noStore := flag.Bool("no-store", false, "Disable zone persistence")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Listen.Addr = *addr
	}

	cfg.Logging.ApplyEnv()
	logger.Initialize(cfg.Logging)

	loaded, err := theme.LoadDir(cfg.ThemesDir)
	if err != nil {
		logger.Error("failed to load themes", "dir", cfg.ThemesDir, "error", err)
		os.Exit(1)
	}
	library := theme.NewLibrary(loaded)
	logger.Info("themes loaded", "custom", len(loaded))

	var zones *store.Store
	if !*noStore {
		zones, err = store.Open(cfg.Store)
		if err != nil {
			logger.Error("failed to open zone store", "error", err)
			os.Exit(1)
		}
		defer zones.Close()
		logger.Info("zone store open", "driver", cfg.Store.Driver)
	}

	srv := server.New(cfg, library, zones)
	if err := srv.Run(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
