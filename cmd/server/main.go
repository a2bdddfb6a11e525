package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/pixelarcade/casino-rgs/config"
	"github.com/pixelarcade/casino-rgs/server"
)

func main() {
	// Load .env from cwd or the project root when run from cmd/server.
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../../.env")

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "casino",
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", "error", err)
	}
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatal("setup", "error", err)
	}
	if err := srv.Run(); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
