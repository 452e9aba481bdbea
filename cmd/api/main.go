package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/gestiondocumental/document-system/internal/api"
	"github.com/gestiondocumental/document-system/internal/infrastructure/config"
	"github.com/gestiondocumental/document-system/internal/infrastructure/db/jsonfile"
	"github.com/gestiondocumental/document-system/pkg/logger"
)

// @title        Document Management API
// @version      1.0
// @description  Flat-file document and user registry with token authentication.
// @BasePath     /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Open the record store; collections are created lazily on first write.
	store, err := jsonfile.Open(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to open record store")
	}

	e := api.NewRouter(store, cfg, log)

	log.Info().Str("port", cfg.Port).Str("data_dir", store.Dir()).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
