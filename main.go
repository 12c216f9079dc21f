package main

import (
	"context"
	"embed"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	gormlogger "gorm.io/gorm/logger"

	"murmur/internal/database"
	"murmur/internal/logger"
	"murmur/internal/services"
	"murmur/internal/utils"
	"murmur/internal/version"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if database.IsDevelopment() {
		if err := utils.LoadEnv(); err != nil {
			fmt.Println("Warning: could not load .env:", err)
		}
	}
	logger.Configure(zerolog.ConsoleWriter{Out: os.Stderr}, os.Getenv("MURMUR_LOG_LEVEL"))
	logger.For("main").Info().
		Str("version", version.Version).
		Str("commit", version.Commit).
		Msg("starting murmur")

	app := NewApp()

	db, err := database.Init(database.Config{
		LogLevel: gormlogger.Warn,
	})
	if err != nil {
		fmt.Println("Error opening settings store:", err)
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	// Create each service
	dbService := services.NewDbServices(db)
	catalogService := services.NewCatalogService()
	keyringService := services.NewKeyringService()

	app.Settings = dbService.Settings
	app.Catalog = catalogService

	// Create application with options
	err = wails.Run(&options.App{
		Title:  version.Name,
		Width:  560,
		Height: 640,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         version.Name,
		},
		BackgroundColour: &options.RGBA{R: 24, G: 26, B: 33, A: 1},
		OnStartup: func(ctx context.Context) {
			app.startup(ctx)
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			dbService.Settings,
			catalogService,
			keyringService,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
