package main

import (
	"embed"
	"log"

	"github.com/toss-sync/toss-desktop/internal/app"
	"github.com/toss-sync/toss-desktop/internal/cfg"
	"github.com/toss-sync/toss-desktop/internal/logger"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if err := logger.SetupLogger(); err != nil {
		log.Printf("failed to set up logger: %v", err)
	}

	config, err := cfg.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	application, err := app.NewApp(config)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	err = wails.Run(&options.App{
		Title:  "Toss",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup:  application.Startup,
		OnDomReady: application.DomReady,
		OnShutdown: application.Shutdown,
		Bind: []interface{}{
			application,
			config,
		},
	})
	if err != nil {
		log.Fatalf("error running app: %v", err)
	}
}
