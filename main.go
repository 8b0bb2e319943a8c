package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog/log"

	"github.com/ytget/juice-tracker/internal/config"
	"github.com/ytget/juice-tracker/internal/logger"
	"github.com/ytget/juice-tracker/internal/platform"
	"github.com/ytget/juice-tracker/internal/store"
	"github.com/ytget/juice-tracker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.juice-tracker"
	AppName = "Juice Tracker"

	WindowWidth  = 480
	WindowHeight = 640
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	logger.Init(os.Stderr, settings.GetLogLevel(), true)
	log.Info().Str("version", version).Msg("Juice Tracker starting")

	myApp.Settings().SetTheme(ui.NewJuiceTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize storage
	dbPath := settings.GetDatabasePath()
	if err := platform.EnsureParentDir(dbPath); err != nil {
		log.Error().Err(err).Str("path", dbPath).Msg("failed to ensure data directory")
	}

	juiceStore, err := store.Open(settings.GetStorageBackend(), dbPath, settings.GetCacheTTL())
	if err != nil {
		log.Error().Err(err).Str("path", dbPath).Msg("failed to open juice store, falling back to memory")
		juiceStore = store.NewMemoryStore()
	}
	defer func() {
		if err := juiceStore.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close juice store")
		}
	}()

	// Create and setup UI
	ui.NewRootUI(myWindow, juiceStore, settings)

	// Show and run
	myWindow.ShowAndRun()
}
