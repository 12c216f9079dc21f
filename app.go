package main

import (
	"context"
	"fmt"
	"os"
	goruntime "runtime"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"murmur/internal/database"
	"murmur/internal/events"
	"murmur/internal/models"
	"murmur/internal/services"
	"murmur/internal/version"
)

// App struct
type App struct {
	ctx      context.Context
	Settings services.SettingsService
	Catalog  services.CatalogService
	dbClose  func() error
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	events.EnableRuntimeEmitter()

	if a.Settings != nil {
		a.Settings.Startup(ctx)
	}
	if a.Catalog != nil {
		if err := a.Catalog.Startup(ctx); err != nil {
			runtime.LogError(a.ctx, fmt.Sprintf("failed to load model catalog: %v", err))
		}
	}
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// GetAboutInfo returns the identity block shown on the About panel.
func (a *App) GetAboutInfo() models.AboutInfo {
	return models.AboutInfo{
		Name:    version.Name,
		Version: version.Version,
		Tagline: version.Tagline,
		OS:      goruntime.GOOS,
		Dev:     database.IsDevelopment(),
	}
}

// GetSettings returns the current settings snapshot
func (a *App) GetSettings() (*models.Settings, error) {
	if a.Settings == nil {
		return nil, fmt.Errorf("settings service not available")
	}
	return a.Settings.Current(), nil
}

// UpdateSettings applies edits from the settings screen and returns the
// stored record
func (a *App) UpdateSettings(settings models.Settings) (*models.Settings, error) {
	if a.Settings == nil {
		return nil, fmt.Errorf("settings service not available")
	}

	updated, err := a.Settings.Update(a.ctx, settings)
	if err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to update settings: %v", err))
		return nil, err
	}
	return updated, nil
}

// ResetSettings restores the factory defaults. A failed write is logged
// but does not block the reset; the in-memory record is already back to
// defaults and will be retried on the next save.
func (a *App) ResetSettings() (*models.Settings, error) {
	if a.Settings == nil {
		return nil, fmt.Errorf("settings service not available")
	}

	settings, err := a.Settings.Reset(a.ctx)
	if err != nil {
		runtime.LogWarning(a.ctx, fmt.Sprintf("reset saved with warning: %v", err))
	}

	events.Emit(a.ctx, events.TopicSettings, events.NewSuccess("Settings restored to defaults"))
	return settings, nil
}

// ExportSettings prompts for a destination and writes the current
// settings as pretty-printed JSON. Returns the chosen path, or an empty
// string when the user cancels the dialog.
func (a *App) ExportSettings() (string, error) {
	if a.Settings == nil {
		return "", fmt.Errorf("settings service not available")
	}

	path, err := runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		Title:           "Export Settings",
		DefaultFilename: defaultExportFilename(),
		Filters: []runtime.FileFilter{
			{DisplayName: "JSON (*.json)", Pattern: "*.json"},
		},
	})
	if err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to open save dialog: %v", err))
		events.Emit(a.ctx, events.TopicSettings, events.NewError("Could not open the save dialog"))
		return "", err
	}
	if path == "" {
		// user cancelled
		return "", nil
	}

	payload, err := a.Settings.Export()
	if err != nil {
		events.Emit(a.ctx, events.TopicSettings, events.NewError("Could not export settings"))
		return "", err
	}

	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to write settings export: %v", err))
		events.Emit(a.ctx, events.TopicSettings, events.NewError("Could not write the settings file"))
		return "", err
	}

	events.Emit(a.ctx, events.TopicSettings, events.NewSuccess("Settings exported"))
	return path, nil
}

// ImportSettings prompts for a settings export, merges it over the
// defaults and saves the result. Returns nil without error when the
// user cancels the dialog.
func (a *App) ImportSettings() (*models.Settings, error) {
	if a.Settings == nil {
		return nil, fmt.Errorf("settings service not available")
	}

	path, err := runtime.OpenFileDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Import Settings",
		Filters: []runtime.FileFilter{
			{DisplayName: "JSON (*.json)", Pattern: "*.json"},
		},
	})
	if err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to open file dialog: %v", err))
		events.Emit(a.ctx, events.TopicSettings, events.NewError("Could not open the file dialog"))
		return nil, err
	}
	if path == "" {
		// user cancelled
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to read settings import: %v", err))
		events.Emit(a.ctx, events.TopicSettings, events.NewError("Could not read the selected file"))
		return nil, err
	}

	settings, err := a.Settings.ImportFrom(string(raw))
	if err != nil {
		runtime.LogWarning(a.ctx, fmt.Sprintf("rejected settings import: %v", err))
		events.Emit(a.ctx, events.TopicSettings, events.NewError("The selected file is not a valid settings export"))
		return nil, err
	}

	if err := a.Settings.Persist(a.ctx, settings); err != nil {
		runtime.LogWarning(a.ctx, fmt.Sprintf("imported settings saved with warning: %v", err))
	}

	events.Emit(a.ctx, events.TopicSettings, events.NewSuccess("Settings imported"))
	return settings, nil
}

// defaultExportFilename derives the suggested export name from the app
// name, e.g. murmur-settings.json.
func defaultExportFilename() string {
	return strings.ToLower(version.Name) + "-settings.json"
}
