package main

import (
	"fmt"
	"io"
	"log"
	"runtime"

	"themed-todo/internal/assets"
	"themed-todo/internal/config"
	"themed-todo/internal/controllers"
	"themed-todo/internal/logger"
	"themed-todo/internal/models"
	"themed-todo/internal/shutdown"
	"themed-todo/internal/theme"
	"themed-todo/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Themed To-Do"
	AppID      = "com.themedtodo.app"
	AppVersion = "1.0.0"
)

var _ controllers.TaskView = (*views.MainView)(nil)

// Application holds the wired components of a running window
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  config.Config

	controller *controllers.MainController
	view       *views.MainView
	loader     *assets.Loader
	watcher    *assets.Watcher
	shutdown   *shutdown.Manager
	logCloser  io.Closer
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application, err := NewApplication(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// NewApplication builds the logger, model, loader, view and controller
func NewApplication(cfg config.Config) (*Application, error) {
	appLogger, closer, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(views.WindowTitle)
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	window.CenterOnScreen()

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%dx%d", cfg.WindowWidth, cfg.WindowHeight),
		"go_version":  runtime.Version(),
		"assets_dir":  cfg.AssetsDir,
		"theme":       cfg.InitialTheme,
		"log_level":   cfg.LogLevel,
	})

	tasks := models.NewTaskList(cfg.Placeholder)
	loader := assets.NewLoader(cfg.AssetsDir, appLogger)

	mainView := views.NewMainView(fyneApp, window, cfg.Placeholder)
	mainController := controllers.NewMainController(tasks, loader, appLogger, cfg.Theme())
	mainController.SetMainView(mainView)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: mainController,
		view:       mainView,
		loader:     loader,
		shutdown:   shutdown.NewManager(appLogger),
		logCloser:  closer,
	}

	if cfg.WatchAssets {
		application.watcher = assets.NewWatcher(loader, appLogger, func(t theme.Theme) {
			fyne.Do(func() {
				mainController.ReloadAssets(t)
			})
		})
	}

	application.setupMenus()
	application.setupWindowEvents()
	return application, nil
}

// Run shows the window and blocks until it is closed
func (a *Application) Run() {
	if a.watcher != nil {
		if err := a.watcher.Start(); err != nil {
			a.logger.Error("Application", err, map[string]interface{}{"step": "asset watcher"})
		} else {
			a.shutdown.Register("asset watcher", a.watcher)
		}
	}

	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.view.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "terminated", map[string]interface{}{
		"tasks": a.controller.Status().Total,
	})
	if a.logCloser != nil {
		a.logCloser.Close()
	}
}

// setupWindowEvents configures window lifecycle events
func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
	})
}

func newLogger(cfg config.Config) (logger.Logger, io.Closer, error) {
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.LogFile == "" {
		return logger.NewConsoleLogger(level), nil, nil
	}

	fileLogger, closer, err := logger.NewFileLogger(cfg.LogFile, level)
	if err != nil {
		return nil, nil, err
	}
	return fileLogger, closer, nil
}
