package app

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/toss-sync/toss-desktop/internal/autostart"
	"github.com/toss-sync/toss-desktop/internal/bridge"
	"github.com/toss-sync/toss-desktop/internal/cfg"
	"github.com/toss-sync/toss-desktop/internal/logger"
)

type App struct {
	ctx           context.Context
	config        *cfg.Config
	eventsHandler *eventsHandler
	autoStart     autostart.Manager
	// autoStartChannel lives for the lifetime of the App, keeping the
	// frontend's request surface reachable without global state.
	autoStartChannel *bridge.Channel
}

// NewApp initializes the app.
func NewApp(config *cfg.Config) (*App, error) {
	if config == nil {
		return nil, errors.New("config is nil")
	}

	a := &App{config: config}
	a.autoStartChannel = bridge.NewAutoStartChannel(&observedAutoStart{app: a})
	return a, nil
}

// Startup is called when the app starts.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	a.eventsHandler = newEventsHandler(ctx)
}

func (a *App) DomReady(context.Context) {
	a.config.RunMigrations()
	a.checkStaleAutoStart()
}

func (a *App) Shutdown(context.Context) {}

// InvokeAutoStart dispatches a named auto-start request from the frontend
// and returns its value or named failure.
func (a *App) InvokeAutoStart(method string, args map[string]any) bridge.Response {
	return a.autoStartChannel.Invoke(method, args)
}

// OpenLogsFolder opens the logs directory in the system file manager.
func (a *App) OpenLogsFolder() error {
	if err := logger.OpenLogsDirectory(); err != nil {
		log.Printf("failed to open logs directory: %v", err)
		return err
	}
	return nil
}

// checkStaleAutoStart warns when the auto-start record no longer points at
// the running executable, e.g. after the app has been moved or reinstalled
// into a different location. The record is left untouched: re-enabling is
// the user's call.
func (a *App) checkStaleAutoStart() {
	enabled, err := a.autoStart.IsEnabled()
	if err != nil || !enabled {
		return
	}

	target, err := a.autoStart.Target()
	if err != nil {
		return
	}

	self, err := os.Executable()
	if err != nil {
		return
	}
	if resolved, err := filepath.EvalSymlinks(self); err == nil {
		self = resolved
	}

	if target != self {
		log.Printf("auto-start record points at %q, but the current executable is %q", target, self)
		a.eventsHandler.OnAutoStartStale(target)
	}
}

// observedAutoStart wraps the platform manager so that UI-visible state
// changes are pushed to the frontend as events.
type observedAutoStart struct {
	app *App
}

func (o *observedAutoStart) Enable(execPath string) error {
	if err := o.app.autoStart.Enable(execPath); err != nil {
		if o.app.eventsHandler != nil {
			o.app.eventsHandler.OnAutoStartError(err)
		}
		return err
	}

	if o.app.eventsHandler != nil {
		o.app.eventsHandler.OnAutoStartEnabled()
	}
	return nil
}

func (o *observedAutoStart) Disable() error {
	if err := o.app.autoStart.Disable(); err != nil {
		if o.app.eventsHandler != nil {
			o.app.eventsHandler.OnAutoStartError(err)
		}
		return err
	}

	if o.app.eventsHandler != nil {
		o.app.eventsHandler.OnAutoStartDisabled()
	}
	return nil
}

func (o *observedAutoStart) IsEnabled() (bool, error) {
	return o.app.autoStart.IsEnabled()
}
