// Package app provides the main application structure and coordination
// for collview. It wires the configuration, the record collection, the
// terminal view and the fixture watcher, and runs the event loop.
package app

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/collections/internal/collection"
	"github.com/dshills/collections/internal/config"
	"github.com/dshills/collections/internal/record"
	"github.com/dshills/collections/internal/script"
	"github.com/dshills/collections/internal/view"
	"github.com/dshills/collections/internal/watch"
)

// Application is the central coordinator for all collview components.
type Application struct {
	mu sync.Mutex

	fs     config.FileSystem
	config *config.Config

	logger  *slog.Logger
	logFile io.Closer

	// Records and the scripts that order and filter them
	items      *collection.Sorted[*record.Record]
	comparator *script.Comparator
	filter     *script.Filter

	// Terminal components
	screen  tcell.Screen
	view    *view.View
	watcher *watch.Watcher
	wg      sync.WaitGroup

	running   atomic.Bool
	closeOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// LogLevel overrides log.level from the configuration when set.
	LogLevel string

	// FS reads the configuration and fixtures. Defaults to the OS file
	// system. The watcher always observes the OS file system.
	FS config.FileSystem
}

// New loads the configuration and the fixture it names.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts: opts,
		fs:   opts.FS,
	}
	if app.fs == nil {
		app.fs = config.DefaultFS()
	}

	if err := app.bootstrap(); err != nil {
		app.close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := config.LoadFS(app.fs, app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.config = cfg

	// 2. Logging
	app.logger, app.logFile, err = newLogger(cfg.Log.File, cfg.LogLevel())
	if err != nil {
		return &InitError{Component: "log", Err: err}
	}

	// 3. Ordering and filtering
	cmp, err := app.comparatorFor(cfg.Sort)
	if err != nil {
		return &InitError{Component: "sort script", Err: err}
	}
	if cfg.Filter.Script != "" {
		app.filter, err = script.NewFilter(cfg.Filter.Script,
			script.WithLogger(app.logger.With("script", "filter")))
		if err != nil {
			return &InitError{Component: "filter script", Err: err}
		}
	}

	// 4. Records
	records, err := config.LoadRecordsFS(app.fs, cfg.SourcePath())
	if err != nil {
		return &InitError{Component: "fixture", Err: err}
	}
	app.items = collection.NewSorted(records, cmp, collection.WithLogger(app.logger))
	app.logger.Info("loaded fixture", "source", cfg.SourcePath(), "records", app.items.Len())

	return nil
}

func (app *Application) comparatorFor(s config.SortConfig) (collection.Comparator[*record.Record], error) {
	var cmp collection.Comparator[*record.Record]
	switch {
	case s.Field != "":
		cmp = record.ByField(s.Field)
	case s.Script != "":
		c, err := script.NewComparator(s.Script, script.WithLogger(app.logger.With("script", "sort")))
		if err != nil {
			return nil, err
		}
		app.comparator = c
		cmp = c.Func()
	default:
		return nil, nil
	}

	if s.Descending {
		cmp = collection.Reverse(cmp)
	}
	return cmp, nil
}

// SetScreen sets the terminal screen.
// Must be called before Run().
func (app *Application) SetScreen(s tcell.Screen) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.screen = s
	return nil
}

// Run initializes the screen and runs the event loop until a quit key or
// Shutdown. A quit key returns ErrQuit; Shutdown returns nil.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	screen := app.screen
	app.mu.Unlock()
	if screen == nil {
		return ErrNoScreen
	}

	if err := screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer screen.Fini()

	if err := app.start(); err != nil {
		return err
	}
	defer app.stop()

	return app.eventLoop()
}

// start attaches the view to the records and starts the watcher.
func (app *Application) start() error {
	opts := []view.Option{
		view.WithTitle(app.config.Title),
		view.WithColumns(app.config.Display.Columns...),
		view.WithLogger(app.logger),
	}
	if app.filter != nil {
		opts = append(opts, view.WithFilter(app.filter))
	}

	v, err := view.New(app.screen, app.items, opts...)
	if err != nil {
		return &InitError{Component: "view", Err: err}
	}
	app.view = v

	if app.config.Watch.Enabled {
		if err := app.startWatcher(); err != nil {
			v.Close()
			return &InitError{Component: "watcher", Err: err}
		}
	}

	app.view.Draw()
	return nil
}

// stop undoes start in reverse order.
func (app *Application) stop() {
	if app.watcher != nil {
		app.watcher.Close()
		app.wg.Wait()
		app.watcher = nil
	}
	if app.view != nil {
		app.view.Close()
	}
}

// Shutdown stops a running event loop, or releases resources when the
// loop is not running. Safe to call from any goroutine and more than once.
func (app *Application) Shutdown() {
	if app.running.Load() {
		app.mu.Lock()
		screen := app.screen
		app.mu.Unlock()
		if screen != nil && screen.PostEvent(tcell.NewEventInterrupt(shutdownRequest{})) == nil {
			return
		}
	}
	app.close()
}

// close releases resources held since New.
func (app *Application) close() {
	app.closeOnce.Do(func() {
		if app.comparator != nil {
			app.comparator.Close()
		}
		if app.filter != nil {
			app.filter.Close()
		}
		if app.logFile != nil {
			app.logFile.Close()
		}
	})
}

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Items returns the record collection.
func (app *Application) Items() *collection.Sorted[*record.Record] {
	return app.items
}

// View returns the view, or nil before Run.
func (app *Application) View() *view.View {
	return app.view
}
