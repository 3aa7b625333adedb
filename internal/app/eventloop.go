package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/collections/internal/config"
	"github.com/dshills/collections/internal/view"
	"github.com/dshills/collections/internal/watch"
)

// shutdownRequest is posted to the screen by Shutdown.
type shutdownRequest struct{}

// eventLoop is the main application loop. Every collection mutation
// happens on this goroutine; the watcher only posts events to the screen.
func (app *Application) eventLoop() error {
	for {
		ev := app.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := app.handleEvent(ev); err != nil {
			if err == errShutdown {
				return nil
			}
			return err
		}
	}
}

// handleEvent processes a screen event.
// Returns ErrQuit if the application should exit.
func (app *Application) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.screen.Sync()
		app.view.Draw()
	case *tcell.EventKey:
		return app.handleKey(ev)
	case *tcell.EventInterrupt:
		return app.handleInterrupt(ev)
	}
	return nil
}

func (app *Application) handleKey(ev *tcell.EventKey) error {
	switch app.view.HandleKey(ev) {
	case view.ActionQuit:
		return ErrQuit
	case view.ActionReload:
		app.Reload()
	}
	return nil
}

func (app *Application) handleInterrupt(ev *tcell.EventInterrupt) error {
	switch data := ev.Data().(type) {
	case shutdownRequest:
		return errShutdown
	case watch.Change:
		app.logger.Debug("fixture changed", "path", data.Path, "op", data.Op.String())
		app.Reload()
	}
	return nil
}

// Reload reads the fixture again and syncs it into the collection. The
// view redraws through its change subscription; only the status line is
// set here.
func (app *Application) Reload() (watch.Result, error) {
	records, err := config.LoadRecordsFS(app.fs, app.config.SourcePath())
	if err != nil {
		app.logger.Warn("reload failed", "source", app.config.SourcePath(), "err", err)
		app.status("reload failed: %v", err)
		return watch.Result{}, err
	}

	res, err := watch.Sync(app.items, records, app.config.Key)
	if err != nil {
		app.logger.Warn("sync failed", "err", err)
		app.status("sync failed: %v", err)
		return res, err
	}
	if app.comparator != nil {
		if err := app.comparator.Err(); err != nil {
			app.logger.Warn("sort script failed", "err", err)
		}
	}

	app.logger.Info("reloaded fixture",
		"added", res.Added,
		"removed", res.Removed,
		"replaced", res.Replaced,
		"kept", res.Kept,
	)
	if !res.Changed() {
		app.status("no changes")
	}
	return res, nil
}

func (app *Application) status(format string, args ...any) {
	if app.view == nil {
		return
	}
	app.view.SetStatus(format, args...)
}

func (app *Application) startWatcher() error {
	w, err := watch.New(app.config.SourcePath(),
		watch.WithDebounce(app.config.Watch.Debounce.Std()),
		watch.WithLogger(app.logger),
	)
	if err != nil {
		return err
	}
	app.watcher = w

	app.wg.Add(1)
	go app.forward(w)
	return nil
}

// forward posts watcher changes to the screen until the watcher closes.
func (app *Application) forward(w *watch.Watcher) {
	defer app.wg.Done()

	changes, errs := w.Changes(), w.Errors()
	for changes != nil || errs != nil {
		select {
		case c, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			if err := app.screen.PostEvent(tcell.NewEventInterrupt(c)); err != nil {
				app.logger.Warn("dropped fixture change", "err", err)
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			app.logger.Warn("watch error", "err", err)
		}
	}
}
