package client

import (
	"context"
	"errors"

	"github.com/jmoreno/datebook/internal/adapter"
	"github.com/jmoreno/datebook/internal/logger"
	"github.com/jmoreno/datebook/internal/session"
	"github.com/jmoreno/datebook/internal/tui"
	"github.com/jmoreno/datebook/internal/workers"
	"github.com/jmoreno/datebook/models"
)

// App is the client runtime: the sign-in flow followed by the main loop,
// repeated after every sign-out.
type App struct {
	identity adapter.ServerAdapter
	session  *session.Session
	tui      *tui.TUI
	warmUp   *workers.Workers
	log      *logger.Logger
}

// NewApp wires the client runtime together. The identity watcher triggers
// the cache warm-up on sign-in and a full session reset on sign-out.
func NewApp(identity adapter.ServerAdapter, sess *session.Session, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if identity == nil || sess == nil || ui == nil {
		return nil, errors.New("client app requires an adapter, a session, and a tui")
	}
	if log == nil {
		log = logger.Nop()
	}

	app := &App{identity: identity, session: sess, tui: ui, log: log}
	app.warmUp = workers.NewWorkers(workers.WorkerFunc(app.loadAll))
	return app, nil
}

// Run blocks until the user quits the client.
func (a *App) Run() error {
	ctx := context.Background()

	cancelWatch := a.identity.Watch(func(principal *models.Principal) {
		if principal == nil {
			a.session.Reset()
			return
		}
		a.log.Info().Int64("user_id", principal.UserID).Msg("warming up caches")
		a.warmUp.Run()
	})
	defer cancelWatch()

	for {
		if _, ok := a.identity.Current(); !ok {
			if _, err := a.tui.LoginFlow(ctx); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return err
			}
		}

		logout, err := a.tui.MainLoop(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
		a.identity.SignOut()
	}
}

// loadAll refreshes both caches without blocking the watcher callback.
func (a *App) loadAll() {
	go func() {
		ctx := context.Background()
		if err := a.session.LoadPeople(ctx); err != nil {
			a.log.Error().Err(err).Msg("warm-up load people")
		}
		if err := a.session.LoadDates(ctx); err != nil {
			a.log.Error().Err(err).Msg("warm-up load dates")
		}
	}()
}
