// Package tui implements the terminal user interface: the sign-in flow and
// the main screens (home menu, wizards, lists, detail views) built on Bubble
// Tea.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmoreno/datebook/internal/adapter"
	"github.com/jmoreno/datebook/internal/logger"
	"github.com/jmoreno/datebook/internal/session"
	"github.com/jmoreno/datebook/models"
)

// ErrUserQuit is returned by LoginFlow when the user quits instead of
// signing in.
var ErrUserQuit = errors.New("user quit")

// TUI owns the terminal programs of the client: the sign-in flow and the
// main loop.
type TUI struct {
	session  *session.Session
	identity adapter.ServerAdapter
	log      *logger.Logger
}

// New creates the TUI over the shared session and the server adapter.
func New(sess *session.Session, identity adapter.ServerAdapter, log *logger.Logger) (*TUI, error) {
	if sess == nil || identity == nil {
		return nil, errors.New("tui requires a session and a server adapter")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{session: sess, identity: identity, log: log}, nil
}

// LoginFlow runs the welcome/login/register program and blocks until the user
// signs in or quits. Returns ErrUserQuit when the user chose to leave.
func (t *TUI) LoginFlow(ctx context.Context) (models.Principal, error) {
	pages := map[string]tea.Model{
		"welcome":  NewWelcomeModel(),
		"login":    NewLoginModel(ctx, t.identity),
		"register": NewRegisterModel(ctx, t.identity),
	}

	root := NewRootModel(pages, "welcome")
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return models.Principal{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Principal{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Principal{}, ErrUserQuit
	}
	return result.principal, nil
}

// MainLoop runs the home program and blocks until the user signs out or
// quits. Returns logout=true when the user chose sign-out rather than quit.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainModel(ctx, t.session, t.identity)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
