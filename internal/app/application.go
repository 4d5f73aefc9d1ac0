package app

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/mdview/internal/state"
	inputui "github.com/kk-code-lab/mdview/internal/ui/input"
	renderui "github.com/kk-code-lab/mdview/internal/ui/render"
)

// Application represents the running viewer.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.ViewState
	reducer    *statepkg.Reducer
	renderer   *renderui.Renderer
	input      *inputui.Handler
	actionCh   chan statepkg.Action
	watcher    *reloadWatcher
	shouldQuit bool
}

// NewApplication initializes the screen and state for one document. path
// may be empty when fallbackText supplies the content; when both are given
// path wins.
func NewApplication(path, fallbackText string) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	state := statepkg.NewViewState(path, statepkg.NewAsyncParseLoader())
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h
	state.Wrap = true

	actionCh := make(chan statepkg.Action, 16)
	state.SetDispatch(func(action statepkg.Action) {
		select {
		case actionCh <- action:
		default:
			go func() { actionCh <- action }()
		}
	})

	app := &Application{
		screen:   screen,
		state:    state,
		reducer:  statepkg.NewReducer(),
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewHandler(),
		actionCh: actionCh,
	}

	// Kick off the initial parse before the loop starts; the result is
	// delivered through the action channel like any other.
	if path != "" {
		app.apply(statepkg.ReloadAction{})
		watcher, err := startReloadWatcher(path, state.Dispatch)
		if err == nil {
			app.watcher = watcher
		} else {
			state.LastErr = err
		}
	} else {
		app.apply(statepkg.SetSourceAction{Text: fallbackText})
	}

	return app, nil
}

// Close releases the screen and stops background work. In-flight parses
// are cancelled; a worker that already finished delivers into a channel
// nobody reads, which is harmless.
func (app *Application) Close() error {
	if app.watcher != nil {
		app.watcher.Close()
	}
	if token := app.state.ActiveParseToken(); token != 0 && app.state.Loader != nil {
		app.state.Loader.Cancel(token)
	}
	app.screen.Fini()
	return nil
}

func (app *Application) apply(action statepkg.Action) {
	app.state = app.reducer.Reduce(app.state, action)
}
