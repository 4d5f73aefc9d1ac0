package app

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/mdview/internal/state"
)

// Run drives the event loop until the user quits. All state mutation
// happens on this goroutine; parse workers re-enter through the action
// channel.
func (app *Application) Run() {
	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	app.render()

	for !app.shouldQuit {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return
			}
			app.handleEvent(ev)
		case action := <-app.actionCh:
			app.apply(action)
		}
		app.drainActions()
		app.render()
	}
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		app.apply(statepkg.ResizeAction{Width: w, Height: h})
		app.screen.Sync()
	default:
		actions, quit := app.input.HandleEvent(ev)
		if quit {
			app.shouldQuit = true
			return
		}
		for _, action := range actions {
			app.apply(action)
		}
	}
}

// drainActions applies everything already queued so one keypress worth of
// work ends in a single repaint.
func (app *Application) drainActions() {
	for {
		select {
		case action := <-app.actionCh:
			app.apply(action)
		default:
			return
		}
	}
}

func (app *Application) render() {
	app.state.ContentLines = app.renderer.Render(app.state)
}
