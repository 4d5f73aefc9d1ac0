package state

// Reducer applies actions to the view state. All mutation happens here, on
// the event-loop goroutine; async work only ever re-enters through
// dispatched actions.
type Reducer struct{}

func NewReducer() *Reducer {
	return &Reducer{}
}

// Reduce handles one action. It returns the same state pointer; the return
// value exists so call sites read naturally in the loop.
func (r *Reducer) Reduce(state *ViewState, action Action) *ViewState {
	switch a := action.(type) {
	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.clampScroll()
		return state

	case ScrollAction:
		delta := a.Delta
		if a.Page {
			page := state.ScreenHeight - 1
			if page < 1 {
				page = 1
			}
			delta *= page
		}
		state.ScrollOffset += delta
		state.clampScroll()
		return state

	case ScrollToAction:
		if a.Bottom {
			state.ScrollOffset = state.MaxScroll()
		} else {
			state.ScrollOffset = a.Offset
		}
		state.clampScroll()
		return state

	case ToggleWrapAction:
		state.Wrap = !state.Wrap
		state.clampScroll()
		return state

	case SetSourceAction:
		state.SourcePath = a.Path
		r.startParse(state, a.Path, a.Text)
		return state

	case ReloadAction:
		if state.SourcePath == "" {
			return state
		}
		r.startParse(state, state.SourcePath, "")
		return state

	case ParseResultAction:
		// Last request wins: anything but the active token is a stale
		// worker finishing late and its result is discarded.
		if a.Token != state.ActiveParseToken() {
			return state
		}
		state.activeParseToken = 0

		if a.Err != nil {
			// Keep the previous document visible; the failure is surfaced
			// in the status line.
			state.LastErr = a.Err
			if state.Doc != nil {
				state.Status = DocReady
			} else {
				state.Status = DocNone
			}
			return state
		}

		state.LastErr = nil
		state.Doc = a.Doc
		state.Status = DocReady
		state.clampScroll()
		return state
	}

	return state
}

// startParse supersedes any in-flight parse with a new request. The old
// worker keeps running; its token is cancelled so a completed result is
// dropped either by the loader's context check or by the token comparison
// on delivery.
func (r *Reducer) startParse(state *ViewState, path, text string) {
	loader := state.Loader
	dispatch := state.getDispatch()
	if loader == nil || dispatch == nil {
		return
	}

	if prev := state.ActiveParseToken(); prev != 0 {
		loader.Cancel(prev)
	}

	token := state.nextParseToken()
	state.activeParseToken = token
	state.Status = DocParsing

	loader.Start(ParseRequest{
		Token: token,
		Path:  path,
		Text:  text,
		Callback: func(result ParseResult) {
			dispatch(ParseResultAction{
				Token: result.Token,
				Path:  result.Path,
				Doc:   result.Doc,
				Err:   result.Err,
			})
		},
	})
}

func (s *ViewState) clampScroll() {
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
	if max := s.MaxScroll(); s.ScrollOffset > max {
		s.ScrollOffset = max
	}
}
