package glint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// ActionBack is the action the loop itself understands: pop the top
// screen, exiting when it was the last one. Everything else is routed to
// screens and components.
const ActionBack = "app.back"

// App wires the display, input reader, binding registry and screen stack
// into the cooperative loop. One token is processed per cycle; updates are
// driven by wall-clock deltas between cycles, never by timer callbacks.
type App struct {
	display  *Display
	input    *InputReader
	screens  *ScreenManager
	registry *Registry
	theme    *Theme

	tick time.Duration
	quit bool

	debugLog io.Writer
}

// NewApp creates an application with the given theme. The terminal is not
// touched until Run.
func NewApp(theme *Theme) (*App, error) {
	display, err := NewDisplay(nil)
	if err != nil {
		return nil, err
	}
	app := &App{
		display:  display,
		input:    NewInputReader(os.Stdin),
		screens:  NewScreenManager(),
		registry: NewRegistry(),
		theme:    theme,
		tick:     50 * time.Millisecond,
	}
	if path := os.Getenv("GLINT_DEBUG_LOG"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			app.debugLog = f
		}
	}
	return app, nil
}

// Registry returns the binding registry.
func (a *App) Registry() *Registry { return a.registry }

// Screens returns the screen manager.
func (a *App) Screens() *ScreenManager { return a.screens }

// Theme returns the active theme.
func (a *App) Theme() *Theme { return a.theme }

// SetTheme swaps the theme; it takes effect on the next frame.
func (a *App) SetTheme(t *Theme) { a.theme = t }

// Display returns the terminal driver.
func (a *App) Display() *Display { return a.display }

// Push pushes a screen onto the stack.
func (a *App) Push(s Screen) { a.screens.Push(s) }

// Back pops the top screen; popping the last one quits the loop.
func (a *App) Back() {
	if _, remaining := a.screens.Pop(); !remaining {
		a.quit = true
	}
}

// Quit stops the loop after the current cycle.
func (a *App) Quit() { a.quit = true }

// Run owns the terminal until the screen stack empties or Quit is called.
// The terminal is restored on every exit path, including panics, before
// the error or panic is surfaced.
func (a *App) Run() (err error) {
	if a.screens.Top() == nil {
		return errors.New("glint: push a screen before Run")
	}
	if err := a.display.Open(); err != nil {
		return err
	}
	defer func() {
		a.display.Close()
		if r := recover(); r != nil {
			panic(r)
		}
	}()

	go a.input.Run()

	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	last := time.Now()
	a.render(false)

	for !a.quit {
		full := false
		select {
		case token, ok := <-a.input.Tokens():
			if !ok {
				return nil
			}
			a.handleToken(token)
		case <-a.display.ResizeChan():
			full = true
		case <-ticker.C:
		}

		now := time.Now()
		dt := now.Sub(last)
		last = now

		top := a.screens.Top()
		if top == nil {
			return nil
		}
		top.Update(dt)
		a.render(full)
	}
	return nil
}

// handleToken runs one token through the pipeline: decode, resolve, then
// route. An active overlay receives the event exclusively; otherwise the
// screen gets it, and the loop keeps only ActionBack for itself. A panic
// inside a handler is contained at the screen boundary: it is logged and
// the offending screen is popped.
func (a *App) handleToken(token string) {
	defer func() {
		if r := recover(); r != nil {
			a.logf("panic in input handler: %v", r)
			a.Back()
		}
	}()

	ev := KeyEvent{Token: token}
	if combo, ok := DecodeToken(token); ok {
		ev.Combo = combo
		if action, bound := a.registry.Resolve(combo); bound {
			ev.Action = action
		}
	}

	top := a.screens.Top()
	if top == nil {
		a.quit = true
		return
	}

	if ov := top.Overlay(); ov != nil {
		ov.HandleInput(ev)
		return
	}
	if top.HandleInput(ev) {
		return
	}
	if ev.Action == ActionBack {
		a.Back()
	}
}

// render draws the top screen and its overlay into the back buffer and
// flushes the frame.
func (a *App) render(full bool) {
	top := a.screens.Top()
	if top == nil {
		return
	}

	buf := a.display.Buffer()
	buf.Clear()
	ctx := &RenderContext{Buf: buf, Theme: a.theme}
	bounds := a.display.Bounds()

	if root := top.Root(); root != nil {
		measureChild(root, bounds.W, bounds.H)
		layoutChild(root, bounds)
		root.Render(ctx)
	}

	if ov := top.Overlay(); ov != nil {
		ctx.DimRect(bounds)
		ov.PlaceOverlay(bounds)
		ov.Render(ctx)
	}

	if full {
		a.display.FlushFull()
	} else {
		a.display.Flush()
	}
}

func (a *App) logf(format string, args ...any) {
	if a.debugLog == nil {
		return
	}
	fmt.Fprintf(a.debugLog, "%s "+format+"\n",
		append([]any{time.Now().Format(time.RFC3339)}, args...)...)
}
