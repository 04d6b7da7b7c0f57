package main

import (
	"fmt"
	"syscall"
	"time"

	"glint"
)

const stopGrace = 2 * time.Second

// runnerScreen runs one command in the background and streams its output.
// Two tabs separate the pty stream from stderr; a spinner shows liveness
// while the process runs.
type runnerScreen struct {
	glint.ScreenBase
	app  *glint.App
	task *glint.Task

	spinner *glint.Spinner
	outView *glint.OutputView
	errView *glint.OutputView
	tabs    *glint.TabGroup
	status  *glint.StatusBar

	started bool
	settled bool // terminal notice appended; happens exactly once
}

func newRunnerScreen(app *glint.App, task *glint.Task, cmdline string) *runnerScreen {
	s := &runnerScreen{
		app:     app,
		task:    task,
		spinner: glint.NewSpinner(),
		outView: glint.NewOutputView(10000),
		errView: glint.NewOutputView(10000),
		status:  glint.NewStatusBar(),
	}
	s.spinner.SetLabel(cmdline)

	s.outView.SetFocused(true)
	s.errView.SetFocused(true)
	s.tabs = glint.NewTabGroup(
		&glint.StaticTab{TabTitle: "Output", Tree: glint.NewPanel(" output ", s.outView)},
		&glint.StaticTab{TabTitle: "Errors", Tree: glint.NewPanel(" stderr ", s.errView)},
	)
	s.tabs.SetFocused(true)

	s.status.SetLeft(cmdline)
	s.status.SetRight("ctrl+c to stop")

	root := glint.VStack().
		AddFixed(s.spinner, 1).
		Add(s.tabs).
		AddFixed(s.status, 1)

	s.ScreenBase = glint.NewScreenBase("Run", root)
	return s
}

// OnActivate starts the process the first time the screen becomes top.
func (s *runnerScreen) OnActivate() {
	s.ScreenBase.OnActivate()
	if s.started {
		return
	}
	s.started = true

	cols := s.app.Display().Width()
	rows := s.app.Display().Height() - 4
	if rows < 1 {
		rows = 1
	}
	if err := s.task.Start(cols, rows); err != nil {
		s.settled = true
		s.outView.Append(fmt.Sprintf("failed to start: %v\n", err))
		s.status.SetRight("failed")
		return
	}
	s.spinner.Start()
}

// Update drains the task channels and advances the spinner. The
// running-to-finished transition is observed here exactly once.
func (s *runnerScreen) Update(dt time.Duration) {
	s.ScreenBase.Update(dt)

	if out := s.task.IncrementalOutput(); out != "" {
		s.outView.Append(out)
	}
	if errOut := s.task.IncrementalErrOutput(); errOut != "" {
		s.errView.Append(errOut)
	}

	if s.settled || s.task.IsRunning() {
		return
	}
	if !s.started || !s.task.Finished() {
		return
	}
	s.settled = true
	s.spinner.Stop()
	code, _ := s.task.ExitCode()
	s.outView.Append(fmt.Sprintf("\n— process exited with code %d —\n", code))
	s.status.SetRight(fmt.Sprintf("exited (%d)  esc to close", code))
}

func (s *runnerScreen) HandleInput(ev glint.KeyEvent) bool {
	switch {
	case ev.Is(glint.Combo(glint.KeyRune('c'), glint.ModCtrl)):
		if s.task.IsRunning() {
			s.task.Stop(stopGrace, syscall.SIGTERM)
			s.outView.Append("\n— stop requested —\n")
			s.status.SetRight("stopping")
		}
		return true
	case ev.Action == glint.ActionBack, ev.IsKey(glint.KeyEscape):
		if s.task.IsRunning() {
			m := glint.NewModal("Still running",
				"The process has not exited.\nTerminate it and close?",
				"Terminate", "Cancel")
			m.SetListener(s)
			s.SetOverlay(m)
			return true
		}
		s.app.Back()
		return true
	}
	return s.ScreenBase.HandleInput(ev)
}

// OverlayClosed implements glint.OverlayListener for the terminate dialog.
func (s *runnerScreen) OverlayClosed(res glint.OverlayResult) {
	s.CloseOverlay()
	if res.Canceled {
		return
	}
	s.task.Stop(stopGrace, syscall.SIGTERM)
	s.app.Back()
}
