package main

import (
	"fmt"
	"os"

	"glint"
)

const maxViewBytes = 1 << 20

// viewerScreen shows a file read-only in a scrollback pane.
type viewerScreen struct {
	glint.ScreenBase
	app *glint.App
}

func newViewerScreen(app *glint.App, path string) (*viewerScreen, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, maxViewBytes)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return nil, err
	}

	view := glint.NewOutputView(0)
	view.Append(string(buf[:n]))
	view.ScrollTo(0)
	view.SetFocused(true)

	status := glint.NewStatusBar()
	status.SetLeft(path)
	if n == maxViewBytes {
		status.SetRight("truncated")
	} else {
		status.SetRight(fmt.Sprintf("%d bytes", n))
	}

	root := glint.VStack().
		Add(glint.NewPanel(" "+path+" ", view)).
		AddFixed(status, 1)

	s := &viewerScreen{app: app}
	s.ScreenBase = glint.NewScreenBase("View", root)
	return s, nil
}

func (s *viewerScreen) HandleInput(ev glint.KeyEvent) bool {
	if ev.Action == glint.ActionBack || ev.IsKey(glint.KeyEscape) {
		s.app.Back()
		return true
	}
	return s.ScreenBase.HandleInput(ev)
}
