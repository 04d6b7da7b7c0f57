package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"glint"
)

// browserScreen is the dual-pane file browser. One pane is active at a
// time; operations act on the active pane's marked entries (or its
// selection) with the inactive pane as the destination.
type browserScreen struct {
	glint.ScreenBase
	app  *glint.App
	opts *options

	left       *pane
	right      *pane
	activeLeft bool
	status     *glint.StatusBar

	pending        string // which overlay is waiting for a result
	pendingTargets []dirEntry
}

func newBrowserScreen(app *glint.App, startPath string, opts *options) (*browserScreen, error) {
	s := &browserScreen{
		app:        app,
		opts:       opts,
		left:       newPane(startPath),
		right:      newPane(startPath),
		activeLeft: true,
		status:     glint.NewStatusBar(),
	}
	s.left.showHidden = opts.showHidden
	s.right.showHidden = opts.showHidden
	if err := s.left.load(); err != nil {
		return nil, err
	}
	if err := s.right.load(); err != nil {
		return nil, err
	}

	s.left.list.SetListener(&paneListener{screen: s, pane: s.left})
	s.right.list.SetListener(&paneListener{screen: s, pane: s.right})

	split := glint.MustSplit(glint.Horizontal, 50)
	split.SetFirst(s.left.panel)
	split.SetSecond(s.right.panel)

	root := glint.VStack().
		Add(split).
		AddFixed(s.status, 1)

	s.ScreenBase = glint.NewScreenBase("Files", root)
	s.left.list.SetFocused(true)
	s.updateStatus()
	return s, nil
}

func (s *browserScreen) activePane() *pane {
	if s.activeLeft {
		return s.left
	}
	return s.right
}

func (s *browserScreen) inactivePane() *pane {
	if s.activeLeft {
		return s.right
	}
	return s.left
}

func (s *browserScreen) switchPane() {
	s.activePane().list.SetFocused(false)
	s.activeLeft = !s.activeLeft
	s.activePane().list.SetFocused(true)
	s.updateStatus()
}

func (s *browserScreen) updateStatus() {
	p := s.activePane()
	left := p.path
	if e, ok := p.selectedEntry(); ok {
		left += "  " + e.name
	}
	s.status.SetLeft(left)
	marked := len(p.list.Marked())
	if marked > 0 {
		s.status.SetRight(fmt.Sprintf("%d marked / %d items", marked, len(p.entries)))
	} else {
		s.status.SetRight(fmt.Sprintf("%d items", len(p.entries)))
	}
}

// OnActivate refreshes both panes, picking up changes made by tasks run
// from this screen.
func (s *browserScreen) OnActivate() {
	s.ScreenBase.OnActivate()
	_ = s.left.reload()
	_ = s.right.reload()
	s.updateStatus()
}

func (s *browserScreen) HandleInput(ev glint.KeyEvent) bool {
	switch ev.Action {
	case actionSwitchPane:
		s.switchPane()
	case actionMark:
		p := s.activePane()
		p.list.ToggleMark()
		p.list.Select(p.list.Selected() + 1)
		s.updateStatus()
	case actionView:
		s.viewSelected()
	case actionRun:
		s.openPrompt("run", "Run command", "")
	case actionCopy:
		s.beginTransfer("copy")
	case actionMove:
		s.beginTransfer("move")
	case actionMkdir:
		s.openPrompt("mkdir", "Create directory", "")
	case actionDelete:
		s.beginDelete()
	case actionMenu:
		s.openMenu()
	case actionReload:
		s.reloadBoth()
	case actionHelp:
		s.app.Push(newBindingsScreen(s.app))
	case actionOptions:
		s.app.Push(newOptionsScreen(s.app, s.opts, s.left, s.right))
	case glint.ActionBack:
		s.confirmQuit()
	default:
		if s.ScreenBase.HandleInput(ev) {
			s.updateStatus()
			return true
		}
		return false
	}
	return true
}

// paneListener routes list events back to the screen with the pane they
// came from.
type paneListener struct {
	screen *browserScreen
	pane   *pane
}

func (l *paneListener) SelectionChanged(int) {
	l.screen.updateStatus()
}

func (l *paneListener) ItemActivated(int) {
	if l.pane != l.screen.activePane() {
		return
	}
	entered, err := l.pane.enter()
	if err != nil {
		l.screen.showError(err)
		return
	}
	if entered {
		l.screen.updateStatus()
	}
}

// Overlay plumbing. Every overlay this screen opens reports here; pending
// records which operation the result belongs to.

func (s *browserScreen) openPrompt(kind, title, initial string) {
	p := newPrompt(title, initial)
	p.SetListener(s)
	s.pending = kind
	s.SetOverlay(p)
}

func (s *browserScreen) openMenu() {
	menu := glint.NewDropdown(
		glint.MenuItem{Label: "Reload panes"},
		glint.MenuItem{Label: "Key bindings"},
		glint.MenuItem{Label: "Options"},
		glint.MenuSeparator(),
		glint.MenuItem{Label: "Quit"},
		glint.MenuSeparator(),
		glint.MenuItem{Label: "Close menu"},
	)
	menu.AnchorAt(1, 1)
	menu.SetListener(s)
	s.pending = "menu"
	s.SetOverlay(menu)
}

func (s *browserScreen) confirmQuit() {
	m := glint.NewModal("Quit", "Leave the file browser?", "Quit", "Cancel")
	m.SetListener(s)
	s.pending = "quit"
	s.SetOverlay(m)
}

func (s *browserScreen) beginDelete() {
	targets := s.activePane().targets()
	if len(targets) == 0 {
		return
	}
	s.pendingTargets = targets
	if !s.opts.confirmDelete {
		s.doDelete()
		return
	}
	m := glint.NewModal("Delete",
		fmt.Sprintf("Delete %s?", describeTargets(targets)),
		"Delete", "Cancel")
	m.SetListener(s)
	s.pending = "delete"
	s.SetOverlay(m)
}

func (s *browserScreen) beginTransfer(kind string) {
	targets := s.activePane().targets()
	if len(targets) == 0 {
		return
	}
	s.pendingTargets = targets
	verb := "Copy"
	if kind == "move" {
		verb = "Move"
	}
	m := glint.NewModal(verb,
		fmt.Sprintf("%s %s\nto %s?", verb, describeTargets(targets), s.inactivePane().path),
		verb, "Cancel")
	m.SetListener(s)
	s.pending = kind
	s.SetOverlay(m)
}

func describeTargets(targets []dirEntry) string {
	if len(targets) == 1 {
		return "\"" + targets[0].name + "\""
	}
	return fmt.Sprintf("%d items", len(targets))
}

// OverlayClosed implements glint.OverlayListener.
func (s *browserScreen) OverlayClosed(res glint.OverlayResult) {
	kind := s.pending
	s.pending = ""
	s.CloseOverlay()
	if res.Canceled {
		return
	}

	switch kind {
	case "menu":
		s.menuAction(res.Label)
	case "quit":
		s.app.Back()
	case "delete":
		s.doDelete()
	case "copy":
		s.doTransfer(false)
	case "move":
		s.doTransfer(true)
	case "mkdir":
		s.doMkdir(res.Label)
	case "run":
		s.runCommand(res.Label)
	}
}

func (s *browserScreen) menuAction(label string) {
	switch label {
	case "Reload panes":
		s.reloadBoth()
	case "Key bindings":
		s.app.Push(newBindingsScreen(s.app))
	case "Options":
		s.app.Push(newOptionsScreen(s.app, s.opts, s.left, s.right))
	case "Quit":
		s.confirmQuit()
	}
}

// Operations.

func (s *browserScreen) doDelete() {
	p := s.activePane()
	var errs []string
	for _, e := range s.pendingTargets {
		if err := os.RemoveAll(filepath.Join(p.path, e.name)); err != nil {
			errs = append(errs, err.Error())
		}
	}
	s.pendingTargets = nil
	s.reloadBoth()
	if len(errs) > 0 {
		s.showError(fmt.Errorf("delete failed:\n%s", strings.Join(errs, "\n")))
	}
}

func (s *browserScreen) doTransfer(move bool) {
	src := s.activePane()
	destDir := s.inactivePane().path
	var errs []string
	for _, e := range s.pendingTargets {
		from := filepath.Join(src.path, e.name)
		to := filepath.Join(destDir, e.name)
		var err error
		if move {
			err = moveTree(from, to)
		} else {
			err = copyTree(from, to)
		}
		if err != nil {
			errs = append(errs, err.Error())
		}
	}
	s.pendingTargets = nil
	s.reloadBoth()
	if len(errs) > 0 {
		s.showError(fmt.Errorf("transfer failed:\n%s", strings.Join(errs, "\n")))
	}
}

func (s *browserScreen) doMkdir(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if err := os.Mkdir(filepath.Join(s.activePane().path, name), 0o755); err != nil {
		s.showError(err)
		return
	}
	s.reloadBoth()
}

func (s *browserScreen) viewSelected() {
	e, ok := s.activePane().selectedEntry()
	if !ok || e.isDir {
		return
	}
	path := filepath.Join(s.activePane().path, e.name)
	viewer, err := newViewerScreen(s.app, path)
	if err != nil {
		s.showError(err)
		return
	}
	s.app.Push(viewer)
}

func (s *browserScreen) runCommand(cmdline string) {
	cmdline = strings.TrimSpace(cmdline)
	if cmdline == "" {
		return
	}
	task, err := glint.NewTask(cmdline)
	if err != nil {
		s.showError(err)
		return
	}
	task.SetDir(s.activePane().path)
	s.app.Push(newRunnerScreen(s.app, task, cmdline))
}

func (s *browserScreen) reloadBoth() {
	if err := s.left.reload(); err != nil {
		s.showError(err)
	}
	if err := s.right.reload(); err != nil {
		s.showError(err)
	}
	s.updateStatus()
}

func (s *browserScreen) showError(err error) {
	m := glint.NewModal("Error", err.Error(), "OK")
	m.SetListener(s)
	s.pending = "error"
	s.SetOverlay(m)
}
