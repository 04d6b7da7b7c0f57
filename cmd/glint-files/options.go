package main

import (
	"glint"
)

// options is the mutable runtime configuration shared between screens.
type options struct {
	showHidden    bool
	confirmDelete bool
	themeName     string
}

// fieldApply adapts a FieldListener to a plain function.
type fieldApply func(value string)

func (f fieldApply) FieldChanged(value string)   { f(value) }
func (f fieldApply) FieldSubmitted(value string) { f(value) }

// optionsScreen edits the runtime options with form fields. Changes apply
// immediately; the screen holds no pending state.
type optionsScreen struct {
	glint.ScreenBase
	app    *glint.App
	fields []glint.Component
	cursor int
}

func newOptionsScreen(app *glint.App, opts *options, left, right *pane) *optionsScreen {
	s := &optionsScreen{app: app}

	hidden := glint.NewCheckbox("Show hidden files")
	hidden.SetChecked(opts.showHidden)
	hidden.SetListener(fieldApply(func(value string) {
		opts.showHidden = value == "true"
		left.setShowHidden(opts.showHidden)
		right.setShowHidden(opts.showHidden)
	}))

	confirm := glint.NewCheckbox("Confirm deletions")
	confirm.SetChecked(opts.confirmDelete)
	confirm.SetListener(fieldApply(func(value string) {
		opts.confirmDelete = value == "true"
	}))

	names := themeNames()
	theme := glint.NewSelectField(names...)
	for i, n := range names {
		if n == opts.themeName {
			theme.Select(i)
		}
	}
	theme.SetListener(fieldApply(func(value string) {
		opts.themeName = value
		t := glint.Themes[value]
		app.SetTheme(&t)
	}))

	s.fields = []glint.Component{hidden, confirm, theme}
	s.fields[0].SetFocused(true)

	form := glint.VStack().Gap(1).
		AddFixed(hidden, 1).
		AddFixed(confirm, 1).
		AddFixed(glint.NewText("Theme").Role(glint.RoleMuted), 1).
		AddFixed(theme, 1).
		Add(glint.NewSpacer()).
		AddFixed(glint.NewText("up/down select, space toggle, esc close").Role(glint.RoleMuted), 1)

	root := glint.NewPanel(" Options ", form)
	s.ScreenBase = glint.NewScreenBase("Options", root)
	return s
}

func themeNames() []string {
	// fixed order; map iteration would shuffle the select field
	return []string{"dark", "light", "monochrome"}
}

func (s *optionsScreen) moveFocus(delta int) {
	s.fields[s.cursor].SetFocused(false)
	s.cursor = (s.cursor + delta + len(s.fields)) % len(s.fields)
	s.fields[s.cursor].SetFocused(true)
}

func (s *optionsScreen) HandleInput(ev glint.KeyEvent) bool {
	switch {
	case ev.IsKey(glint.KeyUp), ev.Is(glint.Combo(glint.KeyTab, glint.ModShift)):
		s.moveFocus(-1)
		return true
	case ev.IsKey(glint.KeyDown), ev.IsKey(glint.KeyTab):
		s.moveFocus(1)
		return true
	case ev.Action == glint.ActionBack, ev.IsKey(glint.KeyEscape):
		s.app.Back()
		return true
	}
	return s.fields[s.cursor].HandleInput(ev)
}
