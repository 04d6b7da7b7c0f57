package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"glint"
)

// bindingsScreen lists the active key bindings in a table, grouped by
// category with the highest-priority binding first.
type bindingsScreen struct {
	glint.ScreenBase
	app *glint.App
}

func newBindingsScreen(app *glint.App) *bindingsScreen {
	table := glint.NewTable(
		glint.TableColumn{Title: "Category", Width: glint.Cells(12)},
		glint.TableColumn{Title: "Key", Width: glint.Cells(14)},
		glint.TableColumn{Title: "Action", Width: glint.Fr(1)},
		glint.TableColumn{Title: "Description", Width: glint.Fr(2)},
	)
	table.SetRows(bindingRows(app.Registry()))
	table.SetFocused(true)

	status := glint.NewStatusBar()
	status.SetLeft("Key bindings")
	status.SetRight("esc to close")

	root := glint.VStack().
		Add(glint.NewPanel(" Key bindings ", table)).
		AddFixed(status, 1)

	s := &bindingsScreen{app: app}
	s.ScreenBase = glint.NewScreenBase("Keys", root)
	return s
}

func (s *bindingsScreen) HandleInput(ev glint.KeyEvent) bool {
	if ev.Action == glint.ActionBack || ev.IsKey(glint.KeyEscape) {
		s.app.Back()
		return true
	}
	return s.ScreenBase.HandleInput(ev)
}

func bindingRows(reg *glint.Registry) [][]string {
	grouped := reg.All()
	categories := make([]string, 0, len(grouped))
	for c := range grouped {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var rows [][]string
	for _, c := range categories {
		for _, b := range grouped[c] {
			rows = append(rows, []string{c, b.Combo.String(), b.Action, b.Description})
		}
	}
	return rows
}

// renderKeysListing formats the binding table for plain stdout, used by
// the keys subcommand.
func renderKeysListing(reg *glint.Registry) string {
	category := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	key := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Width(14)
	action := lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Width(20)
	desc := lipgloss.NewStyle().Faint(true)

	grouped := reg.All()
	categories := make([]string, 0, len(grouped))
	for c := range grouped {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var sb strings.Builder
	for _, c := range categories {
		sb.WriteString(category.Render(c))
		sb.WriteByte('\n')
		for _, b := range grouped[c] {
			fmt.Fprintf(&sb, "  %s %s %s\n",
				key.Render(b.Combo.String()),
				action.Render(b.Action),
				desc.Render(b.Description))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
