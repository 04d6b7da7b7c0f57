package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"glint"
)

// dirEntry is one row of a pane: a file or directory plus the metadata the
// list shows.
type dirEntry struct {
	name  string
	isDir bool
	size  int64
	mtime time.Time
}

// pane is one half of the browser: a bordered list showing a directory.
// The ".." entry is synthetic and always first except at the filesystem
// root.
type pane struct {
	panel   *glint.Panel
	list    *glint.ListView
	path    string
	entries []dirEntry

	showHidden bool
}

func newPane(path string) *pane {
	p := &pane{
		list: glint.NewListView(),
		path: path,
	}
	p.panel = glint.NewPanel(path, p.list)
	return p
}

// load reads the directory and rebuilds the list: directories first, each
// group sorted by name.
func (p *pane) load() error {
	ents, err := os.ReadDir(p.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", p.path, err)
	}

	var entries []dirEntry
	if p.path != string(filepath.Separator) {
		entries = append(entries, dirEntry{name: "..", isDir: true})
	}

	for _, e := range ents {
		name := e.Name()
		if !p.showHidden && name[0] == '.' {
			continue
		}
		de := dirEntry{name: name, isDir: e.IsDir()}
		if info, err := e.Info(); err == nil {
			de.size = info.Size()
			de.mtime = info.ModTime()
		}
		entries = append(entries, de)
	}

	off := 0
	if len(entries) > 0 && entries[0].name == ".." {
		off = 1
	}
	sortable := entries[off:]
	sort.SliceStable(sortable, func(i, j int) bool {
		a, b := sortable[i], sortable[j]
		if a.isDir != b.isDir {
			return a.isDir
		}
		return a.name < b.name
	})

	p.entries = entries
	p.list.SetItems(p.listItems())
	p.panel.SetTitle(" " + p.path + " ")
	return nil
}

func (p *pane) listItems() []glint.ListItem {
	items := make([]glint.ListItem, len(p.entries))
	for i, e := range p.entries {
		item := glint.ListItem{Text: e.name}
		if e.isDir {
			item.Text = "/" + e.name
			item.Secondary = "<DIR>"
			if e.name == ".." {
				item.Text = "/.."
				item.Secondary = "<UP>"
			}
		} else {
			item.Secondary = humanSize(e.size)
		}
		items[i] = item
	}
	return items
}

// reload re-reads the directory, keeping the selection on the same name
// when it survives.
func (p *pane) reload() error {
	var keep string
	if e, ok := p.selectedEntry(); ok {
		keep = e.name
	}
	if err := p.load(); err != nil {
		return err
	}
	for i, e := range p.entries {
		if e.name == keep {
			p.list.Select(i)
			break
		}
	}
	return nil
}

// selectedEntry returns the entry under the cursor.
func (p *pane) selectedEntry() (dirEntry, bool) {
	i := p.list.Selected()
	if i < 0 || i >= len(p.entries) {
		return dirEntry{}, false
	}
	return p.entries[i], true
}

// targets returns the marked entries, or the selection when nothing is
// marked. The ".." entry is never a target.
func (p *pane) targets() []dirEntry {
	var out []dirEntry
	for _, i := range p.list.Marked() {
		if i < len(p.entries) && p.entries[i].name != ".." {
			out = append(out, p.entries[i])
		}
	}
	if len(out) > 0 {
		return out
	}
	if e, ok := p.selectedEntry(); ok && e.name != ".." {
		out = append(out, e)
	}
	return out
}

// enter descends into the selected directory, or climbs on "..". Returns
// false when the selection is a plain file.
func (p *pane) enter() (bool, error) {
	e, ok := p.selectedEntry()
	if !ok || !e.isDir {
		return false, nil
	}
	prev := filepath.Base(p.path)
	prevPath := p.path
	if e.name == ".." {
		p.path = filepath.Dir(p.path)
	} else {
		p.path = filepath.Join(p.path, e.name)
	}
	if err := p.load(); err != nil {
		// keep showing the directory we were in; entries were not touched
		p.path = prevPath
		return true, err
	}
	// climbing puts the cursor on the directory we came from
	if e.name == ".." {
		for i, ent := range p.entries {
			if ent.name == prev {
				p.list.Select(i)
				break
			}
		}
	}
	return true, nil
}

func (p *pane) setShowHidden(v bool) {
	if p.showHidden == v {
		return
	}
	p.showHidden = v
	_ = p.reload()
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%c", float64(n)/float64(div), "KMGTPE"[exp])
}
