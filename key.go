package glint

import "strings"

// Key identifies a physical key from the closed set the engine recognizes:
// navigation keys, function keys, control keys, and printable runes.
// Printable letters and digits are represented by their rune value via
// KeyRune; named constants cover everything else.
type Key int

const (
	KeyNone Key = iota + 0x110000 // above the rune range

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Control
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeySpace

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyRune returns the Key for a printable rune.
func KeyRune(r rune) Key { return Key(r) }

// IsRune reports whether the key is a printable rune rather than a named
// key.
func (k Key) IsRune() bool { return k < KeyNone }

// Rune returns the printable rune for a rune key, or 0.
func (k Key) Rune() rune {
	if k.IsRune() {
		return rune(k)
	}
	return 0
}

var keyNames = map[Key]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdn",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeySpace:     "space",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

var namedKeys = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, n := range keyNames {
		m[n] = k
	}
	return m
}()

// String returns the canonical token name of the key.
func (k Key) String() string {
	if k.IsRune() {
		return string(rune(k))
	}
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "none"
}

// Modifier is a set of modifier keys held with a keystroke.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << iota
	ModAlt
	ModShift
)

// Has reports whether the set contains the modifier.
func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }

func (m Modifier) String() string {
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// Combination is a key plus its modifier set. It is a comparable value:
// two combinations built from the same token are equal and hash alike, so
// it serves directly as the binding-table lookup key.
type Combination struct {
	Key  Key
	Mods Modifier
}

// Combo builds a combination.
func Combo(k Key, mods Modifier) Combination {
	return Combination{Key: k, Mods: mods}
}

// String returns the canonical token for the combination, e.g. "ctrl+c",
// "shift+tab", "f5", "x".
func (c Combination) String() string {
	if c.Mods == ModNone {
		return c.Key.String()
	}
	return c.Mods.String() + "+" + c.Key.String()
}

// DecodeToken turns a decoded key token, as delivered by the input driver,
// into a structured combination. Tokens are lowercase key names with
// optional modifier markers: "up", "ctrl+c", "alt+enter", "shift+tab",
// "f5", or a single printable character. Returns false for tokens outside
// the recognized set.
func DecodeToken(token string) (Combination, bool) {
	if token == "" {
		return Combination{}, false
	}

	mods := ModNone
	rest := token
	for {
		switch {
		case strings.HasPrefix(rest, "ctrl+") && len(rest) > len("ctrl+"):
			mods |= ModCtrl
			rest = rest[len("ctrl+"):]
		case strings.HasPrefix(rest, "alt+") && len(rest) > len("alt+"):
			mods |= ModAlt
			rest = rest[len("alt+"):]
		case strings.HasPrefix(rest, "shift+") && len(rest) > len("shift+"):
			mods |= ModShift
			rest = rest[len("shift+"):]
		default:
			goto stripped
		}
	}
stripped:

	if k, ok := namedKeys[rest]; ok {
		return Combo(k, mods), true
	}

	runes := []rune(rest)
	if len(runes) == 1 {
		r := runes[0]
		if r == ' ' {
			return Combo(KeySpace, mods), true
		}
		if r > 0x1f && r != 0x7f {
			return Combo(KeyRune(r), mods), true
		}
	}
	return Combination{}, false
}

// KeyEvent is the structured input event routed through the tree: the raw
// token, its combination, and the action the binding registry resolved for
// it (empty when unbound). Components reacting to raw text read Combo;
// components reacting to bound behavior read Action.
type KeyEvent struct {
	Token  string
	Combo  Combination
	Action string
}

// Is reports whether the event matches the given combination.
func (ev KeyEvent) Is(c Combination) bool { return ev.Combo == c }

// IsKey reports whether the event is the given unmodified key.
func (ev KeyEvent) IsKey(k Key) bool {
	return ev.Combo.Key == k && ev.Combo.Mods == ModNone
}

// PrintableRune returns the printable rune carried by the event and true,
// or false for named keys and modified combinations. Text fields use this
// to accept raw unbound input.
func (ev KeyEvent) PrintableRune() (rune, bool) {
	if ev.Combo.Mods != ModNone && ev.Combo.Mods != ModShift {
		return 0, false
	}
	if ev.Combo.Key == KeySpace {
		return ' ', true
	}
	if r := ev.Combo.Key.Rune(); r > 0x1f && r != 0x7f {
		return r, true
	}
	return 0, false
}
