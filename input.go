package glint

import (
	"io"
	"unicode/utf8"
)

// InputReader turns the raw byte stream of a terminal in raw mode into
// normalized key tokens: "a", "ctrl+c", "alt+enter", "shift+tab", "up",
// "f5". Tokens are the wire format between the terminal and the key
// pipeline; DecodeToken lifts them into combinations.
type InputReader struct {
	r      io.Reader
	tokens chan string
}

// NewInputReader creates a reader over r, typically os.Stdin.
func NewInputReader(r io.Reader) *InputReader {
	return &InputReader{
		r:      r,
		tokens: make(chan string, 16),
	}
}

// Tokens returns the token channel. It closes when the underlying reader
// reaches EOF or errors.
func (ir *InputReader) Tokens() <-chan string { return ir.tokens }

// Run reads until EOF, decoding tokens onto the channel. Call it in its
// own goroutine.
func (ir *InputReader) Run() {
	defer close(ir.tokens)

	var pending []byte
	chunk := make([]byte, 256)
	for {
		n, err := ir.r.Read(chunk)
		if n > 0 {
			pending = append(pending, chunk[:n]...)
			pending = ir.drain(pending)
		}
		if err != nil {
			return
		}
	}
}

// drain decodes as many complete tokens as the buffer holds and returns
// the undecoded remainder. A lone trailing escape is treated as the Escape
// key: raw mode delivers multi-byte sequences in one read, so an escape
// with nothing after it in the same chunk was the key itself.
func (ir *InputReader) drain(buf []byte) []byte {
	for len(buf) > 0 {
		token, consumed := decodeBytes(buf)
		if consumed == 0 {
			return buf // incomplete rune, wait for more bytes
		}
		if token != "" {
			ir.tokens <- token
		}
		buf = buf[consumed:]
	}
	return buf[:0]
}

// decodeBytes decodes one token from the front of buf, returning it and
// the number of bytes consumed. consumed == 0 means the buffer starts with
// an incomplete UTF-8 rune. An empty token with consumed > 0 means the
// bytes were an unrecognized sequence to discard.
func decodeBytes(buf []byte) (token string, consumed int) {
	b := buf[0]

	if b == 0x1b {
		return decodeEscape(buf)
	}
	return decodePlain(buf)
}

// decodePlain handles everything outside escape sequences.
func decodePlain(buf []byte) (string, int) {
	b := buf[0]
	switch {
	case b == 0x00:
		return "ctrl+space", 1
	case b == '\t':
		return "tab", 1
	case b == '\r' || b == '\n':
		return "enter", 1
	case b == 0x7f:
		return "backspace", 1
	case b < 0x20:
		return "ctrl+" + string(rune('a'+b-1)), 1
	case b == ' ':
		return "space", 1
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		if !utf8.FullRune(buf) {
			return "", 0 // incomplete, wait
		}
		return "", 1 // invalid byte, discard
	}
	return string(r), size
}

// decodeEscape handles sequences starting with ESC: CSI and SS3 control
// sequences, alt-prefixed keys, and the bare Escape key.
func decodeEscape(buf []byte) (string, int) {
	if len(buf) == 1 {
		return "esc", 1
	}

	switch buf[1] {
	case '[':
		return decodeCSI(buf)
	case 'O':
		return decodeSS3(buf)
	case 0x1b:
		return "esc", 1
	}

	// alt-prefixed key: ESC then the key's own encoding
	inner, consumed := decodePlain(buf[1:])
	if consumed == 0 {
		return "", 0
	}
	if inner == "" {
		return "", 1 + consumed
	}
	return "alt+" + inner, 1 + consumed
}

// csiKeys maps CSI final letters to key names.
var csiKeys = map[byte]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
	'H': "home",
	'F': "end",
	'Z': "shift+tab",
}

// csiTildeKeys maps CSI numeric codes (terminated by '~') to key names.
var csiTildeKeys = map[int]string{
	1:  "home",
	2:  "insert",
	3:  "delete",
	4:  "end",
	5:  "pgup",
	6:  "pgdn",
	7:  "home",
	8:  "end",
	11: "f1",
	12: "f2",
	13: "f3",
	14: "f4",
	15: "f5",
	17: "f6",
	18: "f7",
	19: "f8",
	20: "f9",
	21: "f10",
	23: "f11",
	24: "f12",
}

// decodeCSI parses ESC [ params final.
func decodeCSI(buf []byte) (string, int) {
	i := 2
	params := []int{}
	cur, haveCur := 0, false
	for ; i < len(buf); i++ {
		c := buf[i]
		switch {
		case c >= '0' && c <= '9':
			cur = cur*10 + int(c-'0')
			haveCur = true
		case c == ';':
			params = append(params, cur)
			cur, haveCur = 0, false
		case c >= 0x40 && c <= 0x7e:
			if haveCur {
				params = append(params, cur)
			}
			return csiToken(params, c), i + 1
		default:
			return "", i + 1 // malformed, discard
		}
	}
	return "", 0 // sequence not complete yet
}

func csiToken(params []int, final byte) string {
	mods := ModNone
	if len(params) >= 2 && params[1] > 0 {
		mods = xtermModifier(params[1])
	}

	var name string
	if final == '~' {
		if len(params) == 0 {
			return ""
		}
		name = csiTildeKeys[params[0]]
	} else {
		name = csiKeys[final]
		if final == 'Z' {
			return name // shift is part of the sequence itself
		}
	}
	if name == "" {
		return ""
	}
	return applyMods(name, mods)
}

// decodeSS3 parses ESC O final, the application-mode encoding for arrows
// and F1-F4.
func decodeSS3(buf []byte) (string, int) {
	if len(buf) < 3 {
		return "", 0
	}
	switch buf[2] {
	case 'A':
		return "up", 3
	case 'B':
		return "down", 3
	case 'C':
		return "right", 3
	case 'D':
		return "left", 3
	case 'H':
		return "home", 3
	case 'F':
		return "end", 3
	case 'P':
		return "f1", 3
	case 'Q':
		return "f2", 3
	case 'R':
		return "f3", 3
	case 'S':
		return "f4", 3
	}
	return "", 3
}

// xtermModifier decodes the xterm modifier parameter: value-1 is a bitmask
// of shift(1), alt(2), ctrl(4).
func xtermModifier(param int) Modifier {
	bits := param - 1
	mods := ModNone
	if bits&1 != 0 {
		mods |= ModShift
	}
	if bits&2 != 0 {
		mods |= ModAlt
	}
	if bits&4 != 0 {
		mods |= ModCtrl
	}
	return mods
}

func applyMods(name string, mods Modifier) string {
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}
