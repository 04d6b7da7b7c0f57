package glint

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"
)

// Display owns the physical terminal: raw mode, the alternate screen, and
// a double-buffered cell grid flushed with per-cell diffing. Components
// never talk to it directly; they draw into the back buffer handed to them
// through RenderContext.
type Display struct {
	front  *Buffer // what the terminal currently shows
	back   *Buffer // what the next frame draws into
	writer io.Writer
	fd     int

	width  int
	height int

	origTermios *unix.Termios
	raw         bool

	resizeChan chan Rect
	sigChan    chan os.Signal

	lastStyle Style
	out       bytes.Buffer

	mu sync.Mutex
}

// NewDisplay creates a display writing to w, or os.Stdout when w is nil.
// The terminal is left untouched until Open.
func NewDisplay(w io.Writer) (*Display, error) {
	if w == nil {
		w = os.Stdout
	}
	fd := int(os.Stdout.Fd())
	width, height, err := terminalSize(fd)
	if err != nil {
		width, height = 80, 24
	}
	return &Display{
		front:      NewBuffer(width, height),
		back:       NewBuffer(width, height),
		writer:     w,
		fd:         fd,
		width:      width,
		height:     height,
		resizeChan: make(chan Rect, 1),
		sigChan:    make(chan os.Signal, 1),
		lastStyle:  DefaultStyle(),
	}, nil
}

func terminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Width returns the display width in cells.
func (d *Display) Width() int { return d.width }

// Height returns the display height in cells.
func (d *Display) Height() int { return d.height }

// Bounds returns the full display rectangle.
func (d *Display) Bounds() Rect { return Rect{W: d.width, H: d.height} }

// Buffer returns the back buffer for drawing.
func (d *Display) Buffer() *Buffer { return d.back }

// ResizeChan delivers the new display rectangle after a terminal resize.
func (d *Display) ResizeChan() <-chan Rect { return d.resizeChan }

// Open puts the terminal into raw mode, switches to the alternate screen
// and hides the cursor. Safe to call twice.
func (d *Display) Open() error {
	if d.raw {
		return nil
	}

	termios, err := unix.IoctlGetTermios(d.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("get termios: %w", err)
	}
	d.origTermios = termios

	rawState := *termios
	rawState.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	rawState.Oflag &^= unix.OPOST
	rawState.Cflag |= unix.CS8
	rawState.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	rawState.Cc[unix.VMIN] = 1
	rawState.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(d.fd, ioctlSetTermios, &rawState); err != nil {
		return fmt.Errorf("set raw mode: %w", err)
	}
	d.raw = true

	signal.Notify(d.sigChan, syscall.SIGWINCH)
	go d.watchResize()

	d.writeString("\x1b[?1049h") // alternate screen
	d.writeString("\x1b[2J")     // clear so front buffer matches reality
	d.writeString("\x1b[H")
	d.writeString("\x1b[?25l") // hide cursor
	return nil
}

// Close restores the terminal: cursor shown, alternate screen left,
// original termios reinstated. Safe to call twice and from deferred
// cleanup paths.
func (d *Display) Close() error {
	if !d.raw {
		return nil
	}

	d.writeString("\x1b[0m")
	d.writeString("\x1b[?25h")
	d.writeString("\x1b[?1049l")

	signal.Stop(d.sigChan)

	if d.origTermios != nil {
		if err := unix.IoctlSetTermios(d.fd, ioctlSetTermios, d.origTermios); err != nil {
			return fmt.Errorf("restore termios: %w", err)
		}
	}
	d.raw = false
	return nil
}

func (d *Display) watchResize() {
	for range d.sigChan {
		width, height, err := terminalSize(d.fd)
		if err != nil || (width == d.width && height == d.height) {
			continue
		}
		d.mu.Lock()
		d.width = width
		d.height = height
		d.front.Resize(width, height)
		d.back.Resize(width, height)
		d.front.Clear()
		d.back.Clear()
		d.writeString("\x1b[2J")
		d.mu.Unlock()

		select {
		case d.resizeChan <- Rect{W: width, H: height}:
		default:
		}
	}
}

// Flush writes the changed cells of the back buffer to the terminal.
// Rows never touched since the last flush are skipped via dirty flags;
// within a dirty row only cells differing from the front buffer are
// emitted, with cursor repositioning per run.
func (d *Display) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.out.Reset()

	changed := false
	cursorX, cursorY := -1, -1

	for y := 0; y < d.height; y++ {
		if !d.back.RowDirty(y) {
			continue
		}
		for x := 0; x < d.width; x++ {
			cell := d.back.Get(x, y)
			if cell == d.front.Get(x, y) {
				continue
			}
			// zero rune marks the shadow of a double-width cell
			if cell.Rune == 0 {
				d.front.Put(x, y, cell)
				continue
			}
			changed = true

			if cursorX != x || cursorY != y {
				d.out.WriteString("\x1b[")
				d.writeInt(y + 1)
				d.out.WriteByte(';')
				d.writeInt(x + 1)
				d.out.WriteByte('H')
			}
			d.writeCell(cell)
			d.front.Put(x, y, cell)

			rw := runewidth.RuneWidth(cell.Rune)
			if rw == 0 {
				rw = 1
			}
			cursorX = x + rw
			cursorY = y
		}
	}

	if changed {
		d.out.WriteString("\x1b[0m")
		d.lastStyle = DefaultStyle()
	}
	d.back.ClearDirtyFlags()

	if d.out.Len() > 0 {
		d.writer.Write(d.out.Bytes())
	}
}

// FlushFull redraws every cell without diffing. Used after a resize or
// when the front buffer can no longer be trusted.
func (d *Display) FlushFull() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.out.Reset()
	d.out.WriteString("\x1b[2J\x1b[H")

	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			cell := d.back.Get(x, y)
			if cell.Rune == 0 {
				d.front.Put(x, y, cell)
				continue
			}
			d.writeCell(cell)
			d.front.Put(x, y, cell)
		}
		if y < d.height-1 {
			d.out.WriteString("\r\n")
		}
	}

	d.out.WriteString("\x1b[0m")
	d.lastStyle = DefaultStyle()
	d.back.ClearDirtyFlags()

	d.writer.Write(d.out.Bytes())
}

// writeCell emits a style change when needed, then the rune.
func (d *Display) writeCell(cell Cell) {
	if !cell.Style.Equal(d.lastStyle) {
		d.writeStyle(cell.Style)
		d.lastStyle = cell.Style
	}
	d.out.WriteRune(cell.Rune)
}

func (d *Display) writeStyle(style Style) {
	d.out.WriteString("\x1b[0")

	if style.Attr.Has(AttrBold) {
		d.out.WriteString(";1")
	}
	if style.Attr.Has(AttrDim) {
		d.out.WriteString(";2")
	}
	if style.Attr.Has(AttrItalic) {
		d.out.WriteString(";3")
	}
	if style.Attr.Has(AttrUnderline) {
		d.out.WriteString(";4")
	}
	if style.Attr.Has(AttrBlink) {
		d.out.WriteString(";5")
	}
	if style.Attr.Has(AttrInverse) {
		d.out.WriteString(";7")
	}
	if style.Attr.Has(AttrStrikethrough) {
		d.out.WriteString(";9")
	}

	d.writeColor(style.FG, true)
	d.writeColor(style.BG, false)
	d.out.WriteByte('m')
}

func (d *Display) writeColor(c Color, fg bool) {
	switch c.Mode {
	case ColorDefault:
		if fg {
			d.out.WriteString(";39")
		} else {
			d.out.WriteString(";49")
		}
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		idx := int(c.Index)
		if idx >= 8 {
			base += 60
			idx -= 8
		}
		d.out.WriteByte(';')
		d.writeInt(base + idx)
	case Color256:
		if fg {
			d.out.WriteString(";38;5;")
		} else {
			d.out.WriteString(";48;5;")
		}
		d.writeInt(int(c.Index))
	case ColorRGB:
		if fg {
			d.out.WriteString(";38;2;")
		} else {
			d.out.WriteString(";48;2;")
		}
		d.writeInt(int(c.R))
		d.out.WriteByte(';')
		d.writeInt(int(c.G))
		d.out.WriteByte(';')
		d.writeInt(int(c.B))
	}
}

// writeInt appends a decimal without allocating.
func (d *Display) writeInt(n int) {
	if n == 0 {
		d.out.WriteByte('0')
		return
	}
	if n < 0 {
		d.out.WriteByte('-')
		n = -n
	}
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	d.out.Write(scratch[i:])
}

func (d *Display) writeString(s string) {
	io.WriteString(d.writer, s)
}
