package glint

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/kballard/go-shellquote"
)

// Task runs a child process on a pseudo-terminal and exposes its output
// incrementally to the single-threaded UI loop. All exported methods are
// called from the loop only; goroutines live behind the channel boundary
// (one pty reader, one stderr reader, one waiter) and never touch Task
// state directly.
//
// The process gets its own session, so Stop can signal the whole process
// group. Stdout and stdin go through the pty; stderr runs over a separate
// pipe so error text stays distinguishable.
type Task struct {
	argv []string
	dir  string

	cmd     *exec.Cmd
	ptmx    *os.File
	stderrR *os.File

	outCh   chan string
	errCh   chan string
	exitCh  chan int
	dead    chan struct{}
	readers sync.WaitGroup

	started  bool
	finished bool
	stopping bool
	exitCode int
}

// NewTask creates a task from a shell-style command line. Quoting follows
// sh word-splitting rules; an unparsable or empty command is a
// configuration error.
func NewTask(command string) (*Task, error) {
	argv, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("parse command %q: %w", command, err)
	}
	return NewTaskArgs(argv...)
}

// NewTaskArgs creates a task from an argument vector.
func NewTaskArgs(argv ...string) (*Task, error) {
	if len(argv) == 0 {
		return nil, errors.New("glint: task requires a command")
	}
	return &Task{
		argv:   argv,
		outCh:  make(chan string, 64),
		errCh:  make(chan string, 64),
		exitCh: make(chan int, 1),
		dead:   make(chan struct{}),
	}, nil
}

// SetDir sets the working directory for the child. Must be called before
// Start.
func (t *Task) SetDir(dir string) { t.dir = dir }

// Command returns the argument vector.
func (t *Task) Command() []string { return t.argv }

// Start spawns the process on a pty sized cols by rows.
func (t *Task) Start(cols, rows int) error {
	if t.started {
		return errors.New("glint: task already started")
	}

	cmd := exec.Command(t.argv[0], t.argv[1:]...)
	cmd.Dir = t.dir
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	cmd.Stderr = stderrW

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Cols: uint16(cols),
		Rows: uint16(rows),
	})
	if err != nil {
		stderrR.Close()
		stderrW.Close()
		return fmt.Errorf("start %s: %w", t.argv[0], err)
	}
	stderrW.Close()

	t.cmd = cmd
	t.ptmx = ptmx
	t.stderrR = stderrR
	t.started = true

	t.readers.Add(2)
	go func() {
		defer t.readers.Done()
		readInto(ptmx, t.outCh)
	}()
	go func() {
		defer t.readers.Done()
		readInto(stderrR, t.errCh)
	}()
	go t.wait()
	return nil
}

// readInto streams chunks from r until it errors, then closes the channel.
// A pty read fails with EIO once the child side closes; that is the normal
// end of stream.
func readInto(r *os.File, ch chan<- string) {
	defer close(ch)
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			ch <- string(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

func (t *Task) wait() {
	err := t.cmd.Wait()
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		} else {
			code = -1
		}
	}
	// The pty reader sees EIO and the stderr reader sees EOF once the
	// child exits, so both finish on their own. Joining them here means
	// every chunk is in the channels before the exit becomes observable.
	t.readers.Wait()
	t.ptmx.Close()
	t.stderrR.Close()
	close(t.dead)
	t.exitCh <- code
}

// IsRunning reports whether the process is still alive, observing the exit
// notification at most once. The running-to-finished transition happens
// exactly here, so the caller sees it a single time even when Stop races a
// natural exit.
func (t *Task) IsRunning() bool {
	if !t.started || t.finished {
		return false
	}
	select {
	case code := <-t.exitCh:
		t.exitCode = code
		t.finished = true
		return false
	default:
		return true
	}
}

// Finished reports whether the exit has been observed.
func (t *Task) Finished() bool { return t.finished }

// ExitCode returns the exit code once the task has finished.
func (t *Task) ExitCode() (int, bool) {
	if !t.finished {
		return 0, false
	}
	return t.exitCode, true
}

// IncrementalOutput returns the pty output that arrived since the last
// call, in arrival order, without blocking.
func (t *Task) IncrementalOutput() string { return drainChunks(t.outCh) }

// IncrementalErrOutput returns stderr output that arrived since the last
// call, without blocking.
func (t *Task) IncrementalErrOutput() string { return drainChunks(t.errCh) }

func drainChunks(ch <-chan string) string {
	var sb strings.Builder
	for {
		select {
		case s, ok := <-ch:
			if !ok {
				return sb.String()
			}
			sb.WriteString(s)
		default:
			return sb.String()
		}
	}
}

// Write sends input to the child's terminal.
func (t *Task) Write(p []byte) (int, error) {
	if !t.started || t.finished {
		return 0, errors.New("glint: task not running")
	}
	return t.ptmx.Write(p)
}

// Resize adjusts the pty dimensions.
func (t *Task) Resize(cols, rows int) error {
	if !t.started || t.finished {
		return nil
	}
	return pty.Setsize(t.ptmx, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
}

// Stop asks the process group to terminate with sig, escalating to SIGKILL
// if it is still alive after the grace period. Non-blocking; the exit is
// observed through IsRunning like any other. Stopping an already-finished
// task is a no-op.
func (t *Task) Stop(grace time.Duration, sig os.Signal) {
	if !t.started || t.finished || t.stopping {
		return
	}
	t.stopping = true

	sysSig, ok := sig.(syscall.Signal)
	if !ok {
		sysSig = syscall.SIGTERM
	}
	pid := t.cmd.Process.Pid

	// negative pid targets the session created for the child
	_ = syscall.Kill(-pid, sysSig)

	go func() {
		select {
		case <-t.dead:
		case <-time.After(grace):
			_ = syscall.Kill(-pid, syscall.SIGKILL)
		}
	}()
}
