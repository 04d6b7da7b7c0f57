package glint

import (
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskParsesQuoting(t *testing.T) {
	task, err := NewTask(`sh -c 'echo "hello world"'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"sh", "-c", `echo "hello world"`}, task.Command())
}

func TestNewTaskRejectsBadInput(t *testing.T) {
	_, err := NewTask("echo 'unterminated")
	assert.Error(t, err)

	_, err = NewTask("")
	assert.Error(t, err)
}

// waitSettled polls IsRunning the way the UI loop does, with a deadline.
func waitSettled(t *testing.T, task *Task) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for task.IsRunning() {
		if time.Now().After(deadline) {
			t.Fatal("task did not finish in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestTaskRunsAndReportsExit(t *testing.T) {
	task, err := NewTask("sh -c 'echo out; exit 3'")
	require.NoError(t, err)
	require.NoError(t, task.Start(80, 24))

	waitSettled(t, task)

	code, ok := task.ExitCode()
	require.True(t, ok)
	assert.Equal(t, 3, code)
	assert.True(t, task.Finished())

	out := task.IncrementalOutput()
	assert.Contains(t, out, "out")
}

// Once the exit is observable every chunk the child wrote must already be
// drainable; the readers are joined before the exit signal is sent.
// Repeated runs shake out ordering between the waiter and the readers.
func TestTaskOutputCompleteAtExit(t *testing.T) {
	for i := 0; i < 10; i++ {
		task, err := NewTask("sh -c 'echo tail-marker; exit 0'")
		require.NoError(t, err)
		require.NoError(t, task.Start(80, 24))

		waitSettled(t, task)
		assert.Contains(t, task.IncrementalOutput(), "tail-marker", "run %d", i)
	}
}

// Stopping a task that already exited must not manufacture a second
// running-to-finished transition or disturb the recorded exit code.
func TestTaskStopAfterExit(t *testing.T) {
	task, err := NewTask("sh -c 'exit 7'")
	require.NoError(t, err)
	require.NoError(t, task.Start(80, 24))

	waitSettled(t, task)
	code, ok := task.ExitCode()
	require.True(t, ok)
	require.Equal(t, 7, code)

	task.Stop(time.Second, syscall.SIGTERM)

	assert.True(t, task.Finished())
	assert.False(t, task.IsRunning())
	code, ok = task.ExitCode()
	require.True(t, ok)
	assert.Equal(t, 7, code)

	select {
	case extra := <-task.exitCh:
		t.Errorf("second exit signal %d after Stop on a finished task", extra)
	default:
	}
}

func TestTaskSeparatesStderr(t *testing.T) {
	task, err := NewTask("sh -c 'echo stdout-line; echo stderr-line >&2'")
	require.NoError(t, err)
	require.NoError(t, task.Start(80, 24))

	waitSettled(t, task)

	out := task.IncrementalOutput()
	errOut := task.IncrementalErrOutput()
	assert.Contains(t, out, "stdout-line")
	assert.NotContains(t, out, "stderr-line")
	assert.Contains(t, errOut, "stderr-line")
}

func TestTaskWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	task, err := NewTask("pwd")
	require.NoError(t, err)
	task.SetDir(dir)
	require.NoError(t, task.Start(80, 24))

	waitSettled(t, task)
	assert.Contains(t, task.IncrementalOutput(), dir)
}

func TestTaskIncrementalDraining(t *testing.T) {
	task, err := NewTask("sh -c 'echo first; sleep 0.3; echo second'")
	require.NoError(t, err)
	require.NoError(t, task.Start(80, 24))

	var collected strings.Builder
	deadline := time.Now().Add(5 * time.Second)
	for task.IsRunning() {
		collected.WriteString(task.IncrementalOutput())
		if time.Now().After(deadline) {
			t.Fatal("task did not finish in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
	collected.WriteString(task.IncrementalOutput())

	assert.Contains(t, collected.String(), "first")
	assert.Contains(t, collected.String(), "second")
}

func TestTaskStop(t *testing.T) {
	task, err := NewTask("sleep 60")
	require.NoError(t, err)
	require.NoError(t, task.Start(80, 24))
	require.True(t, task.IsRunning())

	task.Stop(time.Second, syscall.SIGTERM)
	waitSettled(t, task)

	code, ok := task.ExitCode()
	require.True(t, ok)
	assert.NotEqual(t, 0, code)
}

func TestTaskStartTwice(t *testing.T) {
	task, err := NewTask("true")
	require.NoError(t, err)
	require.NoError(t, task.Start(80, 24))
	assert.Error(t, task.Start(80, 24))
	waitSettled(t, task)
}

func TestTaskWriteToTerminal(t *testing.T) {
	task, err := NewTask("head -n 1")
	require.NoError(t, err)
	require.NoError(t, task.Start(80, 24))

	_, err = task.Write([]byte("typed\n"))
	require.NoError(t, err)

	waitSettled(t, task)
	assert.Contains(t, task.IncrementalOutput(), "typed")

	// writes after exit are rejected
	_, err = task.Write([]byte("late"))
	assert.Error(t, err)
}

func TestTaskLifecycleGuards(t *testing.T) {
	task, err := NewTask("true")
	require.NoError(t, err)

	assert.False(t, task.IsRunning(), "unstarted task is not running")
	_, ok := task.ExitCode()
	assert.False(t, ok)
	task.Stop(time.Second, os.Interrupt) // no-op before Start

	require.NoError(t, task.Start(80, 24))
	waitSettled(t, task)
	assert.NoError(t, task.Resize(100, 40), "resize after exit is a no-op")
}
