package redirect

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
)

// ForwardOptions wires the child's standard streams. Nil streams default to
// the current process's.
type ForwardOptions struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Forward runs exe with args, waits for it, and returns the exit code the
// caller should exit with. A child killed by a signal yields 128+signal on
// Unix and ExitFatal elsewhere. Failing to start the child is a launch error.
func Forward(exe string, args []string, opts ForwardOptions) (int, error) {
	if err := ensureExecutable(exe); err != nil {
		return ExitFatal, newError(KindLaunch, exe, "downstream binary unusable", err)
	}

	cmd := exec.Command(exe, args...)
	cmd.Stdin = firstReader(opts.Stdin, os.Stdin)
	cmd.Stdout = firstWriter(opts.Stdout, os.Stdout)
	cmd.Stderr = firstWriter(opts.Stderr, os.Stderr)

	if err := cmd.Start(); err != nil {
		return ExitFatal, newError(KindLaunch, exe, "start downstream binary", err)
	}

	// The terminal delivers Ctrl-C to the whole process group; the child
	// decides what to do with it and we report whatever it exits with.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	err := cmd.Wait()
	if err == nil {
		return ExitOK, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitCodeOf(exitErr.ProcessState), nil
	}
	return ExitFatal, newError(KindLaunch, exe, "wait for downstream binary", err)
}

func exitCodeOf(state *os.ProcessState) int {
	if state == nil {
		return ExitFatal
	}
	if code := state.ExitCode(); code >= 0 {
		return code
	}
	return signalExitCode(state)
}

func firstReader(r io.Reader, def io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return def
}

func firstWriter(w io.Writer, def io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return def
}
