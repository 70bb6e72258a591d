//go:build unix

package redirect

import (
	"os"
	"syscall"
)

// signalExitCode follows the shell convention for children killed by a signal.
func signalExitCode(state *os.ProcessState) int {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return ExitFatal
}
