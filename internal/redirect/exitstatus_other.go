//go:build !unix

package redirect

import "os"

func signalExitCode(*os.ProcessState) int {
	return ExitFatal
}
