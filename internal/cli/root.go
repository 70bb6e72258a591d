// internal/cli/root.go

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/divijg19/cargo-xbuild-redirector/internal/redirect"
	"github.com/divijg19/cargo-xbuild-redirector/internal/version"
)

// rootCmd is the installer surface, used whenever the binary is not running
// under cargo's name.
var rootCmd = &cobra.Command{
	Use:   redirect.InstallerName,
	Short: "Redirect `cargo build` to `cargo xbuild` for cross-compiled projects",
	Long: `If the cargo subcommand is build, this checks the ${PWD}/.cargo/config file for
'target = "..."'. If the declared target differs from the host triple it runs
` + redirect.RealCargoName + ` xbuild, otherwise ` + redirect.RealCargoName + ` build.

Run with 'install --toolchain <toolchain_name>' to install into a rustup toolchain.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version.String(),
}

// Execute runs the installer CLI with args and returns the exit code.
func Execute(args []string) int {
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return redirect.ExitCode(err)
	}
	return redirect.ExitOK
}
