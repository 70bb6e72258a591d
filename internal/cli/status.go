package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/divijg19/cargo-xbuild-redirector/internal/redirect"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how cargo would be dispatched from the current directory (read-only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := env.settings.TargetResolver()
		if err != nil {
			return err
		}
		rep, err := redirect.Status(env.id, env.settings.ConfigPath, resolver)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "executable: %s\n", rep.OwnPath)
		fmt.Fprintf(out, "role: %s\n", rep.Role)
		fmt.Fprintf(out, "host: %s\n", rep.HostTriple)
		fmt.Fprintf(out, "resolver: %s\n", firstNonEmpty(env.settings.Resolver, "pattern"))
		if rep.ConfigPresent {
			fmt.Fprintf(out, "config: %s\n", rep.ConfigPath)
		} else {
			fmt.Fprintf(out, "config: %s (missing)\n", rep.ConfigPath)
		}
		fmt.Fprintf(out, "target: %s\n", rep.Target)
		fmt.Fprintf(out, "mode: %s\n", rep.Mode)
		fmt.Fprintf(out, "realCargo: %s (present=%t)\n", rep.RealCargoPath, rep.RealCargoPresent)
		for _, e := range rep.Errors {
			fmt.Fprintf(out, "error: %s\n", e)
		}
		if n := len(rep.Errors); n > 0 {
			env.log.Warnf("status found %d problem(s)", n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
