package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/divijg19/cargo-xbuild-redirector/internal/redirect"
)

var (
	installToolchain string
	installDryRun    bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Installs the binary into a rustup tool chain.",
	Long: `Asks rustup where cargo lives, preserves the original cargo next to it as
` + redirect.RealCargoName + ` (only the first time), and copies this binary
over cargo. Running install again refreshes the redirector and keeps the
preserved cargo as it is.`,
	Args: cobra.NoArgs,
	Example: `
  cargo-xbuild-redirector install
  cargo-xbuild-redirector install --toolchain nightly
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := env.settings.ManagerCommand()
		if err != nil {
			return err
		}
		res, err := redirect.Install(redirect.InstallOptions{
			Manager:   manager,
			Toolchain: installToolchain,
			Source:    env.id.OwnPath,
			DryRun:    installDryRun,
		}, env.log)
		if err != nil {
			if res.Plan.Original != "" {
				env.log.Errorf("Install aborted; original=%s backup=%s", res.Plan.Original, res.Plan.Backup)
			}
			return err
		}

		out := cmd.OutOrStdout()
		if !res.Installed {
			fmt.Fprintf(out, "🧪 Dry run: would install %s over %s\n", res.Plan.Source, res.Plan.Original)
			if res.BackedUp {
				fmt.Fprintf(out, "🧪 Dry run: would preserve original cargo as %s\n", res.Plan.Backup)
			}
			return nil
		}
		if res.BackedUp {
			fmt.Fprintf(out, "📦 Preserved original cargo as %s\n", res.Plan.Backup)
		}
		fmt.Fprintf(out, "✅ Installed redirector at %s (real cargo: %s)\n", res.Plan.Original, res.Plan.Backup)
		return nil
	},
}

func init() {
	installCmd.Flags().StringVarP(&installToolchain, "toolchain", "T", "", "Name of the rustup toolchain to install into")
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "print the install plan without copying anything")
	rootCmd.AddCommand(installCmd)
}
