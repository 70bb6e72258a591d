package cli

import (
	"github.com/divijg19/cargo-xbuild-redirector/internal/redirect"
)

// runRedirector handles an invocation under cargo's name. It never returns
// an error to cobra: cargo's own flags and subcommands must reach the real
// cargo untouched.
func runRedirector(args []string) int {
	resolver, err := env.settings.TargetResolver()
	if err != nil {
		env.log.Errorf("Failed: %v", err)
		return redirect.ExitFatal
	}
	code, err := redirect.Redirect(env.id, args, redirect.RedirectOptions{
		ConfigPath: env.settings.ConfigPath,
		Resolver:   resolver,
	}, env.log)
	if err != nil {
		env.log.Errorf("%s unable to run cargo: %v", redirect.InstallerName, err)
		return redirect.ExitCode(err)
	}
	return code
}
