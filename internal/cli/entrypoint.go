package cli

import (
	"fmt"
	"os"

	"github.com/divijg19/cargo-xbuild-redirector/internal/config"
	"github.com/divijg19/cargo-xbuild-redirector/internal/log"
	"github.com/divijg19/cargo-xbuild-redirector/internal/redirect"
)

// appEnv is resolved once at startup and shared by every command.
type appEnv struct {
	id       redirect.Identity
	settings config.Settings
	log      *log.Logger
}

var env appEnv

// ExecuteEntrypoint is the single bootstrap for the binary and returns the
// process exit code. The role is decided from the executable's own name:
// installed as cargo it redirects, under any other name it is the installer.
func ExecuteEntrypoint() int {
	settings, err := config.Load(config.DefaultSettingsFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return redirect.ExitFatal
	}
	lg := newLogger(settings, os.Stderr)

	id, err := redirect.ResolveIdentity(settings.HostTriple)
	if err != nil {
		lg.Errorf("Failed: %v", err)
		return redirect.ExitCode(err)
	}

	env = appEnv{id: id, settings: settings, log: lg}
	return run(redirect.RoleFor(id.OwnPath), os.Args[1:])
}

func run(role redirect.Role, args []string) int {
	switch role {
	case redirect.RoleRedirector:
		return runRedirector(args)
	default:
		return Execute(args)
	}
}

func newLogger(s config.Settings, out *os.File) *log.Logger {
	level := log.LevelInfo
	switch {
	case s.Verbose:
		level = log.LevelDebug
	case s.Quiet:
		level = log.LevelWarn
	}
	return log.New(
		log.WithWriter(out),
		log.WithLevel(level),
		log.WithColor(colorEnabled(out)),
	)
}
