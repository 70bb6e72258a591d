package redirect

import (
	"github.com/divijg19/cargo-xbuild-redirector/internal/log"
)

// RedirectOptions carries everything the redirector needs besides argv.
type RedirectOptions struct {
	ConfigPath string
	Resolver   Resolver
	Forward    ForwardOptions
}

// Invocation is the decided outcome for one cargo call, before anything runs.
type Invocation struct {
	Target string
	Mode   Mode
	Exe    string
	Args   []string
}

// PlanInvocation resolves target and mode for args without executing anything.
func PlanInvocation(id Identity, args []string, opts RedirectOptions, lg *log.Logger) (Invocation, error) {
	path := opts.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}
	target, err := ReadTarget(path, id.HostTriple, opts.Resolver, lg)
	if err != nil {
		return Invocation{}, err
	}
	mode := Decide(target, id.HostTriple)
	return Invocation{
		Target: target,
		Mode:   mode,
		Exe:    id.RealCargoPath(),
		Args:   RewriteArgs(mode, args),
	}, nil
}

// Redirect forwards a cargo invocation to the preserved real cargo, switching
// to xbuild when the project targets something other than the host. The
// returned code is what the process should exit with.
func Redirect(id Identity, args []string, opts RedirectOptions, lg *log.Logger) (int, error) {
	if lg == nil {
		lg = log.Discard()
	}
	inv, err := PlanInvocation(id, args, opts, lg)
	if err != nil {
		return ExitFatal, err
	}

	if inv.Mode == ModeDirect {
		lg.Infof("%s redirecting to real cargo for target=%q", InstallerName, inv.Target)
	} else {
		lg.Infof("%s redirecting to real cargo with xbuild because target=%q does not match host %q", InstallerName, inv.Target, id.HostTriple)
	}
	lg.Debugf("exec %s %q", inv.Exe, inv.Args)

	return Forward(inv.Exe, inv.Args, opts.Forward)
}
