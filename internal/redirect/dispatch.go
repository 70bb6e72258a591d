package redirect

import (
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// ToolName is the tool this program impersonates once installed.
	ToolName = "cargo"
	// InstallerName is the name the binary is published under.
	InstallerName = "cargo-xbuild-redirector"
	// RealCargoName is the reserved sibling name of the preserved original cargo.
	RealCargoName = "cargo-xbuild-redirector-real"

	buildKeyword  = "build"
	xbuildKeyword = "xbuild"
)

// Role is what the binary does for this invocation, fixed at startup.
type Role int

const (
	RoleInstaller Role = iota
	RoleRedirector
)

func (r Role) String() string {
	if r == RoleRedirector {
		return "redirector"
	}
	return "installer"
}

// RoleFor derives the role from the executable's path. A file stem of
// "cargo" means we were installed in cargo's place.
func RoleFor(exePath string) Role {
	if exeStem(exePath) == ToolName {
		return RoleRedirector
	}
	return RoleInstaller
}

// Mode is how an invocation is forwarded to the real cargo.
type Mode int

const (
	ModeDirect Mode = iota
	ModeRedirect
)

func (m Mode) String() string {
	if m == ModeRedirect {
		return "redirect"
	}
	return "direct"
}

// Decide compares the declared target against the host triple. Comparison is
// exact; triples are not normalized.
func Decide(target, host string) Mode {
	if target == host {
		return ModeDirect
	}
	return ModeRedirect
}

// RewriteArgs returns the arguments to hand to the real cargo. In redirect
// mode the first "build" token becomes "xbuild"; nothing else changes.
// The input slice is never modified.
func RewriteArgs(mode Mode, args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	if mode != ModeRedirect {
		return out
	}
	for i, a := range out {
		if a == buildKeyword {
			out[i] = xbuildKeyword
			break
		}
	}
	return out
}

// SiblingPath returns name placed next to path, with the platform's
// executable suffix.
func SiblingPath(path, name string) string {
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(name), ".exe") {
		name += ".exe"
	}
	return filepath.Join(filepath.Dir(path), name)
}

func exeStem(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
