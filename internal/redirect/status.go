package redirect

import (
	"errors"
	"io/fs"
	"os"
)

type StatusReport struct {
	OwnPath    string `json:"ownPath"`
	Role       string `json:"role"`
	HostTriple string `json:"hostTriple"`

	ConfigPath    string `json:"configPath"`
	ConfigPresent bool   `json:"configPresent"`
	Target        string `json:"target"`
	Mode          string `json:"mode"`

	RealCargoPath    string `json:"realCargoPath"`
	RealCargoPresent bool   `json:"realCargoPresent"`

	Errors []string `json:"errors,omitempty"`
}

// Status reports how a cargo invocation in the current directory would be
// handled. It never executes anything.
func Status(id Identity, configPath string, r Resolver) (StatusReport, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	rep := StatusReport{
		OwnPath:       id.OwnPath,
		Role:          RoleFor(id.OwnPath).String(),
		HostTriple:    id.HostTriple,
		ConfigPath:    configPath,
		RealCargoPath: id.RealCargoPath(),
	}

	if _, err := os.Stat(configPath); err == nil {
		rep.ConfigPresent = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		rep.Errors = append(rep.Errors, err.Error())
	}

	target, err := ReadTarget(configPath, id.HostTriple, r, nil)
	if err != nil {
		return rep, err
	}
	rep.Target = target
	rep.Mode = Decide(target, id.HostTriple).String()

	if err := ensureExecutable(rep.RealCargoPath); err == nil {
		rep.RealCargoPresent = true
		if sameContents(rep.RealCargoPath, id.OwnPath) {
			rep.Errors = append(rep.Errors, "real cargo is a copy of the redirector; reinstall the toolchain's cargo")
		}
	} else if rep.Role == RoleRedirector.String() {
		rep.Errors = append(rep.Errors, "real cargo unusable: "+err.Error())
	}
	return rep, nil
}
