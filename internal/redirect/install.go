package redirect

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/divijg19/cargo-xbuild-redirector/internal/log"
)

// Plan names the three binaries an install touches.
type Plan struct {
	// Original is where the toolchain expects cargo; the redirector goes here.
	Original string
	// Backup is the reserved sibling the genuine cargo is preserved under.
	Backup string
	// Source is the running redirector binary.
	Source string
}

// NewPlan derives the backup location from the original cargo path.
func NewPlan(original, source string) Plan {
	return Plan{
		Original: original,
		Backup:   SiblingPath(original, RealCargoName),
		Source:   source,
	}
}

type InstallOptions struct {
	// Manager is the toolchain manager command line, e.g. ["rustup"].
	Manager []string
	// Toolchain selects a toolchain via "+<name>"; empty means the default.
	Toolchain string
	// Source is the binary to install, normally the running executable.
	Source string
	// DryRun resolves the plan without touching the filesystem.
	DryRun bool
}

type InstallResult struct {
	Plan Plan
	// BackedUp is true when this run preserved the original cargo.
	BackedUp bool
	// Installed is true when the redirector was copied into place. It stays
	// false for a dry run.
	Installed bool
}

// ManagerArgs builds "<manager...> [+toolchain] which cargo".
func ManagerArgs(manager []string, toolchain string) (string, []string, error) {
	if len(manager) == 0 || strings.TrimSpace(manager[0]) == "" {
		return "", nil, errors.New("toolchain manager command is empty")
	}
	args := append([]string{}, manager[1:]...)
	if tc := strings.TrimSpace(toolchain); tc != "" {
		args = append(args, "+"+tc)
	}
	args = append(args, "which", ToolName)
	return manager[0], args, nil
}

// LocateCargo asks the toolchain manager where cargo is installed.
func LocateCargo(manager []string, toolchain string) (string, error) {
	name, args, err := ManagerArgs(manager, toolchain)
	if err != nil {
		return "", newError(KindToolchainQuery, "", "build manager command", err)
	}
	cmdline := strings.Join(append([]string{name}, args...), " ")

	stdout, stderr, err := execCapture(name, args)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := fmt.Sprintf("`%s` exited with status %d", cmdline, exitErr.ExitCode())
			if detail := strings.TrimSpace(stdout + "\n" + stderr); detail != "" {
				msg += ": " + detail
			}
			return "", newError(KindToolchainQuery, "", msg, nil)
		}
		return "", newError(KindToolchainQuery, "", fmt.Sprintf("unable to execute `%s`", cmdline), err)
	}
	if stdout == "" {
		return "", newError(KindToolchainQuery, "", fmt.Sprintf("`%s` printed no path", cmdline), nil)
	}
	// Only the first line is the path; rustup may append notices.
	path, _, _ := strings.Cut(stdout, "\n")
	return strings.TrimSpace(path), nil
}

// Install replaces cargo with the redirector. The original cargo is copied to
// the backup name once; later runs leave the backup alone and only refresh
// the redirector. Nothing is rolled back if a later step fails.
func Install(opts InstallOptions, lg *log.Logger) (InstallResult, error) {
	if lg == nil {
		lg = log.Discard()
	}
	if opts.Toolchain != "" {
		lg.Infof("Installing for toolchain %s", opts.Toolchain)
	}

	original, err := LocateCargo(opts.Manager, opts.Toolchain)
	if err != nil {
		return InstallResult{}, err
	}
	plan := NewPlan(original, opts.Source)
	res := InstallResult{Plan: plan}
	lg.Debugf("install plan: original=%s backup=%s source=%s", plan.Original, plan.Backup, plan.Source)

	haveOriginal := fileExists(plan.Original)
	haveBackup := fileExists(plan.Backup)
	if !haveOriginal && !haveBackup {
		return res, newError(KindMissingOriginalBinary, plan.Original, "cannot find cargo at expected location", nil)
	}
	if haveOriginal && sameFile(plan.Source, plan.Original) {
		return res, newError(KindCopy, plan.Original, "redirector is already running from the install location", nil)
	}

	if !haveBackup {
		lg.Infof("Moving %s to %s to install re-director.", plan.Original, plan.Backup)
		if !opts.DryRun {
			if err := copyFile(plan.Original, plan.Backup); err != nil {
				return res, fmt.Errorf("preserve original cargo: %w", err)
			}
		}
		res.BackedUp = true
	} else {
		lg.Debugf("backup %s already present; keeping it", plan.Backup)
	}

	lg.Infof("Moving %s to %s to install re-director.", plan.Source, plan.Original)
	if opts.DryRun {
		return res, nil
	}
	if err := copyFile(plan.Source, plan.Original); err != nil {
		return res, fmt.Errorf("install redirector: %w", err)
	}
	res.Installed = true
	return res, nil
}
