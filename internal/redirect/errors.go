package redirect

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal failure of the redirector or the installer.
type Kind string

const (
	KindPlatformUnknown       Kind = "platform-unknown"
	KindConfigRead            Kind = "config-read"
	KindToolchainQuery        Kind = "toolchain-query"
	KindMissingOriginalBinary Kind = "missing-original-binary"
	KindCopy                  Kind = "copy"
	KindLaunch                Kind = "launch"
)

// Sentinels usable with errors.Is against any *Error of the same kind.
var (
	ErrPlatformUnknown       = &Error{Kind: KindPlatformUnknown}
	ErrConfigRead            = &Error{Kind: KindConfigRead}
	ErrToolchainQuery        = &Error{Kind: KindToolchainQuery}
	ErrMissingOriginalBinary = &Error{Kind: KindMissingOriginalBinary}
	ErrCopy                  = &Error{Kind: KindCopy}
	ErrLaunch                = &Error{Kind: KindLaunch}
)

// Error is a typed failure carrying the path it concerns, if any.
type Error struct {
	Kind Kind
	Path string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	s := string(e.Kind)
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Path != "" {
		s += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind so callers can test against the package sentinels.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, path, msg string, err error) *Error {
	return &Error{Kind: kind, Path: path, Msg: msg, Err: err}
}

// Exit codes shared by both roles.
const (
	ExitOK    = 0
	ExitFatal = 1
)

// ExitCode maps an error from either role to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return ExitFatal
}
