package redirect

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// rustArch maps GOARCH to the architecture component of a Rust target triple.
var rustArch = map[string]string{
	"amd64":    "x86_64",
	"386":      "i686",
	"arm64":    "aarch64",
	"arm":      "armv7",
	"riscv64":  "riscv64gc",
	"ppc64le":  "powerpc64le",
	"ppc64":    "powerpc64",
	"s390x":    "s390x",
	"mips64le": "mips64el",
	"loong64":  "loongarch64",
}

// HostTriple guesses the Rust target triple of the platform this binary runs on.
func HostTriple() (string, error) {
	return hostTriple(runtime.GOOS, runtime.GOARCH, detectLibc)
}

func hostTriple(goos, goarch string, libc func() string) (string, error) {
	arch, ok := rustArch[goarch]
	if !ok {
		return "", newError(KindPlatformUnknown, "", "unsupported architecture "+goos+"/"+goarch, nil)
	}

	switch goos {
	case "linux":
		env := libc()
		if goarch == "arm" {
			env += "eabihf"
		}
		return arch + "-unknown-linux-" + env, nil
	case "android":
		if goarch == "arm" {
			return "armv7-linux-androideabi", nil
		}
		return arch + "-linux-android", nil
	case "darwin":
		if goarch != "amd64" && goarch != "arm64" {
			break
		}
		return arch + "-apple-darwin", nil
	case "windows":
		return arch + "-pc-windows-msvc", nil
	case "freebsd", "netbsd":
		return arch + "-unknown-" + goos, nil
	case "openbsd":
		return arch + "-unknown-openbsd", nil
	case "illumos":
		return arch + "-unknown-illumos", nil
	}
	return "", newError(KindPlatformUnknown, "", "unsupported platform "+goos+"/"+goarch, nil)
}

// detectLibc reports "musl" on musl-based distributions and "gnu" otherwise.
func detectLibc() string {
	if _, err := os.Stat("/etc/alpine-release"); err == nil {
		return "musl"
	}
	matches, _ := filepath.Glob("/lib/ld-musl-*.so.1")
	if len(matches) > 0 {
		return "musl"
	}
	return "gnu"
}

// normalizeTriple trims surrounding whitespace from an override value.
func normalizeTriple(s string) string {
	return strings.TrimSpace(s)
}
