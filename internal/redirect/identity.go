package redirect

import (
	"fmt"
	"os"
	"path/filepath"
)

// Identity is who the running process is: where it lives and what it runs on.
type Identity struct {
	OwnPath    string
	HostTriple string
}

// ResolveIdentity locates the running executable and determines the host
// triple. A non-empty hostOverride is used verbatim instead of detection.
func ResolveIdentity(hostOverride string) (Identity, error) {
	exe, err := os.Executable()
	if err != nil {
		return Identity{}, fmt.Errorf("resolve own executable: %w", err)
	}
	exe, err = filepath.Abs(exe)
	if err != nil {
		return Identity{}, fmt.Errorf("resolve own executable: %w", err)
	}

	host := normalizeTriple(hostOverride)
	if host == "" {
		host, err = HostTriple()
		if err != nil {
			return Identity{}, err
		}
	}
	return Identity{OwnPath: exe, HostTriple: host}, nil
}

// RealCargoPath is where the installer parked the original cargo binary.
func (id Identity) RealCargoPath() string {
	return SiblingPath(id.OwnPath, RealCargoName)
}
