package redirect

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/divijg19/cargo-xbuild-redirector/internal/log"
)

const testHost = "x86_64-unknown-linux-gnu"

func TestPatternResolver(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"indented", "[build]\n    target = \"thumbv7em-none-eabihf\"\n", "thumbv7em-none-eabihf", true},
		{"no spaces", "[build]\ntarget=\"riscv32imac-unknown-none-elf\"\n", "riscv32imac-unknown-none-elf", true},
		{"wide spaces", "[build]\n\ttarget   =    \"x\"\n", "x", true},
		{"first line", "target = \"first\"\n", "first", true},
		{"first match wins", "[build]\n target = \"a\"\n target = \"b\"\n", "a", true},
		{"unquoted", "[build]\ntarget=foo\n", "", false},
		{"empty value", "[build]\ntarget = \"\"\n", "", false},
		{"other key", "[build]\nrustc-target = \"y\"\n", "", false},
		{"glued key", "[build]\nxtarget = \"y\"\n", "", false},
		{"no target", "[build]\njobs = 4\n", "", false},
		{"split across lines", "[build]\ntarget\n=\n\"x\"\n", "", false},
		{"value on next line", "[build]\ntarget =\n\"x\"\n", "", false},
		{"empty file", "", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := PatternResolver{}.ResolveTarget(c.text)
			if ok != c.wantOK || got != c.want {
				t.Fatalf("ResolveTarget(%q) = (%q, %t), want (%q, %t)", c.text, got, ok, c.want, c.wantOK)
			}
		})
	}
}

func TestTOMLResolver(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"build target", "[build]\ntarget = \"thumbv7em-none-eabihf\"\n", "thumbv7em-none-eabihf", true},
		{"target list", "[build]\ntarget = [\"a\", \"b\"]\n", "a", true},
		{"other table", "[target.x86_64-unknown-linux-gnu]\nlinker = \"cc\"\n", "", false},
		{"invalid toml", "[build\ntarget = \"a\"\n", "", false},
		{"no build", "", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := TOMLResolver{}.ResolveTarget(c.text)
			if ok != c.wantOK || got != c.want {
				t.Fatalf("ResolveTarget(%q) = (%q, %t), want (%q, %t)", c.text, got, ok, c.want, c.wantOK)
			}
		})
	}
}

func TestResolverByName(t *testing.T) {
	for _, name := range []string{"", "pattern", "PATTERN", " toml "} {
		if _, err := ResolverByName(name); err != nil {
			t.Fatalf("ResolverByName(%q): %v", name, err)
		}
	}
	if _, err := ResolverByName("yaml"); err == nil {
		t.Fatalf("expected error for unknown resolver")
	}
}

func TestReadTarget_MissingFileUsesHost(t *testing.T) {
	var buf bytes.Buffer
	lg := log.New(log.WithWriter(&buf))
	got, err := ReadTarget(filepath.Join(t.TempDir(), ".cargo", "config"), testHost, nil, lg)
	if err != nil {
		t.Fatalf("ReadTarget: %v", err)
	}
	if got != testHost {
		t.Fatalf("got %q want host", got)
	}
	if !strings.Contains(buf.String(), "No ") {
		t.Fatalf("expected informational log, got %q", buf.String())
	}
}

func TestReadTarget_DeclaredAndUnmatched(t *testing.T) {
	dir := t.TempDir()
	declared := writeFile(t, filepath.Join(dir, "a", ".cargo", "config"), "[build]\n    target = \"thumbv7em-none-eabihf\"\n", 0o644)
	unmatched := writeFile(t, filepath.Join(dir, "b", ".cargo", "config"), "[build]\ntarget=foo\n", 0o644)

	got, err := ReadTarget(declared, testHost, PatternResolver{}, nil)
	if err != nil || got != "thumbv7em-none-eabihf" {
		t.Fatalf("declared: got %q err=%v", got, err)
	}
	got, err = ReadTarget(unmatched, testHost, PatternResolver{}, nil)
	if err != nil || got != testHost {
		t.Fatalf("unmatched: got %q err=%v", got, err)
	}
}

func TestReadTarget_CargoIsPlainFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".cargo"), "not a dir", 0o644)

	var buf bytes.Buffer
	got, err := ReadTarget(filepath.Join(dir, ".cargo", "config"), testHost, nil, log.New(log.WithWriter(&buf)))
	if err != nil {
		t.Fatalf("ReadTarget: %v", err)
	}
	if got != testHost {
		t.Fatalf("got %q want host", got)
	}
	if !strings.Contains(buf.String(), "No ") {
		t.Fatalf("expected informational log, got %q", buf.String())
	}
}

func TestReadTarget_UnsearchableParentUsesHost(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory permissions are not enforced the same way")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}
	parent := filepath.Join(t.TempDir(), ".cargo")
	cfg := writeFile(t, filepath.Join(parent, "config"), "[build]\ntarget = \"x\"\n", 0o644)
	if err := os.Chmod(parent, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(parent, 0o755) })

	got, err := ReadTarget(cfg, testHost, nil, nil)
	if err != nil {
		t.Fatalf("ReadTarget: %v", err)
	}
	if got != testHost {
		t.Fatalf("got %q want host", got)
	}
}

func TestReadTarget_UnreadableIsFatal(t *testing.T) {
	// A directory exists but cannot be read as a file.
	_, err := ReadTarget(t.TempDir(), testHost, nil, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrConfigRead) {
		t.Fatalf("expected config read error, got %v", err)
	}
}
