package log_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/divijg19/cargo-xbuild-redirector/internal/log"
)

func TestDefaultLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	lg := log.New(log.WithWriter(&buf))

	lg.Infof("redirecting %s", "cargo")
	lg.Debugf("hidden")

	out := buf.String()
	if out != "[+] redirecting cargo\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	lg := log.New(log.WithWriter(&buf), log.WithLevel(log.LevelWarn))

	lg.Infof("info")
	lg.Warnf("warn")
	lg.Errorf("error")

	out := buf.String()
	if strings.Contains(out, "info") {
		t.Fatalf("info should be filtered: %q", out)
	}
	if !strings.Contains(out, "[!] warn\n") || !strings.Contains(out, "[x] error\n") {
		t.Fatalf("missing warn/error lines: %q", out)
	}
}

func TestColor(t *testing.T) {
	var plain, colored bytes.Buffer
	log.New(log.WithWriter(&plain)).Errorf("boom")
	log.New(log.WithWriter(&colored), log.WithColor(true)).Errorf("boom")

	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("unexpected ANSI codes without color: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("expected ANSI codes with color: %q", colored.String())
	}
}

func TestDiscard(t *testing.T) {
	lg := log.Discard()
	lg.Errorf("nothing")
	if lg.Enabled(log.LevelError) {
		t.Fatalf("discard logger should not be enabled")
	}
}
