package redirect

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/divijg19/cargo-xbuild-redirector/internal/log"
)

// DefaultConfigPath is the project-relative cargo configuration file.
const DefaultConfigPath = ".cargo/config"

// Resolver extracts a declared build target from cargo config text.
type Resolver interface {
	ResolveTarget(text string) (string, bool)
}

// targetLineRE requires line start or whitespace before "target" so keys such
// as "rustc-target" or "xtarget" do not match. The key, "=" and value must
// share one line.
var targetLineRE = regexp.MustCompile(`(?m)(?:^|\s)target[ \t]*=[ \t]*"([^"\n]*)"`)

// PatternResolver matches the first `target = "<triple>"` anywhere in the
// text, regardless of the table it appears in.
type PatternResolver struct{}

func (PatternResolver) ResolveTarget(text string) (string, bool) {
	m := targetLineRE.FindStringSubmatch(text)
	if len(m) < 2 || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// TOMLResolver decodes the file and reads [build].target.
type TOMLResolver struct{}

type cargoConfig struct {
	Build struct {
		Target any `toml:"target"`
	} `toml:"build"`
}

func (TOMLResolver) ResolveTarget(text string) (string, bool) {
	var c cargoConfig
	if err := toml.Unmarshal([]byte(text), &c); err != nil {
		return "", false
	}
	switch v := c.Build.Target.(type) {
	case string:
		return v, v != ""
	case []any:
		// cargo accepts a list of targets; the first one decides.
		if len(v) > 0 {
			if s, ok := v[0].(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// ResolverByName maps the resolver setting to an implementation.
func ResolverByName(name string) (Resolver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "pattern":
		return PatternResolver{}, nil
	case "toml":
		return TOMLResolver{}, nil
	default:
		return nil, fmt.Errorf("invalid resolver %q (expected pattern|toml)", name)
	}
}

// ReadTarget returns the target declared in the config file at path, or host
// when the file is absent or declares nothing. Any stat failure counts as
// absent; only a file stat confirms but that cannot be read is an error.
func ReadTarget(path, host string, r Resolver, lg *log.Logger) (string, error) {
	if lg == nil {
		lg = log.Discard()
	}
	if r == nil {
		r = PatternResolver{}
	}

	if _, err := os.Stat(path); err != nil {
		lg.Infof("No %s file exists.", path)
		lg.Debugf("stat %s: %v", path, err)
		return host, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", newError(KindConfigRead, path, "read cargo config", err)
	}

	target, ok := r.ResolveTarget(string(data))
	if !ok {
		lg.Infof("No 'target =' line in %s; using host %s", path, host)
		return host, nil
	}
	lg.Debugf("matched target = %s", target)
	return target, nil
}
