// Package config holds the redirector's own runtime settings. Project build
// configuration (.cargo/config) is read by the redirect package instead.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/viper"

	"github.com/divijg19/cargo-xbuild-redirector/internal/redirect"
)

const (
	envPrefix        = "XBUILD_REDIRECTOR"
	settingsDirName  = "cargo-xbuild-redirector"
	settingsFileName = "settings.toml"
)

// Settings are read from XBUILD_REDIRECTOR_* environment variables and an
// optional settings.toml; the environment wins.
type Settings struct {
	ConfigPath string `mapstructure:"config_path"`
	Resolver   string `mapstructure:"resolver"`
	HostTriple string `mapstructure:"host_triple"`
	Rustup     string `mapstructure:"rustup"`
	Verbose    bool   `mapstructure:"verbose"`
	Quiet      bool   `mapstructure:"quiet"`
}

// DefaultSettingsFile returns the per-user settings file location, or "" if
// no config directory can be determined.
func DefaultSettingsFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, settingsDirName, settingsFileName)
}

// Load reads settings. A missing file is not an error; file may be empty to
// use the environment only.
func Load(file string) (Settings, error) {
	v := viper.New()
	v.SetDefault("config_path", redirect.DefaultConfigPath)
	v.SetDefault("resolver", "pattern")
	v.SetDefault("host_triple", "")
	v.SetDefault("rustup", "rustup")
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if file != "" {
		if st, err := os.Stat(file); err == nil && !st.IsDir() {
			v.SetConfigFile(file)
			v.SetConfigType("toml")
			if err := v.ReadInConfig(); err != nil {
				return Settings{}, fmt.Errorf("read settings %s: %w", file, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if _, err := s.TargetResolver(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// TargetResolver returns the configured .cargo/config matching rule.
func (s Settings) TargetResolver() (redirect.Resolver, error) {
	return redirect.ResolverByName(s.Resolver)
}

// ManagerCommand splits the rustup setting into argv, honoring shell quoting.
func (s Settings) ManagerCommand() ([]string, error) {
	raw := strings.TrimSpace(s.Rustup)
	if raw == "" {
		return nil, errors.New("rustup command must be non-empty")
	}
	argv, err := shlex.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("parse rustup command: %w", err)
	}
	if len(argv) == 0 {
		return nil, errors.New("rustup command must not be empty")
	}
	return argv, nil
}
