// Package config loads autobot's settings. Configuration is layered the
// same way across all autobot installs: built-in defaults, then an
// optional .autobot.toml in the repository root, then AUTOBOT_*
// environment variables, which always win. The hook's active path takes
// no command-line flags.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/autobot/pkg/errors"
)

// Environment variable names
const (
	// EnvDebug enables verbose logging when non-empty
	EnvDebug = "AUTOBOT_DEBUG"

	// EnvDisabled skips all processing when non-empty
	EnvDisabled = "AUTOBOT_DISABLED"

	// EnvRepoRoot is the repository root the hook operates on
	EnvRepoRoot = "AUTOBOT_REPO_ROOT"

	// EnvDotbotConf is the path to the dotbot link configuration file
	EnvDotbotConf = "AUTOBOT_DOTBOT_CONF"

	// EnvInclude is a colon-separated list of directories to watch
	EnvInclude = "AUTOBOT_INCLUDE"

	// EnvExclude is a colon-separated list of directories to ignore
	EnvExclude = "AUTOBOT_EXCLUDE"

	// EnvDeleteBackup removes the config backup after a sync when non-empty
	EnvDeleteBackup = "AUTOBOT_DELETE_BACKUP"
)

// Defaults
const (
	// DefaultRepoRoot is the repository root when none is configured
	DefaultRepoRoot = "."

	// DefaultDotbotConf is the conventional dotbot config file name
	DefaultDotbotConf = "install.conf.yaml"
)

// envPrefix is stripped from variables before they become koanf keys
const envPrefix = "AUTOBOT_"

// Settings is the resolved configuration for one hook invocation
type Settings struct {
	// Debug enables verbose logging
	Debug bool

	// Disabled short-circuits the hook entirely
	Disabled bool

	// RepoRoot is the repository the hook inspects
	RepoRoot string

	// DotbotConf is the link config path, possibly relative to RepoRoot
	DotbotConf string

	// Include is the colon-separated include list (defaults to RepoRoot)
	Include string

	// Exclude is the colon-separated exclude list
	Exclude string

	// DeleteBackup removes the config backup after a sync attempt
	DeleteBackup bool
}

// Load builds Settings from defaults, the optional repo config file and
// the environment.
func Load() (*Settings, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	defaults := map[string]interface{}{
		"repo_root":   DefaultRepoRoot,
		"dotbot_conf": DefaultDotbotConf,
		"exclude":     "",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Repo config file, if present. The repo root has to come from
	// the environment here since the file lives inside it.
	repoRoot := os.Getenv(EnvRepoRoot)
	if repoRoot == "" {
		repoRoot = DefaultRepoRoot
	}
	for _, filename := range []string{".autobot.toml", "autobot.toml"} {
		path := filepath.Join(repoRoot, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
			}
			break
		}
	}

	// 3. Environment, highest precedence
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	s := &Settings{
		Debug:        flag(k, "debug"),
		Disabled:     flag(k, "disabled"),
		RepoRoot:     k.String("repo_root"),
		DotbotConf:   k.String("dotbot_conf"),
		Exclude:      k.String("exclude"),
		DeleteBackup: flag(k, "delete_backup"),
	}

	// The include list defaults to the repository root itself
	if k.Exists("include") {
		s.Include = k.String("include")
	} else {
		s.Include = s.RepoRoot
	}

	return s, nil
}

// ConfPath resolves the dotbot config path against the repository root
func (s *Settings) ConfPath() string {
	if filepath.IsAbs(s.DotbotConf) {
		return s.DotbotConf
	}
	return filepath.Join(s.RepoRoot, s.DotbotConf)
}

// Verbosity maps the debug flag onto the logging verbosity scale
func (s *Settings) Verbosity() int {
	if s.Debug {
		return 2
	}
	return 0
}

// flag interprets a key the way the hook's environment contract does:
// any non-empty value means enabled. Real booleans from the file layer
// keep their value.
func flag(k *koanf.Koanf, key string) bool {
	if !k.Exists(key) {
		return false
	}
	if b, ok := k.Get(key).(bool); ok {
		return b
	}
	return k.String(key) != ""
}
