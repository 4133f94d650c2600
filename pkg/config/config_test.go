package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/autobot/pkg/testutil"
)

// clearEnv removes every AUTOBOT_* variable for the duration of a test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvDebug, EnvDisabled, EnvRepoRoot, EnvDotbotConf,
		EnvInclude, EnvExclude, EnvDeleteBackup,
	} {
		if value, ok := os.LookupEnv(key); ok {
			t.Setenv(key, value) // register restoration
			require.NoError(t, os.Unsetenv(key))
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	s, err := Load()
	require.NoError(t, err)

	assert.False(t, s.Debug)
	assert.False(t, s.Disabled)
	assert.Equal(t, DefaultRepoRoot, s.RepoRoot)
	assert.Equal(t, DefaultDotbotConf, s.DotbotConf)
	assert.Equal(t, s.RepoRoot, s.Include, "include defaults to the repo root")
	assert.Equal(t, "", s.Exclude)
	assert.False(t, s.DeleteBackup)
	assert.Equal(t, 0, s.Verbosity())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDebug, "1")
	t.Setenv(EnvDisabled, "yes")
	t.Setenv(EnvRepoRoot, "/tmp/dotfiles")
	t.Setenv(EnvDotbotConf, "conf/install.conf.yaml")
	t.Setenv(EnvInclude, "/tmp/dotfiles/shell:/tmp/dotfiles/editor")
	t.Setenv(EnvExclude, "/tmp/dotfiles/private")
	t.Setenv(EnvDeleteBackup, "true")

	s, err := Load()
	require.NoError(t, err)

	assert.True(t, s.Debug)
	assert.True(t, s.Disabled)
	assert.Equal(t, "/tmp/dotfiles", s.RepoRoot)
	assert.Equal(t, "conf/install.conf.yaml", s.DotbotConf)
	assert.Equal(t, "/tmp/dotfiles/shell:/tmp/dotfiles/editor", s.Include)
	assert.Equal(t, "/tmp/dotfiles/private", s.Exclude)
	assert.True(t, s.DeleteBackup)
	assert.Equal(t, 2, s.Verbosity())
}

func TestLoadIncludeFollowsConfiguredRepoRoot(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRepoRoot, "/srv/dots")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/dots", s.Include)
}

func TestLoadRepoConfigFile(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	testutil.WriteFile(t, filepath.Join(root, ".autobot.toml"),
		"dotbot_conf = \"links.yaml\"\nexclude = \"private\"\n")
	t.Setenv(EnvRepoRoot, root)

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "links.yaml", s.DotbotConf)
	assert.Equal(t, "private", s.Exclude)
}

func TestEnvironmentOverridesRepoConfigFile(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	testutil.WriteFile(t, filepath.Join(root, ".autobot.toml"),
		"dotbot_conf = \"links.yaml\"\n")
	t.Setenv(EnvRepoRoot, root)
	t.Setenv(EnvDotbotConf, "env.yaml")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env.yaml", s.DotbotConf)
}

func TestConfPath(t *testing.T) {
	tests := []struct {
		name     string
		repoRoot string
		conf     string
		want     string
	}{
		{
			name:     "relative conf joins repo root",
			repoRoot: "/tmp/dotfiles",
			conf:     "install.conf.yaml",
			want:     "/tmp/dotfiles/install.conf.yaml",
		},
		{
			name:     "absolute conf wins",
			repoRoot: "/tmp/dotfiles",
			conf:     "/etc/install.conf.yaml",
			want:     "/etc/install.conf.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{RepoRoot: tt.repoRoot, DotbotConf: tt.conf}
			assert.Equal(t, tt.want, s.ConfPath())
		})
	}
}
