package dotbot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/autobot/pkg/testutil"
)

func TestCreateBackup(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "install.conf.yaml")
	testutil.WriteFile(t, config, "- link: {}\n")

	backup, err := createBackup(config)
	require.NoError(t, err)
	assert.Equal(t, config+".bak", backup)
	assert.Equal(t, "- link: {}\n", testutil.ReadFile(t, backup))
}

func TestCreateBackupProbesOnCollision(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "install.conf.yaml")
	testutil.WriteFile(t, config, "current\n")
	testutil.WriteFile(t, config+".bak", "old backup\n")
	testutil.WriteFile(t, config+".bak0", "older backup\n")

	backup, err := createBackup(config)
	require.NoError(t, err)
	assert.Equal(t, config+".bak1", backup)
	assert.Equal(t, "current\n", testutil.ReadFile(t, backup))

	// Existing backups are untouched
	assert.Equal(t, "old backup\n", testutil.ReadFile(t, config+".bak"))
	assert.Equal(t, "older backup\n", testutil.ReadFile(t, config+".bak0"))
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "install.conf.yaml")
	backup := filepath.Join(dir, "install.conf.yaml.bak")
	testutil.WriteFile(t, config, "corrupted\n")
	testutil.WriteFile(t, backup, "original\n")

	require.NoError(t, restoreBackup(backup, config))
	assert.Equal(t, "original\n", testutil.ReadFile(t, config))
}
