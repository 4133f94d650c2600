package dotbot

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/autobot/pkg/errors"
)

// BackupSuffix is appended to the config file name to form the backup name
const BackupSuffix = ".bak"

// createBackup copies the config file to a sibling backup and returns
// its path. The backup name is <config>.bak, probing .bak0, .bak1, …
// when the name is taken. The original file must exist and be readable;
// nothing destructive has happened yet when this fails.
func createBackup(configPath string) (string, error) {
	backupPath := configPath + BackupSuffix
	for n := 0; ; n++ {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			break
		}
		backupPath = fmt.Sprintf("%s%s%d", configPath, BackupSuffix, n)
	}

	if err := copyFile(configPath, backupPath); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupCreate, "failed to back up config file %s", configPath)
	}
	return backupPath, nil
}

// restoreBackup overwrites the config file with the backup contents
func restoreBackup(backupPath, configPath string) error {
	if err := copyFile(backupPath, configPath); err != nil {
		return errors.Wrapf(err, errors.ErrBackupRestore, "failed to restore config from %s", backupPath)
	}
	return nil
}

// copyFile copies src to dst, preserving the source mode
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
