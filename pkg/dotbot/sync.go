package dotbot

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/autobot/pkg/logging"
)

// HomePrefix is the literal destination prefix dotbot resolves to the
// user's home directory at deploy time.
const HomePrefix = "~/"

// Result reports what one synchronization run did. A recovered failure
// is surfaced here instead of an error return so callers decide the
// exit code explicitly; the config file itself is already restored.
type Result struct {
	// Updated is true when the config file was rewritten
	Updated bool

	// Added holds the links appended in this run, in order
	Added []Link

	// BackupPath is where the pre-run copy of the config lives. Empty
	// after the backup has been removed.
	BackupPath string

	// Recovered is the error the run hit after the backup was taken,
	// nil on success. The config file equals its pre-run contents when
	// this is set.
	Recovered error
}

// Sync appends link tasks for addedFiles to the config at configPath.
// Directory components of added files are stripped: dotfiles are linked
// flat into the home directory, so only the basename names the link.
//
// The config is copied to a backup before any mutation. Errors after
// that point restore the original file and come back in
// Result.Recovered rather than as an error; only a failure to create
// the backup (missing or unreadable config) is returned as an error,
// since nothing destructive can have happened yet. When removeBackup is
// set the backup is deleted regardless of outcome.
func Sync(configPath string, addedFiles []string, removeBackup bool) (*Result, error) {
	logger := logging.GetLogger("dotbot")

	backupPath, err := createBackup(configPath)
	if err != nil {
		return nil, err
	}

	res := &Result{BackupPath: backupPath}

	if err := apply(configPath, addedFiles, res); err != nil {
		logger.Error().Err(err).Str("config", configPath).Msg("sync failed, restoring config from backup")
		res.Updated = false
		res.Added = nil
		res.Recovered = err
		if restoreErr := restoreBackup(backupPath, configPath); restoreErr != nil {
			logger.Error().Err(restoreErr).Str("backup", backupPath).Msg("restore failed, backup file retained")
		}
	}

	if removeBackup {
		if rmErr := os.Remove(backupPath); rmErr != nil {
			logger.Warn().Err(rmErr).Str("backup", backupPath).Msg("failed to remove backup file")
		} else {
			res.BackupPath = ""
		}
	}

	return res, nil
}

// apply loads the config, appends the missing links and writes the file
// back. The file is not rewritten when nothing is missing.
func apply(configPath string, addedFiles []string, res *Result) error {
	logger := logging.GetLogger("dotbot")

	doc, err := LoadDocument(configPath)
	if err != nil {
		return err
	}

	existing := doc.LinkDestinations()

	var links []Link
	for _, f := range addedFiles {
		base := filepath.Base(f)
		linkTo := HomePrefix + "." + base
		if existing[linkTo] {
			logger.Debug().Str("dest", linkTo).Msg("link already configured, skipping")
			continue
		}
		// Duplicate candidates within one run collapse here too
		existing[linkTo] = true
		links = append(links, Link{To: linkTo, From: base})
	}

	if len(links) == 0 {
		logger.Debug().Str("config", configPath).Msg("nothing to add, config left untouched")
		return nil
	}

	doc.AppendLinkTask(links)
	if err := doc.Save(configPath); err != nil {
		return err
	}

	res.Updated = true
	res.Added = links
	logger.Info().Int("links", len(links)).Str("config", configPath).Msg("appended link task")
	return nil
}
