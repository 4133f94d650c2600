// Package hook orchestrates one pre-commit run: inspect the staged
// diff, filter added files through the include/exclude sets, sync the
// dotbot config and re-stage it.
package hook

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/autobot/pkg/config"
	"github.com/arthur-debert/autobot/pkg/diff"
	"github.com/arthur-debert/autobot/pkg/dotbot"
	"github.com/arthur-debert/autobot/pkg/git"
	"github.com/arthur-debert/autobot/pkg/logging"
	"github.com/arthur-debert/autobot/pkg/paths"
)

// Outcome classifies what a run did, for exit-code and messaging
// decisions at the entry point.
type Outcome int

const (
	// OutcomeDisabled means the hook was turned off and did nothing
	OutcomeDisabled Outcome = iota

	// OutcomeNoChanges means no new files needed linking
	OutcomeNoChanges

	// OutcomeUpdated means the config was updated and re-staged
	OutcomeUpdated

	// OutcomeRecovered means synchronization failed and the config was
	// restored; the commit is deliberately not blocked.
	OutcomeRecovered
)

// Report is the result of one hook run
type Report struct {
	Outcome Outcome

	// Added holds the links appended on an updated run
	Added []dotbot.Link

	// Recovered carries the synchronization error on a recovered run
	Recovered error
}

// Run executes the hook with the given settings. An error return is
// fatal for the commit: the repository could not be opened, the staged
// diff could not be retrieved or parsed, the config could not be backed
// up, or re-staging the config failed. Synchronization failures after
// the backup never surface as errors; they come back as
// OutcomeRecovered.
func Run(ctx context.Context, settings *config.Settings) (*Report, error) {
	logger := logging.GetLogger("hook")

	if settings.Disabled {
		logger.Debug().Msg("autobot is disabled, skipping")
		return &Report{Outcome: OutcomeDisabled}, nil
	}

	repo, err := git.Open(ctx, settings.RepoRoot)
	if err != nil {
		return nil, err
	}

	added, err := GetAddedFiles(ctx, repo, settings.Include, settings.Exclude)
	if err != nil {
		return nil, err
	}

	// The config file must never link itself
	added, err = dropConfigFile(added, repo.Root(), settings.ConfPath())
	if err != nil {
		return nil, err
	}

	if len(added) == 0 {
		logger.Debug().Msg("no new files to link")
		return &Report{Outcome: OutcomeNoChanges}, nil
	}

	res, err := dotbot.Sync(settings.ConfPath(), added, settings.DeleteBackup)
	if err != nil {
		return nil, err
	}
	if res.Recovered != nil {
		return &Report{Outcome: OutcomeRecovered, Recovered: res.Recovered}, nil
	}
	if !res.Updated {
		return &Report{Outcome: OutcomeNoChanges}, nil
	}

	// Re-stage the config so the update rides along with this commit
	if err := repo.Stage(ctx, settings.ConfPath()); err != nil {
		return nil, err
	}

	logger.Info().Int("links", len(res.Added)).Msg("config updated and re-staged")
	return &Report{Outcome: OutcomeUpdated, Added: res.Added}, nil
}

// GetAddedFiles returns the repo-relative paths of files newly added in
// the staged diff that fall inside the include set and outside the
// exclude set. Order follows the diff. The raw include and exclude
// strings are colon-delimited path lists.
func GetAddedFiles(ctx context.Context, repo *git.Repo, includesRaw, excludesRaw string) ([]string, error) {
	logger := logging.GetLogger("hook")

	includes, err := paths.NewSet(includesRaw)
	if err != nil {
		return nil, err
	}
	excludes, err := paths.NewSet(excludesRaw)
	if err != nil {
		return nil, err
	}

	patch, err := repo.StagedDiff(ctx)
	if err != nil {
		return nil, err
	}

	added, err := diff.AddedFiles(patch)
	if err != nil {
		return nil, err
	}

	var kept []string
	for _, rel := range added {
		abs, err := paths.Normalize(filepath.Join(repo.Root(), rel))
		if err != nil {
			return nil, err
		}
		if includes.Contains(abs) && !excludes.Contains(abs) {
			kept = append(kept, rel)
		} else {
			logger.Debug().Str("file", rel).Msg("added file outside include set, ignoring")
		}
	}

	logger.Debug().Int("added", len(added)).Int("kept", len(kept)).Msg("filtered staged additions")
	return kept, nil
}

// dropConfigFile removes the dotbot config's own path from the
// candidate list, comparing resolved absolute paths.
func dropConfigFile(added []string, repoRoot, confPath string) ([]string, error) {
	confAbs, err := paths.Normalize(confPath)
	if err != nil {
		return nil, err
	}

	kept := added[:0]
	for _, rel := range added {
		abs, err := paths.Normalize(filepath.Join(repoRoot, rel))
		if err != nil {
			return nil, err
		}
		if abs == confAbs {
			continue
		}
		kept = append(kept, rel)
	}
	return kept, nil
}
