// Package git provides the narrow repository interface autobot consumes:
// opening a work tree, retrieving the staged diff, and staging a path
// back into the index. All operations shell out to the git binary.
package git

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/arthur-debert/autobot/pkg/errors"
	"github.com/arthur-debert/autobot/pkg/logging"
)

// Repo is a handle to a git working tree
type Repo struct {
	root string
}

// Open verifies that root is inside a git working tree and returns a
// handle to it.
func Open(ctx context.Context, root string) (*Repo, error) {
	r := &Repo{root: root}
	if _, err := r.run(ctx, "rev-parse", "--git-dir"); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRepoOpen, "not a git repository: %s", root)
	}
	return r, nil
}

// Root returns the path the repository was opened at
func (r *Repo) Root() string {
	return r.root
}

// StagedDiff returns the unified diff between the index and HEAD, i.e.
// the changes staged for the commit being formed. A repository with no
// HEAD yet (first commit) is an error, not an empty diff.
func (r *Repo) StagedDiff(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "diff", "--cached", "HEAD", "--no-color", "--no-ext-diff")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrDiffRetrieve, "failed to retrieve staged diff")
	}
	return out, nil
}

// Stage adds path to the index and persists it, so the file is part of
// the commit currently being formed.
func (r *Repo) Stage(ctx context.Context, path string) error {
	if _, err := r.run(ctx, "add", "--", path); err != nil {
		return errors.Wrapf(err, errors.ErrStage, "failed to stage %s", path)
	}
	return nil
}

// run executes a git command inside the repository root, capturing
// stdout and surfacing stderr in the error message.
func (r *Repo) run(ctx context.Context, args ...string) (string, error) {
	logger := logging.GetLogger("git")
	logger.Debug().Strs("args", args).Str("root", r.root).Msg("running git")

	fullArgs := append([]string{"-C", r.root}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if stderrors.As(err, &execErr) {
			return "", errors.Wrap(err, errors.ErrNotFound, "git not found: ensure git is installed and in PATH")
		}
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", errors.Newf(errors.ErrInternal, "git %s: %s", args[0], errMsg)
	}

	return stdout.String(), nil
}
