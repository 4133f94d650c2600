// Package diff extracts added-file paths from unified diff text.
package diff

import (
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"

	"github.com/arthur-debert/autobot/pkg/errors"
	"github.com/arthur-debert/autobot/pkg/logging"
)

// AddedFiles parses patch text and returns the repository-relative paths
// of files that are newly introduced (no pre-image), in patch order.
func AddedFiles(patch string) ([]string, error) {
	logger := logging.GetLogger("diff")

	files, _, err := gitdiff.Parse(strings.NewReader(patch))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDiffParse, "failed to parse staged diff")
	}

	var added []string
	for _, f := range files {
		if !f.IsNew {
			continue
		}
		name := f.NewName
		if name == "" {
			// Binary or mode-only entries can omit the post-image
			// name in the hunk header; fall back to the old name.
			name = f.OldName
		}
		if name == "" {
			continue
		}
		added = append(added, name)
	}

	logger.Debug().Int("files", len(files)).Int("added", len(added)).Msg("parsed staged diff")
	return added, nil
}
