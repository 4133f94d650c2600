// Package paths provides path-set handling for autobot's include and
// exclude filters. Sets are built from colon-delimited environment
// strings and tested for containment against candidate file paths.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/arthur-debert/autobot/pkg/errors"
	"github.com/arthur-debert/autobot/pkg/logging"
)

// ListSeparator delimits entries in AUTOBOT_INCLUDE and AUTOBOT_EXCLUDE
const ListSeparator = ":"

// entry is a single normalized set member with its compiled glob form.
// pattern is nil when the entry is not a valid glob.
type entry struct {
	path    string
	pattern glob.Glob
}

// Set is an ordered sequence of absolute, tilde-expanded directory or
// file paths. Entry order is preserved from the source string.
type Set struct {
	entries []entry
}

// NewSet builds a Set from a colon-delimited string. Empty segments are
// dropped before expansion; remaining entries are tilde-expanded and
// made absolute.
func NewSet(raw string) (*Set, error) {
	logger := logging.GetLogger("paths")
	s := &Set{}
	for _, segment := range strings.Split(raw, ListSeparator) {
		if segment == "" {
			continue
		}
		abs, err := Normalize(segment)
		if err != nil {
			return nil, err
		}
		e := entry{path: abs}
		g, err := glob.Compile(abs, filepath.Separator)
		if err != nil {
			// Plain paths always compile; only a malformed glob
			// pattern lands here. The entry still participates in
			// the prefix checks.
			logger.Warn().Err(err).Str("entry", abs).Msg("path entry is not a valid glob pattern")
		} else {
			e.pattern = g
		}
		s.entries = append(s.entries, e)
	}
	return s, nil
}

// Entries returns the normalized entry paths in order
func (s *Set) Entries() []string {
	paths := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		paths = append(paths, e.path)
	}
	return paths
}

// IsEmpty reports whether the set has no entries
func (s *Set) IsEmpty() bool {
	return len(s.entries) == 0
}

// Contains reports whether path falls inside the set. A path is
// contained when an entry equals it, is an ancestor directory of it, or
// glob-matches it. Ancestor checks require a path-separator boundary, so
// /home/foo does not contain /home/foobar/x.
func (s *Set) Contains(path string) bool {
	for _, e := range s.entries {
		if e.path == path {
			return true
		}
		if strings.HasPrefix(path, e.path+string(filepath.Separator)) {
			return true
		}
		if e.pattern != nil && e.pattern.Match(path) {
			return true
		}
	}
	return false
}

// Normalize tilde-expands a path and makes it absolute
func Normalize(path string) (string, error) {
	expanded := ExpandHome(path)
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}
	return abs, nil
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
