// Package testutil provides shared helpers for autobot's tests:
// temporary git repositories and small file assertions.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content, creating parent
// directories as needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// ReadFile returns the content of a file, failing the test on error
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// RequireGit skips the test when the git binary is not available
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available, skipping")
	}
}

// GitRepo is a temporary git repository for tests
type GitRepo struct {
	Root string
	t    *testing.T
}

// NewGitRepo initializes a git repository in a temp directory with an
// identity configured so commits work in bare CI environments.
func NewGitRepo(t *testing.T) *GitRepo {
	t.Helper()
	RequireGit(t)

	repo := &GitRepo{Root: t.TempDir(), t: t}
	repo.Git("init")
	repo.Git("config", "user.email", "autobot@example.com")
	repo.Git("config", "user.name", "autobot test")
	repo.Git("config", "commit.gpgsign", "false")
	return repo
}

// Git runs a git command in the repository, failing the test on error
func (r *GitRepo) Git(args ...string) string {
	r.t.Helper()
	cmd := exec.Command("git", append([]string{"-C", r.Root}, args...)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		r.t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return string(out)
}

// WriteFile creates a file relative to the repository root
func (r *GitRepo) WriteFile(rel, content string) string {
	r.t.Helper()
	path := filepath.Join(r.Root, rel)
	WriteFile(r.t, path, content)
	return path
}

// CommitAll stages everything and commits it
func (r *GitRepo) CommitAll(msg string) {
	r.t.Helper()
	r.Git("add", "-A")
	r.Git("commit", "-m", msg)
}

// StagedFiles returns `git diff --cached --name-only` output
func (r *GitRepo) StagedFiles() string {
	r.t.Helper()
	return r.Git("diff", "--cached", "--name-only")
}
