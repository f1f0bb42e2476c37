package executor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/google/go-cmp/cmp"
)

// fakeRunner records invocations instead of running git.
type fakeRunner struct {
	calls [][]string
	err   error
}

func (f *fakeRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	return "", f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCloneInvokesGit(t *testing.T) {
	runner := &fakeRunner{}
	cloner := NewClonerWithRunner(runner, discardLogger())

	dest := filepath.Join(t.TempDir(), "github.com", "octocat", "Spoon-Knife")
	err := cloner.Clone(context.Background(), "https://github.com/octocat/Spoon-Knife", dest, []string{"--depth", "1"})
	if err != nil {
		t.Fatalf("Clone() unexpected error: %v", err)
	}

	want := [][]string{{"clone", "https://github.com/octocat/Spoon-Knife", dest, "--depth", "1"}}
	if diff := cmp.Diff(want, runner.calls); diff != "" {
		t.Errorf("git invocations mismatch (-want +got):\n%s", diff)
	}

	// The parent directory is created ahead of the clone.
	if _, err := os.Stat(filepath.Dir(dest)); err != nil {
		t.Errorf("parent directory not created: %v", err)
	}
}

func TestClonePropagatesRunnerError(t *testing.T) {
	wantErr := &GitExitError{Args: []string{"clone"}, ExitCode: 128}
	runner := &fakeRunner{err: wantErr}
	cloner := NewClonerWithRunner(runner, discardLogger())

	dest := filepath.Join(t.TempDir(), "host", "repo")
	err := cloner.Clone(context.Background(), "https://host/repo", dest, nil)
	if !errors.Is(err, wantErr) {
		t.Fatalf("Clone() error = %v, want %v", err, wantErr)
	}
}

func TestCloneExistingMatchingOrigin(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "github.com", "octocat", "Spoon-Knife")
	repo, err := git.PlainInit(dest, false)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: git.DefaultRemoteName,
		URLs: []string{"git@github.com:octocat/Spoon-Knife.git"},
	})
	if err != nil {
		t.Fatalf("create remote: %v", err)
	}

	runner := &fakeRunner{}
	cloner := NewClonerWithRunner(runner, discardLogger())

	// The SSH spelling of the same repository is accepted.
	err = cloner.Clone(context.Background(), "https://github.com/octocat/Spoon-Knife", dest, nil)
	if err != nil {
		t.Fatalf("Clone() unexpected error: %v", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("git invoked %d times for existing clone, want 0", len(runner.calls))
	}
}

func TestCloneExistingMismatchedOrigin(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "github.com", "octocat", "Spoon-Knife")
	repo, err := git.PlainInit(dest, false)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: git.DefaultRemoteName,
		URLs: []string{"https://github.com/somebody/else"},
	})
	if err != nil {
		t.Fatalf("create remote: %v", err)
	}

	cloner := NewClonerWithRunner(&fakeRunner{}, discardLogger())

	err = cloner.Clone(context.Background(), "https://github.com/octocat/Spoon-Knife", dest, nil)
	if !IsOriginMismatchError(err) {
		t.Fatalf("Clone() error = %v, want *OriginMismatchError", err)
	}
}

func TestNormalizeRemote(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		same bool
	}{
		{
			name: "HTTPS and SSH spellings match",
			a:    "https://github.com/User/Repo.git",
			b:    "git@github.com:user/repo",
			same: true,
		},
		{
			name: "scheme SSH and SCP spellings match",
			a:    "ssh://git@host/foo/bar",
			b:    "git@host:foo/bar.git",
			same: true,
		},
		{
			name: "different repositories differ",
			a:    "https://github.com/octocat/Spoon-Knife",
			b:    "https://github.com/somebody/else",
			same: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeRemote(tt.a) == normalizeRemote(tt.b)
			if got != tt.same {
				t.Errorf("normalizeRemote(%q) == normalizeRemote(%q) = %v, want %v", tt.a, tt.b, got, tt.same)
			}
		})
	}
}
