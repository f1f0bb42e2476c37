package gitutil

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		preferSSH bool
		want      string
	}{
		{
			name:  "shorthand expands to HTTPS",
			input: "octocat/Spoon-Knife",
			want:  "https://github.com/octocat/Spoon-Knife",
		},
		{
			name:      "shorthand expands to SSH",
			input:     "octocat/Spoon-Knife",
			preferSSH: true,
			want:      "git@github.com:octocat/Spoon-Knife",
		},
		{
			name:  "full HTTPS URL passes through",
			input: "https://gitlab.com/user/repo.git",
			want:  "https://gitlab.com/user/repo.git",
		},
		{
			name:      "full URL ignores SSH preference",
			input:     "https://gitlab.com/user/repo.git",
			preferSSH: true,
			want:      "https://gitlab.com/user/repo.git",
		},
		{
			name:  "SCP-like address passes through",
			input: "git@github.com:user/repo.git",
			want:  "git@github.com:user/repo.git",
		},
		{
			name:  "bare host passes through",
			input: "myon.info",
			want:  "myon.info",
		},
		{
			name:  "malformed input passes through unvalidated",
			input: ":foo/bar",
			want:  ":foo/bar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input, tt.preferSSH)
			if got != tt.want {
				t.Errorf("Normalize(%q, %v) = %q, want %q", tt.input, tt.preferSSH, got, tt.want)
			}
		})
	}
}

func TestDerivePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "HTTPS URL strips .git",
			input: "https://github.com/octocat/Spoon-Knife.git",
			want:  "github.com/octocat/Spoon-Knife",
		},
		{
			name:  "HTTPS URL without .git",
			input: "https://github.com/octocat/Spoon-Knife",
			want:  "github.com/octocat/Spoon-Knife",
		},
		{
			name:  "SSH URL drops anonymous credential",
			input: "ssh://git@host:123/foo/bar/baz.git",
			want:  "host:123/foo/bar/baz",
		},
		{
			name:  "SSH URL keeps named credential",
			input: "ssh://user@host:123/~user/foo/bar/baz.git",
			want:  "user@host:123/~user/foo/bar/baz",
		},
		{
			name:  "SCP-like address keeps .git and tilde segment",
			input: "user@host:~user/foo/bar/baz.git",
			want:  "user@host/~user/foo/bar/baz.git",
		},
		{
			name:  "SCP-like address drops anonymous credential",
			input: "git@host:foo/bar/baz.git",
			want:  "host/foo/bar/baz.git",
		},
		{
			name:  "SCP-like address without credential",
			input: "host:foo/bar",
			want:  "host/foo/bar",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "bare filesystem path",
			input:   "/",
			wantErr: true,
		},
		{
			name:    "scheme with no remainder",
			input:   "ssh://",
			wantErr: true,
		},
		{
			name:    "leading colon",
			input:   ":foo/bar/baz.git",
			wantErr: true,
		},
		{
			name:    "absolute path with no host",
			input:   "/path/to/repo",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DerivePath(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("DerivePath(%q) = %q, want error", tt.input, got)
				}
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("DerivePath(%q) error = %v, want *ParseError", tt.input, err)
				}
				if parseErr.Locator != tt.input {
					t.Errorf("ParseError.Locator = %q, want %q", parseErr.Locator, tt.input)
				}
				return
			}

			if err != nil {
				t.Fatalf("DerivePath(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("DerivePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Dropping the git@ credential is stable: deriving from the already
// stripped form yields the identical path.
func TestDerivePathCredentialStripStable(t *testing.T) {
	tests := []struct {
		name     string
		withCred string
		stripped string
	}{
		{
			name:     "scheme form",
			withCred: "ssh://git@host:123/foo/bar/baz.git",
			stripped: "ssh://host:123/foo/bar/baz.git",
		},
		{
			name:     "SCP-like form",
			withCred: "git@host:foo/bar/baz.git",
			stripped: "host:foo/bar/baz.git",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := DerivePath(tt.withCred)
			if err != nil {
				t.Fatalf("DerivePath(%q) unexpected error: %v", tt.withCred, err)
			}
			second, err := DerivePath(tt.stripped)
			if err != nil {
				t.Fatalf("DerivePath(%q) unexpected error: %v", tt.stripped, err)
			}
			if first != second {
				t.Errorf("DerivePath(%q) = %q, DerivePath(%q) = %q, want equal", tt.withCred, first, tt.stripped, second)
			}
		})
	}
}

func TestNormalizeThenDerive(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		preferSSH bool
		want      string
	}{
		{
			name:  "HTTPS shorthand round trip",
			input: "octocat/Spoon-Knife",
			want:  "github.com/octocat/Spoon-Knife",
		},
		{
			name:      "SSH shorthand round trip",
			input:     "octocat/Spoon-Knife",
			preferSSH: true,
			want:      "github.com/octocat/Spoon-Knife",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DerivePath(Normalize(tt.input, tt.preferSSH))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("derived path = %q, want %q", got, tt.want)
			}
		})
	}
}
