package workspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	git "github.com/go-git/go-git/v5"
)

// Clone describes a repository found under the workspace root.
type Clone struct {
	// Path is the clone location relative to the root, using the platform
	// path separator.
	Path string

	// Remote is the URL of the origin remote, when requested and present.
	Remote string
}

// Scan walks the root directory and returns every git clone found under it,
// sorted by relative path. Directories inside a clone are not descended
// into. When withRemotes is set, each clone's origin URL is read as well;
// clones without an origin remote report an empty Remote.
func Scan(root string, withRemotes bool) ([]Clone, error) {
	var clones []Clone

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && os.IsNotExist(err) {
				// An empty workspace is not an error.
				return filepath.SkipAll
			}
			return err
		}
		if !d.IsDir() || path == root {
			return nil
		}

		if _, statErr := os.Stat(filepath.Join(path, ".git")); statErr != nil {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		clone := Clone{Path: rel}
		if withRemotes {
			clone.Remote = originURL(path)
		}
		clones = append(clones, clone)
		return filepath.SkipDir
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(clones, func(i, j int) bool { return clones[i].Path < clones[j].Path })
	return clones, nil
}

// originURL reads the first URL of the origin remote, or empty when the
// repository cannot be opened or has no origin.
func originURL(path string) string {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return ""
	}
	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		return ""
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}
