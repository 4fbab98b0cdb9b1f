package assetpipe

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// defaultInclude matches every file under the root.
const defaultInclude = "**/*"

// discoverFiles enumerates every regular file under root matched by the
// include patterns, returning forward-slash root-relative paths. Directory
// entries are never returned. Symlinked files are matched like regular
// files; symlinked directories are not followed, so cycles are impossible.
//
// The walk is fail-fast: a missing root, a root that is not a directory, or
// any intermediate read failure aborts immediately with a traversal error.
// Order follows doublestar's lexical traversal but callers must not depend
// on it.
func discoverFiles(root string, includes []string, ignorer *ignore.GitIgnore) (files []string, skipped int, err error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, 0, pipelineErr(KindTraversal, root, err)
	}
	if !info.IsDir() {
		return nil, 0, pipelineErr(KindTraversal, root, errors.New("not a directory"))
	}

	if len(includes) == 0 {
		includes = []string{defaultInclude}
	}

	seen := make(map[string]bool)
	for _, pattern := range includes {
		matches, err := doublestar.FilepathGlob(
			filepath.Join(root, filepath.FromSlash(pattern)),
			doublestar.WithFilesOnly(),
			doublestar.WithFailOnIOErrors(),
			doublestar.WithNoFollow(),
		)
		if err != nil {
			return nil, 0, pipelineErr(KindTraversal, root, fmt.Errorf("glob pattern %q: %w", pattern, err))
		}

		for _, match := range matches {
			rel, err := filepath.Rel(root, match)
			if err != nil {
				return nil, 0, pipelineErr(KindTraversal, match, err)
			}
			relSlash := filepath.ToSlash(rel)
			if seen[relSlash] {
				continue
			}
			seen[relSlash] = true

			// The glob lstats entries, so a symlink whose target is a
			// directory slips through the files-only filter. Resolve it
			// here: symlinked files pass, symlinked directories do not.
			lstat, err := os.Lstat(match)
			if err != nil {
				return nil, 0, pipelineErr(KindIO, relSlash, err)
			}
			if lstat.Mode()&os.ModeSymlink != 0 {
				target, err := os.Stat(match)
				if err != nil {
					return nil, 0, pipelineErr(KindIO, relSlash, err)
				}
				if target.IsDir() {
					continue
				}
			}

			if ignorer != nil && ignorer.MatchesPath(relSlash) {
				skipped++
				continue
			}
			files = append(files, relSlash)
		}
	}

	return files, skipped, nil
}

// loadIgnoreFile compiles the gitignore file at the given path. A missing
// file degrades gracefully to no filtering, matching how project ignore
// files are optional. A file that exists but cannot be read is an error:
// silently fingerprinting assets the caller asked to ignore would be worse
// than failing.
func loadIgnoreFile(path string) (*ignore.GitIgnore, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	ignorer, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, pipelineErr(KindIO, path, err)
	}
	return ignorer, nil
}
