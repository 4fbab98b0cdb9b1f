package assetpipe

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// processParallel overlaps I/O and hashing across files using a fastwalk
// worker pool. Manifest insertions and counters are serialized through a
// single mutex owned by this function. The first error any worker returns
// cancels the walk; work already in flight may finish its write, but the
// manifest is never written after a failure (Process handles that), and
// completed writes are not rolled back.
func processParallel(config Config, result *Result) error {
	info, err := os.Stat(config.SourceDir)
	if err != nil {
		return pipelineErr(KindTraversal, config.SourceDir, err)
	}
	if !info.IsDir() {
		return pipelineErr(KindTraversal, config.SourceDir, errors.New("not a directory"))
	}

	ignorer, err := loadIgnoreFile(config.IgnoreFile)
	if err != nil {
		return err
	}
	includes := config.Includes
	if len(includes) == 0 {
		includes = []string{defaultInclude}
	}

	var mu sync.Mutex

	conf := &fastwalk.Config{
		NumWorkers: config.Workers,
		Follow:     false,
	}
	walkErr := fastwalk.Walk(conf, config.SourceDir, func(p string, d fs.DirEntry, err error) error {
		relSlash := relativeTo(config.SourceDir, p)
		if err != nil {
			return pipelineErr(KindTraversal, relSlash, err)
		}
		if d.IsDir() {
			return nil
		}

		// Symlinked files pass through like regular files; symlinked
		// directories are skipped (Follow is off, so fastwalk never
		// descends into them either).
		if d.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(p)
			if err != nil {
				return pipelineErr(KindIO, relSlash, err)
			}
			if target.IsDir() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}

		if !matchesAny(includes, relSlash) {
			return nil
		}
		if ignorer != nil && ignorer.MatchesPath(relSlash) {
			mu.Lock()
			result.FilesDiscovered++
			result.FilesSkipped++
			mu.Unlock()
			return nil
		}

		asset, err := LoadAsset(config.SourceDir, relSlash)
		if err != nil {
			return err
		}
		bytesRead := int64(len(asset.Contents))

		transformed, err := asset.Transform()
		if err != nil {
			return err
		}
		if err := asset.Rename(); err != nil {
			return err
		}
		if !config.DryRun {
			if err := writeAsset(config.OutputDir, asset, config.Layout); err != nil {
				return err
			}
		}

		mu.Lock()
		defer mu.Unlock()
		result.FilesDiscovered++
		result.FilesProcessed++
		if transformed {
			result.CSSMinified++
		}
		result.BytesRead += bytesRead
		result.BytesWritten += int64(len(asset.Contents))
		result.Manifest.Add(relSlash, outputPath(asset.RelPath, config.Layout))
		return nil
	})

	return walkErr
}

// relativeTo returns p relative to root, forward-slash normalized, so error
// paths and manifest keys share the same root-relative form. Falls back to
// p as-is when no relative form exists.
func relativeTo(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

// matchesAny reports whether rel matches at least one include pattern.
func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
