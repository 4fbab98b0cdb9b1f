package assetpipe

import (
	"os"
)

// Config holds pipeline configuration.
type Config struct {
	// SourceDir is the input root scanned recursively.
	SourceDir string
	// OutputDir is the output root. It is created idempotently; existing
	// contents are not removed.
	OutputDir string
	// Includes restricts which files are fingerprinted, as doublestar glob
	// patterns relative to SourceDir. Empty means every file ("**/*").
	Includes []string
	// Layout selects preserve (default) or flatten output structure.
	Layout Layout
	// IgnoreFile optionally names a gitignore-format file whose patterns
	// exclude matching assets from the run. A missing file is not an error.
	IgnoreFile string
	// Workers > 1 enables the concurrent pipeline. See Process for the
	// error semantics under concurrency.
	Workers int
	// DryRun runs the full pipeline but writes neither files nor the
	// manifest. Result.Manifest is still populated.
	DryRun bool
}

// Result reports what a successful run did.
type Result struct {
	// FilesDiscovered counts files matched by the walk, before filtering.
	FilesDiscovered int
	// FilesProcessed counts files hashed and written. On success this
	// equals FilesDiscovered minus FilesSkipped.
	FilesProcessed int
	// FilesSkipped counts files excluded by the ignore filter.
	FilesSkipped int
	// CSSMinified counts assets that went through the CSS transform.
	CSSMinified int
	// BytesRead is the total input size; BytesWritten the total output
	// size after transforms. The difference is the minification saving.
	BytesRead    int64
	BytesWritten int64
	// Manifest maps original paths to hashed output paths.
	Manifest Manifest
}

// Process runs the content-addressing pipeline: it walks SourceDir, pipes
// each file through load → transform → hash/rename → write, records the
// mapping, and finally writes manifest.json at the output root.
//
// The run is strictly fail-fast: the first file-level error of any kind
// aborts everything, the manifest is not written, and the single returned
// *Error names the failure kind and the offending relative path. Files
// already written for prior entries remain on disk; there is no rollback.
//
// With Workers > 1 the per-file work runs concurrently. "First error" then
// means the first error the walker observes: it cancels all remaining work,
// in-flight writes may complete, and the fail-fast guarantee (no manifest on
// any failure) is unchanged.
func Process(config Config) (*Result, error) {
	result := &Result{Manifest: make(Manifest)}

	if !config.DryRun {
		if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
			return nil, pipelineErr(KindIO, config.OutputDir, err)
		}
	}

	if config.Workers > 1 {
		if err := processParallel(config, result); err != nil {
			return nil, err
		}
	} else {
		if err := processSequential(config, result); err != nil {
			return nil, err
		}
	}

	if !config.DryRun {
		if err := writeManifest(config.OutputDir, result.Manifest); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// processSequential is the reference single-threaded pipeline: each file is
// completely processed before the next begins.
func processSequential(config Config, result *Result) error {
	ignorer, err := loadIgnoreFile(config.IgnoreFile)
	if err != nil {
		return err
	}

	files, skipped, err := discoverFiles(config.SourceDir, config.Includes, ignorer)
	if err != nil {
		return err
	}
	result.FilesDiscovered = len(files) + skipped
	result.FilesSkipped = skipped

	for _, rel := range files {
		if err := processFile(config, result, rel); err != nil {
			return err
		}
	}
	return nil
}

// processFile pipes one file through the pipeline and records its manifest
// entry. Mutates result; callers in concurrent mode must serialize.
func processFile(config Config, result *Result, rel string) error {
	asset, err := LoadAsset(config.SourceDir, rel)
	if err != nil {
		return err
	}
	result.BytesRead += int64(len(asset.Contents))

	transformed, err := asset.Transform()
	if err != nil {
		return err
	}
	if transformed {
		result.CSSMinified++
	}

	if err := asset.Rename(); err != nil {
		return err
	}

	if !config.DryRun {
		if err := writeAsset(config.OutputDir, asset, config.Layout); err != nil {
			return err
		}
	}
	result.BytesWritten += int64(len(asset.Contents))

	result.Manifest.Add(rel, outputPath(asset.RelPath, config.Layout))
	result.FilesProcessed++
	return nil
}
