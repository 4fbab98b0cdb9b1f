package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/yacobolo/assetpipe"
	"github.com/yacobolo/assetpipe/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fingerprint assets and write the manifest",
	Long: `Walk the source directory, hash every file (minifying CSS first),
write the renamed files under the output directory, and emit manifest.json
mapping original paths to hashed paths.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.String("source", "web/static", "Source asset directory")
	f.String("output", "dist/static", "Output directory for hashed files")
	f.StringSlice("include", nil, "Glob patterns for files to include")
	f.String("layout", "preserve", "Output layout: preserve|flatten")
	f.String("ignore-file", "", "Gitignore-format file of assets to skip")
	f.Int("workers", 1, "Concurrent workers (1 = sequential)")
	f.Bool("dry-run", false, "Run the pipeline without writing anything")
}

func runRun(cmd *cobra.Command, _ []string) error {
	config := buildRunConfig()
	verbose := getBoolWithFallback("verbose", "verbose", false)
	quiet := getBoolWithFallback("quiet", "quiet", false)

	logger := log.New(os.Stderr)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Debug("starting run",
		"source", config.SourceDir,
		"output", config.OutputDir,
		"layout", config.Layout.String(),
		"workers", config.Workers,
		"dry-run", config.DryRun)

	start := time.Now()
	result, err := assetpipe.Process(config)
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	if verbose {
		for original, hashed := range result.Manifest {
			logger.Debug("fingerprinted", "from", original, "to", hashed)
		}
	}

	if quiet {
		return nil
	}

	if config.DryRun {
		// Print the would-be manifest so the run is inspectable.
		if err := result.Manifest.Encode(os.Stdout); err != nil {
			return fmt.Errorf("encoding manifest: %w", err)
		}
	}

	useColors := report.ShouldUseColors(getBoolWithFallback("color", "color", false))
	report.Render(os.Stdout, report.Summary{
		SourceDir:       config.SourceDir,
		OutputDir:       config.OutputDir,
		FilesDiscovered: result.FilesDiscovered,
		FilesProcessed:  result.FilesProcessed,
		FilesSkipped:    result.FilesSkipped,
		CSSMinified:     result.CSSMinified,
		BytesRead:       result.BytesRead,
		BytesWritten:    result.BytesWritten,
		Elapsed:         time.Since(start),
		DryRun:          config.DryRun,
	}, useColors)

	return nil
}
