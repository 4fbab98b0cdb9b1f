package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .assetpipe.yaml config file",
	Long:  `Create a .assetpipe.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".assetpipe.yaml"); err == nil && !force {
			return fmt.Errorf(".assetpipe.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".assetpipe.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .assetpipe.yaml")
		return nil
	},
}

const defaultConfig = `# assetpipe configuration
# Docs: https://github.com/yacobolo/assetpipe

# Shared settings
verbose: false

# Run settings
run:
  source: web/static
  output: dist/static
  include:
    - "**/*"
  layout: preserve        # preserve | flatten
  ignore-file: ""         # gitignore-format file of assets to skip
  workers: 1              # >1 enables the concurrent pipeline
  dry-run: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
