package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"jdoc/config"
)

var (
	initOutput string
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Write the default configuration to jdoc.yaml so it can be edited.
An existing file is kept unless --force is given.

Examples:
  jdoc init                         # Write ./jdoc.yaml
  jdoc init -o .jdoc/config.yaml    # Write the hidden variant`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "jdoc.yaml", "path of the config file to write")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(initOutput); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", initOutput)
	}

	if err := config.EnsureDir(initOutput); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := config.DefaultConfig().Save(initOutput); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", initOutput)
	return nil
}
