package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clyra-ai/wrkr-docs/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize wrkr-docs configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site deployment and generates a .wrkr-docs.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(cfgFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
		}

		if nonInteractive, _ := cmd.Flags().GetBool("non-interactive"); nonInteractive {
			if err := config.DefaultConfig().Save(cfgFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", cfgFile)
			return nil
		}

		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	initCmd.Flags().Bool("non-interactive", false, "write the default configuration without prompting")
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
