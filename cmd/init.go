package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wassat/website/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a site configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the listen address, chat provider and data directory, then writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
