// Package cmd implements the CLI commands for shopee-relay.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "shopee-relay",
	Short: "Republish Shopee affiliate offers with tracked links",
	Long:  "A relay service over the Shopee affiliate GraphQL API: product and offer search, tracked short links, and commission reports, exposed through a webhook API and a Telegram bot.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
