// Package cmd implements the sra CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "sra",
		Short: "CLI client for the Shopee affiliate API",
		Long: "sra is a command-line client for the Shopee affiliate GraphQL API.\n" +
			"It lets you search product and shop offers, generate tracked short\n" +
			"links, and pull conversion reports from the terminal.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.sra.yaml)")
	rootCmd.PersistentFlags().
		String("app-id", "", "Shopee affiliate app ID")
	rootCmd.PersistentFlags().
		String("secret", "", "Shopee affiliate app secret")
	rootCmd.PersistentFlags().
		String("base-url", "https://open-api.affiliate.shopee.com.br/graphql", "affiliate API endpoint")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("app_id", rootCmd.PersistentFlags().Lookup("app-id")))
	cobra.CheckErr(viper.BindPFlag("secret", rootCmd.PersistentFlags().Lookup("secret")))
	cobra.CheckErr(viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(offersCmd())
	rootCmd.AddCommand(shopsCmd())
	rootCmd.AddCommand(linkCmd())
	rootCmd.AddCommand(reportCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sra")
	}

	viper.SetEnvPrefix("SRA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newAffiliate() (*shopee.Affiliate, error) {
	appID := viper.GetString("app_id")
	secret := viper.GetString("secret")
	if appID == "" || secret == "" {
		return nil, fmt.Errorf("app ID and secret are required (set --app-id/--secret or SRA_APP_ID/SRA_SECRET)")
	}

	client := shopee.NewClient(appID, secret,
		shopee.WithBaseURL(viper.GetString("base_url")),
		shopee.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
	)
	return shopee.NewAffiliate(client), nil
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}

// describeErr swaps raw affiliate API errors for their friendly description.
func describeErr(err error) error {
	var apiErr *shopee.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("affiliate api error %d: %s", apiErr.Code, shopee.Describe(apiErr))
	}
	return err
}
