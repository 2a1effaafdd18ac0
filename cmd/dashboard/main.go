package main

import (
	"github.com/gofood/dashboard/config"
	"github.com/spf13/cobra"
)

// cfg is loaded before any init so subcommands can use its values as flag
// defaults.
var cfg = loadConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Admin dashboard for the food plates menu.",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cfg.Validate()
	},
}

func loadConfig() *config.Config {
	c, err := config.Load()
	cobra.CheckErr(err)
	return c
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Foods API base URL")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
