package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "payctl",
	Short: "Command-line client for the HalcyonPay payment gateway",
	Long: `payctl talks to the HalcyonPay payment-gateway REST API.

It authenticates with OAuth2 client credentials, caches the session token
locally per profile, and exposes payment creation, retrieval, listing,
and void. Commands that need authorization require an explicit
'payctl auth login' first; payctl never re-authenticates on its own.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("format", "text", "Output format: text, json, or yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().String("api-url", "", "Gateway base URL (overrides config file and PAYCTL_API_URL)")
	rootCmd.PersistentFlags().String("profile", "", "Session profile (overrides config file and PAYCTL_PROFILE)")
}
