package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Maintenance commands for the product catalog",
	Long: `catalogctl manages the product store configured through the same
environment variables as the API server (DATABASE_DRIVER, DATABASE_PATH,
DATABASE_URL, FIREBASE_PROJECT_ID).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newSumCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
