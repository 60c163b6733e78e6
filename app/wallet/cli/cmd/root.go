// Package cmd contains the wallet app.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	url    string
	secret string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&url, "url", "u", "http://localhost:8080", "Url of the engine.")
	rootCmd.PersistentFlags().StringVarP(&secret, "secret", "s", "", "Secret phrase for the wallet.")
}

var rootCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Your simple wallet",
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
