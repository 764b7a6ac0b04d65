package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "flaggy",
	Short: "Rules-based chat assistant for the flagpole storefront",
	Long: `Flaggy is the conversational assistant behind the storefront chat
widget. It matches free-text questions against a fixed intent catalog,
recommends products from the Shopify catalog, and hands the conversation
off to human support after repeated misses.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".flaggy.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
