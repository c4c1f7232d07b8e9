package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string
var outputFormat string

var rootCmd = &cobra.Command{
	Use:   "vesselplan",
	Short: "Fixed-route energy replenishment planner",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "scenario.yaml", "scenario configuration file")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format: table, json or csv")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
