package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "chandecomp",
	Short: "decompose routing areas into channels",
	Long: `This is the command-line application accompanying go-chandecomp:
	- decompose a routing area with placed subcells into channels,
	- easily tweak grid settings (YAML files),
	- render the channel structure to an image for inspection.`,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
