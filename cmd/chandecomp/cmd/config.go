package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/go-chandecomp/router"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a grid settings file",
	Long: `Create a grid settings file in YAML format, prefilled with default values.

If FILE is not provided, 'chandecomp.yml' is used`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "chandecomp.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if ok, err := confirmIfExists(path,
			fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path)); !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		check(marshalYAMLFile(path, router.NewConfig()))
		fmt.Printf("grid settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
