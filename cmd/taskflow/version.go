package main

import (
	"fmt"

	"github.com/fentz26/taskflow/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the taskflow version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskflow %s\n", version.Get())
	},
}
