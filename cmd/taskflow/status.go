package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the daemon and its task store are up",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	health, err := CheckHealth()
	if health != nil {
		fmt.Printf("API:      %s\n", apiAddr)
		fmt.Printf("Store:    %s\n", health.DB)
		fmt.Printf("Version:  %s\n", health.Version)
		fmt.Printf("Time:     %s\n", health.Time)
	}
	if err != nil {
		return fmt.Errorf("daemon unhealthy: %w", err)
	}
	fmt.Println("Daemon is healthy")
	return nil
}
