package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fentz26/taskflow/internal/controlplane"
	"github.com/spf13/cobra"
)

var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Inspect and switch the sorting strategy",
}

var strategyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available sorting strategies",
	RunE:  runStrategyList,
}

var strategyUseCmd = &cobra.Command{
	Use:   "use [key]",
	Short: "Switch the active sorting strategy",
	Args:  cobra.ExactArgs(1),
	RunE:  runStrategyUse,
}

func init() {
	strategyCmd.AddCommand(strategyListCmd, strategyUseCmd)
}

func runStrategyList(cmd *cobra.Command, args []string) error {
	var infos []controlplane.StrategyInfo
	if err := apiGetJSON("/strategies", &infos); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tKEY\tNAME\tDESCRIPTION")
	for _, s := range infos {
		marker := ""
		if s.Active {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", marker, s.Key, s.Name, s.Description)
	}
	w.Flush()
	return nil
}

func runStrategyUse(cmd *cobra.Command, args []string) error {
	resp, err := apiPut("/strategies/active", map[string]string{"key": args[0]})
	if err != nil {
		return err
	}

	var info controlplane.StrategyInfo
	if err := json.Unmarshal(resp, &info); err != nil {
		return err
	}
	fmt.Printf("Active strategy: %s (%s)\n", info.Name, info.Key)
	return nil
}
