package cmd

import "github.com/spf13/cobra"

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Scan the fleet snapshot for scheduling and resource conflicts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return err
		}
		defer svc.Close()
		return printResult(svc.Coordinator.CheckConflicts())
	},
}

func init() {
	rootCmd.AddCommand(conflictsCmd)
}
