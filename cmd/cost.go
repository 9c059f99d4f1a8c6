package cmd

import "github.com/spf13/cobra"

var costCmd = &cobra.Command{
	Use:   "cost <resource-id> <mission-id>",
	Short: "Compute the cost of a resource over a mission's duration",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return err
		}
		defer svc.Close()
		return printResult(svc.Coordinator.ComputeCost(args[0], args[1]))
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <resource-id> <new-status>",
	Short: "Move an operator or equipment unit to a new availability status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return err
		}
		defer svc.Close()
		return printResult(svc.Coordinator.UpdateStatus(args[0], args[1]))
	},
}

func init() {
	rootCmd.AddCommand(costCmd, statusCmd)
}
