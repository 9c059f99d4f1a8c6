package cmd

import "github.com/spf13/cobra"

var releaseCancel bool

var assignCmd = &cobra.Command{
	Use:   "assign <mission-id>",
	Short: "Match and commit resources to a planned mission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return err
		}
		defer svc.Close()
		return printResult(svc.Coordinator.Assign(args[0]))
	},
}

var releaseCmd = &cobra.Command{
	Use:   "release <mission-id>",
	Short: "Release a mission's resources, completing or cancelling it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return err
		}
		defer svc.Close()
		return printResult(svc.Coordinator.Release(args[0], releaseCancel))
	},
}

func init() {
	releaseCmd.Flags().BoolVar(&releaseCancel, "cancel", false, "return the mission to Planned instead of completing it")
	rootCmd.AddCommand(assignCmd, releaseCmd)
}
