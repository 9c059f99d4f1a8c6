package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skyops/fieldcoord/core/coordinator"
	"github.com/skyops/fieldcoord/core/intent"
)

var fleetFilters []string

var fleetCmd = &cobra.Command{
	Use:   "fleet <operators|equipment|missions>",
	Short: "List records from one collection",
	Long: `List records from one collection, optionally filtered.

Filters use one of three predicates:
  field=value   case-insensitive equality
  field~value   case-insensitive substring
  field@value   membership in a comma-separated tag set`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filters, err := parseFilters(fleetFilters)
		if err != nil {
			return err
		}
		svc, err := buildService()
		if err != nil {
			return err
		}
		defer svc.Close()

		var res coordinator.Result
		switch args[0] {
		case "operators":
			res = svc.Coordinator.ListOperators(filters)
		case "equipment":
			res = svc.Coordinator.ListEquipment(filters)
		case "missions":
			res = svc.Coordinator.ListMissions(filters)
		default:
			return fmt.Errorf("unknown collection %q", args[0])
		}
		return printResult(res)
	},
}

func parseFilters(raw []string) (map[string]intent.Match, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	filters := make(map[string]intent.Match, len(raw))
	for _, f := range raw {
		idx := strings.IndexAny(f, "=~@")
		if idx <= 0 || idx == len(f)-1 {
			return nil, fmt.Errorf("malformed filter %q", f)
		}
		kind := intent.Equals
		switch f[idx] {
		case '~':
			kind = intent.Contains
		case '@':
			kind = intent.Has
		}
		filters[f[:idx]] = intent.Match{Kind: kind, Value: f[idx+1:]}
	}
	return filters, nil
}

func init() {
	fleetCmd.Flags().StringArrayVarP(&fleetFilters, "filter", "f", nil, "field predicate, repeatable")
	rootCmd.AddCommand(fleetCmd)
}
