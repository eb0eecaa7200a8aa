package cli

import (
	"context"

	"github.com/spf13/cobra"

	"skysnoop/internal/client"
	"skysnoop/internal/models"
)

var (
	allFilters        filterFlags
	allWithPosFilters filterFlags
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Fetch every known aircraft (re-api backend only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filters, err := allFilters.criteria(cmd)
		if err != nil {
			return err
		}
		return runQuery(cmd, func(ctx context.Context, c *client.SkySnoop) (*models.SkyData, error) {
			return c.All(ctx, filters)
		})
	},
}

var allWithPosCmd = &cobra.Command{
	Use:   "all-with-pos",
	Short: "Fetch every aircraft with position data (re-api backend only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filters, err := allWithPosFilters.criteria(cmd)
		if err != nil {
			return err
		}
		return runQuery(cmd, func(ctx context.Context, c *client.SkySnoop) (*models.SkyData, error) {
			return c.AllWithPos(ctx, filters)
		})
	},
}

func init() {
	allFilters.register(allCmd)
	allWithPosFilters.register(allWithPosCmd)

	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(allWithPosCmd)
}
