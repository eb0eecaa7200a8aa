package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"skysnoop/internal/client"
	"skysnoop/internal/models"
)

var (
	circleFilters  filterFlags
	closestFilters filterFlags
	boxFilters     filterFlags
)

func parseCoords(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		out[i] = v
	}
	return out, nil
}

var circleCmd = &cobra.Command{
	Use:   "circle <lat> <lon> <radius-nm>",
	Short: "Find aircraft within a circular area",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseCoords(args)
		if err != nil {
			return err
		}
		filters, err := circleFilters.criteria(cmd)
		if err != nil {
			return err
		}
		return runQuery(cmd, func(ctx context.Context, c *client.SkySnoop) (*models.SkyData, error) {
			return c.InCircle(ctx, coords[0], coords[1], coords[2], filters)
		})
	},
}

var closestCmd = &cobra.Command{
	Use:   "closest <lat> <lon> <radius-nm>",
	Short: "Find the closest aircraft to a point",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseCoords(args)
		if err != nil {
			return err
		}
		filters, err := closestFilters.criteria(cmd)
		if err != nil {
			return err
		}
		return runQuery(cmd, func(ctx context.Context, c *client.SkySnoop) (*models.SkyData, error) {
			return c.Closest(ctx, coords[0], coords[1], coords[2], filters)
		})
	},
}

var boxCmd = &cobra.Command{
	Use:   "box <lat-south> <lat-north> <lon-west> <lon-east>",
	Short: "Find aircraft within a bounding box",
	Long: "Find aircraft within a rectangular bounding box. On the openapi backend this\n" +
		"query is simulated with a bounding circle plus client-side filtering; the\n" +
		"response marks itself as simulated.",
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseCoords(args)
		if err != nil {
			return err
		}
		filters, err := boxFilters.criteria(cmd)
		if err != nil {
			return err
		}
		return runQuery(cmd, func(ctx context.Context, c *client.SkySnoop) (*models.SkyData, error) {
			return c.InBox(ctx, coords[0], coords[1], coords[2], coords[3], filters)
		})
	},
}

func init() {
	circleFilters.register(circleCmd)
	closestFilters.register(closestCmd)
	boxFilters.register(boxCmd)

	rootCmd.AddCommand(circleCmd)
	rootCmd.AddCommand(closestCmd)
	rootCmd.AddCommand(boxCmd)
}
