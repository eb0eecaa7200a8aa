package cli

import (
	"context"

	"github.com/spf13/cobra"

	"skysnoop/internal/client"
	"skysnoop/internal/models"
)

var hexCmd = &cobra.Command{
	Use:   "hex <icao-hex>",
	Short: "Look up aircraft by ICAO 24-bit hex address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, func(ctx context.Context, c *client.SkySnoop) (*models.SkyData, error) {
			return c.ByHex(ctx, args[0])
		})
	},
}

var callsignCmd = &cobra.Command{
	Use:   "callsign <callsign>",
	Short: "Look up aircraft by callsign/flight number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, func(ctx context.Context, c *client.SkySnoop) (*models.SkyData, error) {
			return c.ByCallsign(ctx, args[0])
		})
	},
}

var regCmd = &cobra.Command{
	Use:   "reg <registration>",
	Short: "Look up aircraft by registration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, func(ctx context.Context, c *client.SkySnoop) (*models.SkyData, error) {
			return c.ByRegistration(ctx, args[0])
		})
	},
}

var typeCmd = &cobra.Command{
	Use:   "type <type-code>",
	Short: "Look up aircraft by type designator (e.g. B738, A321)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, func(ctx context.Context, c *client.SkySnoop) (*models.SkyData, error) {
			return c.ByType(ctx, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(hexCmd)
	rootCmd.AddCommand(callsignCmd)
	rootCmd.AddCommand(regCmd)
	rootCmd.AddCommand(typeCmd)
}
