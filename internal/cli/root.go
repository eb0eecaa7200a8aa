// Package cli implements the skysnoop command tree. Commands are thin: they
// parse arguments, open a unified client, run one query, and render the
// normalized response. All backend asymmetry lives in internal/client.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"skysnoop/internal/client"
	"skysnoop/internal/config"
	"skysnoop/internal/models"
)

var cfg *config.Config

var (
	flagBackend string
	flagAPIKey  string
	flagTimeout int
	flagFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "skysnoop",
	Short: "Query aircraft data from adsb.lol",
	Long: "skysnoop queries live aircraft data from adsb.lol through a unified client\n" +
		"that works against both the re-api and openapi backends.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagBackend, "backend", "", "backend to use: auto, reapi, or openapi (default from config)")
	pf.StringVar(&flagAPIKey, "api-key", "", "API key, accepted for forward compatibility (default from config)")
	pf.IntVar(&flagTimeout, "timeout", 0, "request timeout in seconds (default from config)")
	pf.StringVar(&flagFormat, "format", "", "output format: table or json (default from config)")
}

// Execute runs the command tree against the loaded configuration.
func Execute(ctx context.Context, c *config.Config) error {
	cfg = c
	return rootCmd.ExecuteContext(ctx)
}

// clientOptions merges configuration with any explicit flag overrides.
func clientOptions() client.Options {
	opts := client.Options{
		Backend:        models.BackendID(cfg.Backend),
		APIKey:         cfg.APIKey,
		REAPIBaseURL:   cfg.REAPIBaseURL,
		OpenAPIBaseURL: cfg.OpenAPIBaseURL,
		Timeout:        cfg.Timeout,
	}
	if flagBackend != "" {
		opts.Backend = models.BackendID(flagBackend)
	}
	if flagAPIKey != "" {
		opts.APIKey = flagAPIKey
	}
	if flagTimeout > 0 {
		opts.Timeout = time.Duration(flagTimeout) * time.Second
	}
	return opts
}

func outputFormat() string {
	if flagFormat != "" {
		return flagFormat
	}
	return cfg.OutputFormat
}

// runQuery opens a client for one command invocation, runs the query, and
// renders the result. The client is closed on every path.
func runQuery(cmd *cobra.Command, fn func(ctx context.Context, c *client.SkySnoop) (*models.SkyData, error)) error {
	ctx := cmd.Context()

	c := client.New(clientOptions())
	if err := c.Open(ctx); err != nil {
		return err
	}
	defer c.Close()

	data, err := fn(ctx, c)
	if err != nil {
		return err
	}

	out, err := Render(data, outputFormat())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
