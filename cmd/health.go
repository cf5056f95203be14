package cmd

import (
	"context"

	"mcpcli/internal/client"

	"github.com/spf13/cobra"
)

func newHealthCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the bridge is up",
		Long: `Probe the health endpoint of the bridge. It needs no credentials and is
the quickest way to verify the endpoint configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := fetch(cmd.Context(), o, "Checking health...", func(ctx context.Context, c *client.Client) (*client.HealthStatus, error) {
				return c.Health(ctx)
			})
			if err != nil {
				return err
			}
			return o.renderer.Health(health)
		},
	}
}
