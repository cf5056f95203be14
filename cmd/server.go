package cmd

import (
	"context"

	"mcpcli/internal/client"

	"github.com/spf13/cobra"
)

func newServerCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Get server information",
		Long:  `Show the bridge identity, environment, uptime and tool statistics.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := fetch(cmd.Context(), o, "Fetching server information...", func(ctx context.Context, c *client.Client) (*client.ServerInfo, error) {
				return c.GetServerInfo(ctx)
			})
			if err != nil {
				return err
			}
			return o.renderer.ServerInfo(info)
		},
	}
}
