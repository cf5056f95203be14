package cmd

import (
	"context"

	"mcpcli/internal/client"

	"github.com/spf13/cobra"
)

func newCapabilitiesCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities",
		Short: "Get server capabilities",
		Long:  `Show the bridge name, version, features and its tools grouped by category.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			caps, err := fetch(cmd.Context(), o, "Fetching capabilities...", func(ctx context.Context, c *client.Client) (*client.Capabilities, error) {
				return c.GetCapabilities(ctx)
			})
			if err != nil {
				return err
			}
			return o.renderer.Capabilities(caps)
		},
	}
}
