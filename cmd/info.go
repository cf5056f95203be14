package cmd

import (
	"context"

	"mcpcli/internal/client"

	"github.com/spf13/cobra"
)

func newInfoCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info <tool_name>",
		Short: "Get tool information",
		Long: `Show the full descriptor of a tool: description, category, whether it
requires authentication, its rate limit and its input schema.`,
		Example: `  mcp info get_balance
  mcp -o yaml info get_balance`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			tool, err := fetch(cmd.Context(), o, "Fetching "+name+"...", func(ctx context.Context, c *client.Client) (*client.ToolDescriptor, error) {
				return c.GetToolInfo(ctx, name)
			})
			if err != nil {
				return err
			}
			return o.renderer.ToolInfo(tool)
		},
	}
}
