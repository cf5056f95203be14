package cmd

import (
	"context"
	"strings"

	"mcpcli/internal/cli"
	"mcpcli/internal/client"

	"github.com/spf13/cobra"
)

func newListCmd(o *rootOptions) *cobra.Command {
	var category string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available tools",
		Long: `List the tools offered by the MCP bridge, optionally restricted to one
category. Tools marked 🔐 require authentication.`,
		Example: `  mcp list
  mcp list --category financial
  mcp list -o table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter client.Category
			if category != "" {
				parsed, err := client.ParseCategory(category)
				if err != nil {
					return &cli.UsageError{Message: err.Error()}
				}
				filter = parsed
			}

			list, err := fetch(cmd.Context(), o, "Listing tools...", func(ctx context.Context, c *client.Client) (*client.ToolList, error) {
				return c.ListTools(ctx, filter)
			})
			if err != nil {
				return err
			}
			return o.renderer.ToolList(list, filter)
		},
	}

	names := make([]string, len(client.Categories))
	for i, c := range client.Categories {
		names[i] = string(c)
	}
	listCmd.Flags().StringVar(&category, "category", "", "Filter by category: "+strings.Join(names, ", "))
	_ = listCmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return listCmd
}
