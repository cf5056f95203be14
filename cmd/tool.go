package cmd

import (
	"context"
	"errors"

	"mcpcli/internal/cli"
	"mcpcli/internal/client"
	"mcpcli/internal/params"
	"mcpcli/pkg/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newToolCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tool <tool_name> [--param value ...] [--json '<object>']",
		Short: "Execute a tool",
		Long: `Execute a tool on the MCP bridge.

Every token after the tool name is a tool parameter:
  --name value    sets name; true/false, integers and decimals are converted
  --name          sets name to true when no value follows
  --json '{...}'  merges all keys of a JSON object, keeping their JSON types

Later parameters overwrite earlier ones with the same name. Global flags
such as --output must come before the tool name.`,
		Example: `  mcp tool get_balance --account main
  mcp tool get_transactions --limit 10 --include-pending
  mcp -o json tool search_documents --json '{"query": "invoice"}'`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runTool(cmd, args)
		},
	}
}

// runTool parses the global flags that precede the tool name itself, since
// cobra does not parse flags for this command.
func (o *rootOptions) runTool(cmd *cobra.Command, args []string) error {
	cmd.InheritedFlags()
	flags := cmd.Flags()
	flags.SetInterspersed(false)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cmd.Help()
		}
		return &cli.UsageError{Message: err.Error()}
	}
	if help, _ := flags.GetBool("help"); help {
		return cmd.Help()
	}
	if err := o.prepare(); err != nil {
		return err
	}

	rest := flags.Args()
	if len(rest) == 0 {
		_ = cmd.Help()
		return &cli.UsageError{Message: "tool requires a tool name"}
	}
	name, tokens := rest[0], rest[1:]

	p, err := params.Parse(tokens)
	if err != nil {
		return err
	}
	logging.Debug("CLI", "executing %s with %v", name, params.Tokens(p))

	if err := o.renderer.ToolHeader(name, p); err != nil {
		return err
	}

	result, err := fetch(cmd.Context(), o, "Executing "+name+"...", func(ctx context.Context, c *client.Client) (*client.ExecutionResult, error) {
		return c.ExecuteTool(ctx, name, p)
	})
	if err != nil {
		return err
	}

	if err := o.renderer.ToolResult(result); err != nil {
		return err
	}
	if !result.Success {
		return &cli.ToolFailedError{Tool: name}
	}
	return nil
}
