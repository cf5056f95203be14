package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"mcpcli/internal/cli"
	"mcpcli/internal/client"
	"mcpcli/internal/config"
	"mcpcli/internal/endpoint"
	"mcpcli/pkg/logging"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// version is injected by main at build time.
var version = "dev"

// SetVersion sets the version reported by the CLI.
func SetVersion(v string) {
	version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return version
}

// rootOptions holds the global flags and the per-invocation wiring shared by
// all subcommands.
type rootOptions struct {
	endpoint string
	output   string
	template string
	quiet    bool
	debug    bool
	noColor  bool

	env      endpoint.Environment
	stdout   io.Writer
	stderr   io.Writer
	renderer *cli.Renderer
}

// newRootCmd builds the command tree. Output goes to stdout, diagnostics,
// progress and logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &rootOptions{
		env:    endpoint.OSEnvironment{},
		stdout: stdout,
		stderr: stderr,
	}

	rootCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Command-line client for the MCP bridge",
		Long: `mcp talks to an MCP bridge over HTTP: it executes tools, lists and
describes them, and shows what the bridge offers.

The bridge is located through MCP_ENDPOINT, a container marker (/.dockerenv)
or the public default. Credentials come from MCP_AUTH_TOKEN (bearer token,
preferred) or MCP_API_KEY.`,
		Example: `  mcp tool get_balance --account main
  mcp tool search_documents --json '{"query": "invoice", "limit": 5}'
  mcp list --category financial
  mcp info get_balance
  mcp capabilities
  mcp server`,
		Version:                    version,
		Args:                       cobra.ArbitraryArgs,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE:          func(cmd *cobra.Command, args []string) error { return o.prepare() },
		RunE:                       runRoot,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetVersionTemplate(`{{printf "mcp version %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.endpoint, "endpoint", "", "MCP bridge URL (overrides "+endpoint.EnvVar+")")
	flags.StringVarP(&o.output, "output", "o", string(cli.OutputFormatText), "Output format: text, table, json, yaml, template")
	flags.StringVar(&o.template, "template", "", "Go template applied to the response with --output template")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "Suppress the progress spinner")
	flags.BoolVar(&o.debug, "debug", false, "Log requests and configuration to stderr")
	flags.BoolVar(&o.noColor, "no-color", false, "Disable colored output")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		formats := make([]string, len(cli.ValidOutputFormats))
		for i, f := range cli.ValidOutputFormats {
			formats[i] = string(f)
		}
		return formats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(
		newToolCmd(o),
		newListCmd(o),
		newInfoCmd(o),
		newCapabilitiesCmd(o),
		newServerCmd(o),
		newHealthCmd(o),
		newVersionCmd(),
		newSelfUpdateCmd(),
	)
	return rootCmd
}

// runRoot handles invocations without a known subcommand.
func runRoot(cmd *cobra.Command, args []string) error {
	_ = cmd.Help()
	if len(args) == 0 {
		return &cli.UsageError{Message: "a command is required"}
	}

	msg := fmt.Sprintf("unknown command %q for %q", args[0], cmd.CommandPath())
	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
	}
	return &cli.UsageError{Message: msg}
}

// prepare applies the global flags. It runs before every subcommand and
// again from commands that parse their own flags.
func (o *rootOptions) prepare() error {
	level := logging.LevelWarn
	if o.debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, o.stderr)

	if o.noColor || o.env.Getenv("NO_COLOR") != "" {
		text.DisableColors()
	}

	renderer, err := cli.NewRenderer(o.stdout, cli.Options{
		Format:   cli.OutputFormat(o.output),
		Template: o.template,
	})
	if err != nil {
		return &cli.UsageError{Message: err.Error()}
	}
	o.renderer = renderer
	return nil
}

// newClient builds a service client from the environment and the global flags.
func (o *rootOptions) newClient() (*client.Client, error) {
	cfg := config.Load(o.env)
	if o.endpoint != "" {
		cfg = cfg.WithEndpoint(o.endpoint)
	}
	logging.Debug("CLI", "using endpoint %s with credential %s", cfg.BaseURL, cfg.Credential)

	return client.New(cfg, client.WithUserAgent(client.DefaultUserAgent+"/"+version))
}

// fetch runs one client call behind a progress spinner.
func fetch[T any](ctx context.Context, o *rootOptions, message string, call func(context.Context, *client.Client) (T, error)) (T, error) {
	var zero T

	c, err := o.newClient()
	if err != nil {
		return zero, err
	}

	progress := cli.StartProgress(o.stderr, message, o.quiet)
	result, err := call(ctx, c)
	progress.Stop()
	if err != nil {
		return zero, err
	}
	return result, nil
}

// Run executes the CLI with args and returns the process exit code.
// It is the only place where failures are reported.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	cli.ReportError(stderr, err)
	return cli.ExitCode(err)
}

// Execute is the main entry point for the CLI application.
// SIGINT and SIGTERM cancel the in-flight request.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
