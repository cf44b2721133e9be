// Package commands provides CLI commands for helpline.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/helpline/internal/api"
	"github.com/diogo/helpline/internal/config"
	"github.com/diogo/helpline/internal/render"
	"github.com/diogo/helpline/internal/tui"
)

// Version info (set at build time)
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	baseURL string
	verbose bool
	theme   string
}

// environment is the resolved configuration and logger of one command run
type environment struct {
	cfg     config.Config
	logger  *slog.Logger
	cleanup func() error
}

// NewRootCmd creates the helpline command tree
func NewRootCmd(deps *Dependencies) *cobra.Command {
	if deps == nil {
		deps = NewDependencies()
	}
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "helpline",
		Short: "Terminal client for the helpline support chat",
		Long: `helpline is a terminal client for a helpline support chat service.

Running it without a command opens the chat: the conversation on the left,
an assessment of the conversation and a list of support resources on the right.

Examples:
  helpline                              Start the chat
  helpline ask "I need someone to talk to"
  helpline resources                    List support resources
  helpline analysis 12                  Show the analysis of conversation 12
  helpline transcript 12                Print conversation 12
  helpline config set base_url https://helpline.example.org/api`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Check for version flag
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "helpline %s (built %s)\n", Version, BuildTime)
				return nil
			}
			return runChat(cmd, deps, flags)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "Helpline service URL (overrides base_url)")
	rootCmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Log debug details")
	rootCmd.PersistentFlags().StringVar(&flags.theme, "theme", "",
		"Color theme ("+strings.Join(render.ThemeNames(), ", ")+")")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	// Add subcommands
	rootCmd.AddCommand(newChatCmd(deps, flags))
	rootCmd.AddCommand(newAskCmd(deps, flags))
	rootCmd.AddCommand(newResourcesCmd(deps, flags))
	rootCmd.AddCommand(newAnalysisCmd(deps, flags))
	rootCmd.AddCommand(newTranscriptCmd(deps, flags))
	rootCmd.AddCommand(NewConfigCmd(deps))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := NewRootCmd(NewDependencies())
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Error"))
		return 1
	}
	return 0
}

// load resolves configuration (file, then flags), applies the theme and sets up
// logging. console enables log output on stderr; the chat TUI owns the terminal
// and runs without it.
func (g *globalFlags) load(console bool) (*environment, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if g.baseURL != "" {
		cfg.BaseURL = g.baseURL
	}
	if g.theme != "" {
		cfg.TUITheme = g.theme
	}
	if g.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := applyTheme(cfg.TUITheme); err != nil {
		return nil, err
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logPath, err := config.GetLogPath(cfg)
	if err != nil {
		logPath = ""
	}
	logger, cleanup := config.SetupLogger(logPath, level, console)

	return &environment{cfg: cfg, logger: logger, cleanup: cleanup}, nil
}

func applyTheme(name string) error {
	if name == "" {
		return nil
	}
	if !render.UseTheme(name) {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(render.ThemeNames(), ", "))
	}
	tui.UpdateTheme()
	return nil
}

// connect loads the environment and creates the service client
func connect(deps *Dependencies, flags *globalFlags, console bool) (*environment, api.HelplineClientInterface, error) {
	env, err := flags.load(console)
	if err != nil {
		return nil, nil, err
	}

	client, err := deps.NewClient(env.cfg, env.logger)
	if err != nil {
		_ = env.cleanup()
		return nil, nil, err
	}
	return env, client, nil
}

// close releases the client and the log file
func (e *environment) close(client api.HelplineClientInterface) {
	client.Close()
	_ = e.cleanup()
}
