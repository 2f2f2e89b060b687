package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/adapter"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/auth"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/config"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/fixture"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/logging"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/source"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/transport"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app holds what every screen command needs once flags are parsed.
type app struct {
	out        io.Writer
	configPath string
	mode       string
	baseURL    string
	timeout    time.Duration
	tokenFile  string
	fixtures   string
	verbose    bool

	logger   *zap.Logger
	reporter logging.ErrorLogger
	adapters *adapter.Adapters
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:          "hustlexp",
		Short:        "Fetch HustleXP screen data and print the validated result",
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ~/.config/hustlexp/config.json)")
	flags.StringVar(&a.mode, "mode", "", "data source: live or mock (overrides config)")
	flags.StringVar(&a.baseURL, "base-url", "", "API base URL (overrides config)")
	flags.DurationVar(&a.timeout, "timeout", 0, "request timeout (overrides config)")
	flags.StringVar(&a.tokenFile, "token-file", "", "OAuth token file for the live API")
	flags.StringVar(&a.fixtures, "fixtures", "", "YAML fixture file for mock mode (default: built in)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.screenCmd("home", "Home dashboard", cobra.NoArgs, func(ctx context.Context, _ []string) any {
			return adapter.Observe(a.reporter, a.adapters.HomeDashboard(ctx))
		}),
		a.screenCmd("feed", "Open task feed", cobra.NoArgs, func(ctx context.Context, _ []string) any {
			return adapter.Observe(a.reporter, a.adapters.TaskFeed(ctx))
		}),
		a.screenCmd("task <task-id>", "Task detail", cobra.ExactArgs(1), func(ctx context.Context, args []string) any {
			return adapter.Observe(a.reporter, a.adapters.TaskDetail(ctx, args[0]))
		}),
		a.screenCmd("progress <task-id>", "Task in progress", cobra.ExactArgs(1), func(ctx context.Context, args []string) any {
			return adapter.Observe(a.reporter, a.adapters.TaskProgress(ctx, args[0]))
		}),
		a.screenCmd("completion <task-id>", "Task completion", cobra.ExactArgs(1), func(ctx context.Context, args []string) any {
			return adapter.Observe(a.reporter, a.adapters.TaskCompletion(ctx, args[0]))
		}),
		a.screenCmd("xp", "XP summary", cobra.NoArgs, func(ctx context.Context, _ []string) any {
			return adapter.Observe(a.reporter, a.adapters.XPSummary(ctx))
		}),
		a.snapshotCmd(),
		a.configCmd(),
	)
	return root
}

// setup builds the logger, loads config and wires the adapters.
func (a *app) setup(ctx context.Context) error {
	logger, err := logging.New(a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	a.reporter = logging.NewZapReporter(logger)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if a.mode != "" {
		mode, err := source.ParseMode(a.mode)
		if err != nil {
			return err
		}
		cfg.Mode = mode
	}
	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}
	if a.timeout > 0 {
		cfg.Timeout = a.timeout
	}
	if a.tokenFile != "" {
		cfg.TokenFile = a.tokenFile
	}
	if a.fixtures != "" {
		cfg.FixtureFile = a.fixtures
	}

	src, err := buildSource(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Debug("Source selected",
		zap.String("mode", string(src.Mode())),
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("timeout", cfg.Timeout))

	a.adapters = adapter.New(src, a.reporter)
	return nil
}

func buildSource(ctx context.Context, cfg *config.Config) (source.DataSource, error) {
	if cfg.Mode.IsMock() {
		set := fixture.Default()
		if cfg.FixtureFile != "" {
			var err error
			if set, err = fixture.LoadFile(cfg.FixtureFile); err != nil {
				return nil, err
			}
		}
		return source.NewFixture(set), nil
	}

	hc, err := auth.HTTPClient(ctx, cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("could not load API token: %w", err)
	}
	return source.NewLive(transport.NewClient(hc), cfg.BaseURL, cfg.Timeout), nil
}

func (a *app) screenCmd(use, short string, args cobra.PositionalArgs, load func(context.Context, []string) any) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd.Context()); err != nil {
				return err
			}
			return a.print(load(cmd.Context(), args))
		},
	}
}

// snapshot is every screen for one task, loaded concurrently.
type snapshot struct {
	Home       adapter.Result[adapter.HomeProps]           `json:"home"`
	Feed       adapter.Result[adapter.FeedProps]           `json:"feed"`
	Detail     adapter.Result[adapter.TaskDetailProps]     `json:"taskDetail"`
	Progress   adapter.Result[adapter.TaskProgressProps]   `json:"taskProgress"`
	Completion adapter.Result[adapter.TaskCompletionProps] `json:"taskCompletion"`
	XP         adapter.Result[adapter.XPProps]             `json:"xp"`
}

func (a *app) snapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <task-id>",
		Short: "Load every screen at once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd.Context()); err != nil {
				return err
			}
			s, err := a.loadSnapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(s)
		},
	}
}

func (a *app) loadSnapshot(ctx context.Context, taskID string) (*snapshot, error) {
	var s snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.Home = adapter.Observe(a.reporter, a.adapters.HomeDashboard(ctx))
		return nil
	})
	g.Go(func() error {
		s.Feed = adapter.Observe(a.reporter, a.adapters.TaskFeed(ctx))
		return nil
	})
	g.Go(func() error {
		s.Detail = adapter.Observe(a.reporter, a.adapters.TaskDetail(ctx, taskID))
		return nil
	})
	g.Go(func() error {
		s.Progress = adapter.Observe(a.reporter, a.adapters.TaskProgress(ctx, taskID))
		return nil
	})
	g.Go(func() error {
		s.Completion = adapter.Observe(a.reporter, a.adapters.TaskCompletion(ctx, taskID))
		return nil
	})
	g.Go(func() error {
		s.XP = adapter.Observe(a.reporter, a.adapters.XPSummary(ctx))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (a *app) configCmd() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the stored configuration",
	}
	cfgCmd.AddCommand(&cobra.Command{
		Use:   "set-mode <live|mock>",
		Short: "Set the default data source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := source.ParseMode(args[0])
			if err != nil {
				return err
			}
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			cfg.Mode = mode
			if err := config.Save(a.configPath, cfg); err != nil {
				return fmt.Errorf("error saving config: %w", err)
			}
			fmt.Fprintf(a.out, "Default source set to: %s\n", mode)
			return nil
		},
	})
	return cfgCmd
}

func (a *app) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
