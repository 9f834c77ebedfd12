package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"task-scheduling-advisor/config"
	"task-scheduling-advisor/internal/bootstrap"
)

var Version = "dev"

// cli carries the flags shared by all subcommands and the lazily built app.
type cli struct {
	configPath string
	jsonOut    bool
	verbose    bool

	app *bootstrap.App
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&cli{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "advisor",
		Short:         "Advisor - confidence-gated scheduling for tasks",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Config file (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&c.jsonOut, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log at the configured level instead of warn")

	// Add subcommands
	rootCmd.AddCommand(recommendCmd(c))
	rootCmd.AddCommand(scheduleCmd(c))
	rootCmd.AddCommand(scheduleSlotCmd(c))
	rootCmd.AddCommand(startCmd(c))
	rootCmd.AddCommand(taskCmd(c))
	rootCmd.AddCommand(formatCmd(c))
	rootCmd.AddCommand(calendarAuthCmd(c))

	return rootCmd
}

func (c *cli) loadConfig() (*config.Config, error) {
	if c.configPath != "" {
		return config.LoadFile(c.configPath)
	}
	return config.Load()
}

// load builds the scheduler app on first use.
func (c *cli) load(ctx context.Context) (*bootstrap.App, error) {
	if c.app != nil {
		return c.app, nil
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if !c.verbose {
		cfg.Logger.Level = "warn"
	}

	app, err := bootstrap.Build(ctx, cfg, bootstrap.NewLogger(cfg.Logger))
	if err != nil {
		return nil, err
	}
	c.app = app
	return app, nil
}

func (c *cli) printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
