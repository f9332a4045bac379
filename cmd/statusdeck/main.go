package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/statusdeck/statusdeck/internal/config"
	"github.com/statusdeck/statusdeck/internal/logx"
	"github.com/statusdeck/statusdeck/internal/providers"
	"github.com/statusdeck/statusdeck/internal/ui"
)

var (
	configPath string
	refresh    time.Duration
	timeout    time.Duration
	oneshot    bool
	noInput    bool
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "statusdeck",
	Short: "Live terminal dashboard for coding service status pages",
	Long: `Statusdeck polls the public status pages of coding-related cloud services,
normalizes their formats into one status vocabulary, and renders a live
terminal table with keyboard navigation.

Without a config file it watches a built-in set of services; pass --config
to monitor your own list.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config YAML (built-in service list if empty)")
	rootCmd.Flags().DurationVar(&refresh, "refresh", 600*time.Second, "interval between full refreshes")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")
	rootCmd.Flags().BoolVarP(&oneshot, "oneshot", "1", false, "fetch once, print the table and exit; non-zero exit if any service has issues")
	rootCmd.Flags().BoolVar(&noInput, "no-input", false, "disable keyboard input and run the plain refresh loop")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file instead of stderr")
}

func run(cmd *cobra.Command, args []string) error {
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logx.SetOutput(f)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logx.SetLevelFromString(cfg.LogLevel)
	providers.UserAgent = cfg.UserAgent

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	interactive := !oneshot && !noInput &&
		isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	if !interactive {
		return ui.RunPlain(ctx, cfg, os.Stdout, oneshot)
	}

	// bubbletea owns raw mode and restores the terminal on every exit path,
	// including the context cancel below.
	prog := tea.NewProgram(ui.New(cfg), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.Default()
	}
	if cmd.Flags().Changed("refresh") {
		cfg.Refresh = refresh
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = timeout
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
