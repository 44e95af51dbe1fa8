package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/miosa/folio/app"
	"github.com/miosa/folio/client"
	"github.com/miosa/folio/config"
	"github.com/miosa/folio/logging"
	"github.com/miosa/folio/msg"
	"github.com/miosa/folio/style"
)

var version = "dev"

var (
	flagURL     string
	flagProfile string
	flagConfig  string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Browse a research portfolio in the terminal",
	Long: `folio shows publications, awards, talks, media appearances and a CV
from a portfolio API as auto-scrolling galleries.

Configuration lives in ~/.folio/config.yaml (or config.toml) and is
reloaded while folio runs.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagNoColor {
			os.Setenv("NO_COLOR", "1")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagURL, "url", "", "Portfolio API base URL (overrides config and FOLIO_URL)")
	pf.StringVar(&flagProfile, "profile", "", "Named profile for state isolation (~/.folio/profiles/<name>)")
	pf.StringVar(&flagConfig, "config", "", "Config file path (default <profile dir>/config.yaml)")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable ANSI colors")
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "folio: %v\n", err)
		os.Exit(1)
	}
}

// profileDir returns ~/.folio or ~/.folio/profiles/<name>, creating it.
func profileDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	dir := filepath.Join(home, ".folio")
	if flagProfile != "" {
		dir = filepath.Join(dir, "profiles", flagProfile)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create profile directory: %w", err)
	}
	return dir, nil
}

// loadConfig resolves the config file and applies the command line on top.
func loadConfig() (*config.Config, string, error) {
	dir, err := profileDir()
	if err != nil {
		return nil, "", err
	}
	path := flagConfig
	if path == "" {
		path = config.Path(dir)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(dir, "folio.log")
	}
	if flagURL != "" {
		cfg.API.BaseURL = flagURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, path, nil
}

func newClient(cfg *config.Config, log *zap.Logger) *client.Client {
	c := client.New(cfg.API.BaseURL)
	if cfg.API.Token != "" {
		c.SetToken(cfg.API.Token)
	}
	c.SetTimeout(cfg.Timeout())
	c.Log = log.Named("client")
	return c
}

// applyTheme resolves "auto" against the terminal background.
func applyTheme(cfg *config.Config) {
	if cfg.UI.Theme == "" || cfg.UI.Theme == "auto" {
		cfg.UI.Theme = "light"
		if lipgloss.HasDarkBackground(os.Stdin, os.Stdout) {
			cfg.UI.Theme = "dark"
		}
	}
	style.SetTheme(cfg.UI.Theme)
}

func runTUI(ctx context.Context) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LoggerConfig())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	applyTheme(cfg)
	log.Info("starting", zap.String("version", version), zap.String("api", cfg.API.BaseURL), zap.String("config", path))

	m := app.New(app.Options{
		Config:  cfg,
		Client:  newClient(cfg, log),
		Log:     log,
		Version: version,
	})

	// AltScreen and mouse mode are set on the View, not as program options.
	p := tea.NewProgram(m)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		err := config.Watch(ctx, path, func(c *config.Config, err error) {
			if err == nil {
				if flagURL != "" {
					c.API.BaseURL = flagURL
				}
				applyTheme(c)
			}
			p.Send(msg.ConfigReloaded{Config: c, Err: err})
		})
		if err != nil {
			log.Warn("config watch stopped", zap.Error(err))
		}
	}()

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
