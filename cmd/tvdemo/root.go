package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	tv "github.com/kungfusheep/tvision"
)

var (
	configPath string
	backend    string
	logFile    string
	logLevel   string
	timing     bool
)

var rootCmd = &cobra.Command{
	Use:           "tvdemo",
	Short:         "Windows, dialogs and message boxes on a text-mode desktop",
	RunE:          runDemo,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "tvision.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Terminal backend: tcell or term (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "Write logs to this file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&timing, "timing", false, "Show draw and flush times in a window")
	rootCmd.AddCommand(paletteCmd, configCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (tv.Config, error) {
	cfg, err := tv.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if backend != "" {
		cfg.Backend = backend
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, cfg.Validate()
}

func runDemo(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tvdemo needs a terminal: %w", tv.ErrNotTerminal)
	}
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if cfg.LogFile != "" {
		level, _ := tv.ParseLogLevel(cfg.LogLevel)
		if err := tv.InitLogging(cfg.LogFile, level); err != nil {
			return fmt.Errorf("error opening log: %w", err)
		}
		defer tv.CloseLogging()
	}

	b, err := tv.NewBackend(cfg)
	if err != nil {
		return err
	}
	p, err := tv.NewProgram(b, cfg)
	if err != nil {
		return err
	}
	tv.DebugTiming = timing
	newDemo(p).install()
	return p.Run()
}
