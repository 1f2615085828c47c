package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ppiankov/placevalue/internal/logging"
	"github.com/ppiankov/placevalue/internal/model"
)

// Version is the release version, overridden at build time
var Version = "v0.1.0"

var (
	cfgFile string
	verbose bool

	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "placevalue",
	Short: "Placevalue - see what every digit of a decimal number is worth",
	Long: `Placevalue breaks a decimal number into its place values.

For every digit it shows the place it occupies, the fraction it stands for
after the decimal point, the expanded form of the whole number and the total
the terms add up to.

Run without arguments to start the interactive terminal UI.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number of placevalue.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "placevalue %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentPreRunE = initLogger
	rootCmd.RunE = runTUI

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.placevalue/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

func initLogger(cmd *cobra.Command, args []string) error {
	// The terminal UI owns the screen, so it logs to a file instead.
	if isInteractive(cmd) {
		return nil
	}

	l, err := logging.New(verbose)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// configDir is ~/.placevalue
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error finding home directory: %w", err)
	}
	return filepath.Join(home, ".placevalue"), nil
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(dir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match PLACEVALUE_*, with nested
	// keys joined by underscores, e.g. PLACEVALUE_DISPLAY_SLOTS.
	viper.SetEnvPrefix("PLACEVALUE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults(viper.GetViper(), model.DefaultConfig())

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setDefaults registers every key so environment variables can override
// keys that are absent from the config file.
func setDefaults(v *viper.Viper, cfg *model.Config) {
	v.SetDefault("display.slots", cfg.Display.Slots)
	v.SetDefault("display.scientific", cfg.Display.Scientific)
	v.SetDefault("display.animate", cfg.Display.Animate)
	v.SetDefault("display.theme", cfg.Display.Theme)

	v.SetDefault("history.enabled", cfg.History.Enabled)
	v.SetDefault("history.backend", cfg.History.Backend)
	v.SetDefault("history.size", cfg.History.Size)
	v.SetDefault("history.dir", cfg.History.Dir)
	v.SetDefault("history.ttl", cfg.History.TTL)

	v.SetDefault("timing.debounce", cfg.Timing.Debounce)
	v.SetDefault("timing.demo_interval", cfg.Timing.DemoInterval)
	v.SetDefault("timing.activate_delay", cfg.Timing.ActivateDelay)
	v.SetDefault("timing.highlight_start", cfg.Timing.HighlightStart)
	v.SetDefault("timing.highlight_step", cfg.Timing.HighlightStep)
	v.SetDefault("timing.highlight_hold", cfg.Timing.HighlightHold)
	v.SetDefault("timing.fraction_step", cfg.Timing.FractionStep)
	v.SetDefault("timing.term_step", cfg.Timing.TermStep)

	v.SetDefault("quiz.max_integer_digits", cfg.Quiz.MaxIntegerDigits)
	v.SetDefault("quiz.max_decimal_digits", cfg.Quiz.MaxDecimalDigits)
	v.SetDefault("quiz.seed", cfg.Quiz.Seed)

	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("output.verbose", cfg.Output.Verbose)

	v.SetDefault("concurrency.workers", cfg.Concurrency.Workers)
}

// loadConfig merges defaults, the config file and the environment
func loadConfig() (*model.Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Display.Slots <= 0 {
		return nil, fmt.Errorf("display.slots must be positive, got %d", cfg.Display.Slots)
	}
	if cfg.Display.Theme != "light" && cfg.Display.Theme != "dark" {
		return nil, fmt.Errorf("display.theme must be light or dark, got %q", cfg.Display.Theme)
	}
	if cfg.History.Backend != "file" && cfg.History.Backend != "sqlite" {
		return nil, fmt.Errorf("history.backend must be file or sqlite, got %q", cfg.History.Backend)
	}
	return cfg, nil
}

// isInteractive reports whether cmd runs the full-screen UI
func isInteractive(cmd *cobra.Command) bool {
	return cmd == rootCmd || cmd == tuiCmd
}
