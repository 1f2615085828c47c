package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/placevalue/internal/logging"
	"github.com/ppiankov/placevalue/internal/ui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal UI",
	Long: `Start the interactive terminal UI (also the default with no command).

Keys:
  tab      cycle normal / quiz / step-by-step / comparison
  ctrl+s   toggle scientific notation
  ctrl+t   toggle light / dark theme
  ctrl+d   start or stop the demo
  ←/→      previous / next step (step-by-step mode)
  ↑/↓      switch input (comparison mode)
  enter    answer / next question (quiz mode)
  ctrl+y   copy the expanded form
  ctrl+r   recall the next history entry
  ctrl+l   clear history
  esc      quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir, err := configDir()
	if err != nil {
		return err
	}
	l, err := logging.NewFile(filepath.Join(dir, "placevalue.log"), verbose)
	if err != nil {
		return err
	}
	logger = l

	opts := ui.Options{Config: cfg, Logger: logger}
	if cfg.History.Enabled {
		store, closeFn, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = closeFn() }()
		opts.History = store
	}

	return ui.Run(opts)
}
