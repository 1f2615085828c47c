package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ppiankov/placevalue/internal/expand"
	"github.com/ppiankov/placevalue/internal/model"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently entered numbers",
	Long: `History lists the most recent valid numbers, newest first.

Example:
  placevalue history
  placevalue history clear`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, closeFn, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = closeFn() }()

		printHistory(cmd.OutOrStdout(), store.Load(), time.Now())
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, closeFn, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = closeFn() }()

		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "✓ History cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func printHistory(out io.Writer, entries []model.HistoryEntry, now time.Time) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No history yet")
		return
	}

	for i, e := range entries {
		line := fmt.Sprintf("%2d. %s", i+1, expand.GroupThousands(e.Input))
		if e.Result != "" && e.Result != e.Input {
			line += " = " + expand.GroupThousands(e.Result)
		}
		fmt.Fprintf(out, "%-40s %s\n", line, humanize.RelTime(e.Timestamp, now, "ago", "from now"))
	}
}
