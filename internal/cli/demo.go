package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/render"
	"github.com/ppiankov/placevalue/internal/session"
	"github.com/ppiankov/placevalue/internal/worker"
)

var (
	demoInterval time.Duration
	demoLoops    int
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Cycle through example numbers",
	Long: `Demo shows the breakdown of each built-in example in turn.

Example:
  placevalue demo
  placevalue demo --interval 1s --loops 0   # run until interrupted`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().DurationVar(&demoInterval, "interval", 0, "time between examples (default from config)")
	demoCmd.Flags().IntVar(&demoLoops, "loops", 1, "times to cycle through the examples (0 = forever)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("interval") {
		cfg.Timing.DemoInterval = demoInterval
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	renderer := render.NewRenderer(render.FormatText, cfg.Display.Theme, render.Options{Scientific: cfg.Display.Scientific})
	err = playDemo(ctx, cmd.OutOrStdout(), cfg, renderer, demoLoops)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// playDemo renders the demo examples paced by the configured interval
func playDemo(ctx context.Context, out io.Writer, cfg *model.Config, renderer *render.Renderer, loops int) error {
	pacer := worker.NewPacer(cfg.Timing.DemoInterval, 1)
	state := session.New(cfg, nil)
	state, _ = session.Reduce(state, session.DemoToggled{})

	total := loops * len(session.DemoExamples)
	for shown := 0; loops == 0 || shown < total; shown++ {
		if err := pacer.Wait(ctx, "demo"); err != nil {
			return err
		}
		if shown > 0 {
			state, _ = session.Reduce(state, session.DemoTick{})
		}

		fmt.Fprintf(out, "\n── Example %d/%d ──\n", state.Demo.Index+1, len(session.DemoExamples))
		if err := renderer.Render(out, state.Breakdown); err != nil {
			return err
		}
	}
	return nil
}
