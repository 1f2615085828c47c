package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ppiankov/placevalue/internal/expand"
	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/render"
	"github.com/ppiankov/placevalue/internal/worker"
)

var watchInterval time.Duration

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-render the numbers in a file whenever it changes",
	Long: `Watch renders every number in a file and renders them again each time
the file is saved. Bursts of saves are collapsed.

Example:
  placevalue watch numbers.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "minimum time between re-renders (default: input debounce)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	interval := cfg.Timing.Debounce
	if cmd.Flags().Changed("interval") {
		interval = watchInterval
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	renderer := render.NewRenderer(render.FormatText, cfg.Display.Theme, render.Options{Scientific: cfg.Display.Scientific})
	err = watchFile(ctx, args[0], interval, func(path string) error {
		return renderInputs(cmd.OutOrStdout(), path, cfg, renderer)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// watchFile calls onChange once at start and again after each change to
// path, at most once per interval. It watches the parent directory so
// editors that replace the file on save are still seen.
func watchFile(ctx context.Context, path string, interval time.Duration, onChange func(string) error) error {
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	if err := onChange(path); err != nil {
		return err
	}

	changes := make(chan struct{}, 1)
	// At most one warning per second for each kind of failure.
	warnings := worker.NewPacer(time.Second, 1)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				// A pending change already covers this one.
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if warnings.Allow("watcher") {
					logger.Warn("Watcher error", zap.Error(err))
				}
			}
		}
	})

	g.Go(func() error {
		pacer := worker.NewPacer(interval, 1)
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-changes:
			}
			if err := pacer.Wait(ctx, path); err != nil {
				return err
			}
			// Drop changes that arrived while waiting.
			select {
			case <-changes:
			default:
			}
			if err := onChange(path); err != nil && warnings.Allow("render") {
				logger.Warn("Re-render failed", zap.String("file", path), zap.Error(err))
			}
		}
	})

	return g.Wait()
}

func renderInputs(out io.Writer, path string, cfg *model.Config, renderer *render.Renderer) error {
	inputs, err := worker.ReadInputsFromFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n══ %s (%s) ══\n", path, time.Now().Format("15:04:05"))
	if len(inputs) == 0 {
		fmt.Fprintln(out, "(no numbers)")
	}
	for _, input := range inputs {
		if err := renderer.Render(out, expand.Build(input, cfg.Display.Slots)); err != nil {
			return err
		}
	}
	return nil
}
