package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/placevalue/internal/expand"
	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/render"
	"github.com/ppiankov/placevalue/internal/ui"
)

var (
	showFormat     string
	showOut        string
	showSlots      int
	showScientific bool
	showAnimate    bool
	showNoHistory  bool
	showSteps      bool
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <number>",
	Short: "Show the place-value breakdown of a number",
	Long: `Show breaks a decimal number into place-value boxes, digit fractions,
the expanded form and the total.

Example:
  placevalue show 123.456
  placevalue show 0.125 --scientific
  placevalue show 42.5 --format json --out breakdown.json
  placevalue show -- -3.75`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

// explainCmd represents the explain command
var explainCmd = &cobra.Command{
	Use:   "explain <number>",
	Short: "Explain a number one digit at a time",
	Long: `Explain prints one line per non-zero digit, e.g.
"4 in the tenths place = 4/10 = 0.4".

Example:
  placevalue explain 12.05`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(explainCmd)

	showCmd.Flags().StringVarP(&showFormat, "format", "f", "", "output format: text, json or markdown (default from config)")
	showCmd.Flags().StringVarP(&showOut, "out", "o", "", "write to this file instead of stdout")
	showCmd.Flags().IntVar(&showSlots, "slots", 0, "place-value boxes per side (default from config)")
	showCmd.Flags().BoolVar(&showScientific, "scientific", false, "include scientific notation")
	showCmd.Flags().BoolVar(&showAnimate, "animate", false, "play the staggered reveal (terminal only)")
	showCmd.Flags().BoolVar(&showNoHistory, "no-history", false, "do not record this number in the history")
	showCmd.Flags().BoolVar(&showSteps, "steps", false, "include the step-by-step explanation")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("slots") {
		cfg.Display.Slots = showSlots
	}
	if cmd.Flags().Changed("scientific") {
		cfg.Display.Scientific = showScientific
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = showFormat
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	if showOut != "" && !cmd.Flags().Changed("format") {
		format = render.FormatForPath(showOut)
	}

	b := expand.Build(args[0], cfg.Display.Slots)
	opts := render.Options{Scientific: cfg.Display.Scientific, Steps: showSteps}
	renderer := render.NewRenderer(format, cfg.Display.Theme, opts)

	switch {
	case showOut != "":
		if err := renderer.RenderFile(b, showOut); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %s: %s\n", format, showOut)

	case showAnimate && format == render.FormatText && b.Valid && isTerminal(cmd.OutOrStdout()):
		if err := ui.Animate(cmd.Context(), cmd.OutOrStdout(), b, cfg.Display.Theme, cfg.Timing, opts); err != nil {
			return err
		}

	case format == render.FormatMarkdown && isTerminal(cmd.OutOrStdout()):
		if err := printPretty(cmd, b, cfg, opts); err != nil {
			return err
		}

	default:
		if err := renderer.Render(cmd.OutOrStdout(), b); err != nil {
			return err
		}
	}

	return finish(cfg, b, !showNoHistory)
}

func runExplain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	b := expand.Build(args[0], cfg.Display.Slots)
	opts := render.Options{Scientific: cfg.Display.Scientific, Steps: true}

	if isTerminal(cmd.OutOrStdout()) {
		if err := printPretty(cmd, b, cfg, opts); err != nil {
			return err
		}
		return finish(cfg, b, true)
	}

	out := cmd.OutOrStdout()
	if !b.Valid {
		fmt.Fprintf(out, "%s: %q\n", render.InvalidMessage, b.Input)
		return finish(cfg, b, false)
	}
	if len(b.Steps) == 0 {
		fmt.Fprintln(out, expand.EmptySteps)
	}
	for i, s := range b.Steps {
		fmt.Fprintf(out, "%d. %s\n", i+1, s.Explanation)
	}
	fmt.Fprintf(out, "\n%s = %s\n", expand.SignedExpandedForm(b.Terms, b.Negative), totalOrError(b))

	return finish(cfg, b, true)
}

func printPretty(cmd *cobra.Command, b model.Breakdown, cfg *model.Config, opts render.Options) error {
	out, err := render.Pretty(render.Markdown(b, opts), cfg.Display.Theme, 0)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func totalOrError(b model.Breakdown) string {
	if b.TotalError != "" {
		return b.TotalError
	}
	return expand.GroupThousands(b.Total)
}

// finish records valid input and turns invalid input into an error exit
func finish(cfg *model.Config, b model.Breakdown, record bool) error {
	if !b.Valid {
		return fmt.Errorf("invalid number %q", b.Input)
	}
	if record {
		recordHistory(cfg, b.Input, b.Total)
	}
	return nil
}
