package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/quiz"
	"github.com/ppiankov/placevalue/internal/session"
)

var (
	quizRounds int
	quizSeed   int64
)

// quizCmd represents the quiz command
var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Practice naming the digit in a given place",
	Long: `Quiz asks which digit sits in a named place of a random number and
reads your answers from standard input.

Example:
  placevalue quiz
  placevalue quiz --rounds 10 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runQuiz,
}

func init() {
	rootCmd.AddCommand(quizCmd)

	quizCmd.Flags().IntVar(&quizRounds, "rounds", 5, "number of questions")
	quizCmd.Flags().Int64Var(&quizSeed, "seed", 0, "random seed (0 picks one)")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Quiz.Seed = quizSeed
	}

	score, asked, err := playQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, quizRounds)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nScore: %d/%d\n", score, asked)
	return nil
}

// playQuiz runs up to rounds questions through the session reducer. It
// stops early when in runs out of lines.
func playQuiz(in io.Reader, out io.Writer, cfg *model.Config, rounds int) (int, int, error) {
	gen := quiz.NewGenerator(cfg.Quiz)
	state := session.New(cfg, nil)
	scanner := bufio.NewScanner(in)

	apply := func(e session.Event) {
		var effects []session.Effect
		state, effects = session.Reduce(state, e)
		for _, effect := range effects {
			if _, ok := effect.(session.GenerateQuestion); ok {
				state, _ = session.Reduce(state, session.QuestionReady{Question: gen.Next()})
			}
		}
	}

	apply(session.ModeSelected{Mode: session.ModeQuiz})

	for round := 1; round <= rounds; round++ {
		if round > 1 {
			apply(session.QuizNext{})
		}

		fmt.Fprintf(out, "\n[%d/%d] %s\n> ", round, rounds, state.Quiz.Current.Text)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return state.Quiz.Score, state.Quiz.Asked, fmt.Errorf("read answer: %w", err)
			}
			fmt.Fprintln(out)
			break
		}

		apply(session.QuizAnswered{Answer: scanner.Text()})
		if state.Quiz.Correct {
			fmt.Fprintln(out, "✓ Correct!")
		} else {
			fmt.Fprintf(out, "✗ %s\n", state.Status)
		}
	}

	return state.Quiz.Score, state.Quiz.Asked, nil
}
