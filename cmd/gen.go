package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/balajinix/avani-academy/internal/bank"
	"github.com/balajinix/avani-academy/internal/llm"
	"github.com/balajinix/avani-academy/internal/quiz"
	"github.com/balajinix/avani-academy/internal/quizgen"
	"github.com/balajinix/avani-academy/internal/store"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate new bank questions with an LLM",
	Long: "Generates multiple-choice questions for a subject and appends them to\n" +
		"its question bank file. Requires an LLM API key (AVANI_*_API_KEY or a\n" +
		"standard GEMINI/OPENAI/ANTHROPIC_API_KEY).",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		chapter, _ := cmd.Flags().GetString("chapter")
		grade, _ := cmd.Flags().GetInt("grade")
		count, _ := cmd.Flags().GetInt("count")
		retries, _ := cmd.Flags().GetInt("retries")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		banks := resolveBanks(cmd)

		existing, err := banks.Load(subject)
		if err != nil && !errors.Is(err, bank.ErrNotFound) {
			return fmt.Errorf("load bank: %w", err)
		}

		provider, err := newLLMProvider(cmd.Context(), st)
		if err != nil {
			return err
		}

		input := quizgen.GenerateInput{
			Subject:        subject,
			Chapter:        chapter,
			Grade:          grade,
			PriorQuestions: questionTexts(existing),
		}
		generator := quizgen.New(provider, quizgen.DefaultConfig())

		fmt.Printf("Generating %d questions for %s...\n", count, subject)
		generated, err := quizgen.Batch(cmd.Context(), generator, input, count, retries)
		if len(generated) == 0 && err != nil {
			return err
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: stopped early after %d questions: %v\n", len(generated), err)
		}

		if err := banks.Save(subject, append(existing, generated...)); err != nil {
			return fmt.Errorf("save bank: %w", err)
		}

		fmt.Printf("Added %d questions to %s (now %d total)\n",
			len(generated), banks.Path(subject), len(existing)+len(generated))
		return nil
	},
}

func init() {
	genCmd.Flags().String("subject", "", "Subject to generate questions for (required)")
	genCmd.Flags().String("chapter", "", "Chapter or topic within the subject")
	genCmd.Flags().Int("grade", 4, "Target grade level")
	genCmd.Flags().Int("count", 5, "Number of questions to generate")
	genCmd.Flags().Int("retries", 2, "Retries per question on validation failure")
	_ = genCmd.MarkFlagRequired("subject")
}

// newLLMProvider picks a provider config from AVANI_* env vars, falling back
// to discovery of standard API key variables.
func newLLMProvider(ctx context.Context, st *store.Store) (llm.Provider, error) {
	var cfg llm.Config
	if os.Getenv("AVANI_LLM_PROVIDER") != "" {
		cfg = llm.ConfigFromEnv()
	} else if discovered, ok := llm.DiscoverConfig(); ok {
		cfg = discovered
	} else {
		cfg = llm.ConfigFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return llm.NewProvider(ctx, cfg, st.Events())
}

func questionTexts(questions []quiz.Question) []string {
	texts := make([]string, 0, len(questions))
	for _, q := range questions {
		texts = append(texts, q.Text)
	}
	return texts
}
