package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a learner's scores and answer history",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		subject, _ := cmd.Flags().GetString("subject")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()

		if subject != "" {
			points, err := st.Scores().Score(ctx, user, subject)
			if err != nil {
				return err
			}
			stats, err := st.Events().AnswerStats(ctx, user, subject)
			if err != nil {
				return err
			}
			fmt.Printf("%s / %s: %d points, %d/%d correct\n",
				user, subject, points, stats.Correct, stats.Total)

			recent, err := st.Events().RecentAnswers(ctx, user, subject, 10)
			if err != nil {
				return err
			}
			if len(recent) > 0 {
				fmt.Println("\nRecent answers (newest first):")
				for _, row := range recent {
					mark := "✗"
					if row.Correct {
						mark = "✓"
					}
					fmt.Printf("  %s %-16s attempt %d (%s)\n",
						mark, row.QuestionID, row.Attempt, row.Classification)
				}
			}
			return nil
		}

		rows, err := st.Scores().ForUser(ctx, user)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Printf("No scores recorded for %s\n", user)
			return nil
		}

		fmt.Printf("%-20s %8s %10s\n", "SUBJECT", "POINTS", "CORRECT")
		total := 0
		for _, row := range rows {
			stats, err := st.Events().AnswerStats(ctx, user, row.Subject)
			if err != nil {
				return err
			}
			total += row.Points
			fmt.Printf("%-20s %8d %7d/%d\n", row.Subject, row.Points, stats.Correct, stats.Total)
		}
		fmt.Printf("%-20s %8d\n", "TOTAL", total)
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "", "Learner name (required)")
	statsCmd.Flags().String("subject", "", "Limit to one subject")
	_ = statsCmd.MarkFlagRequired("user")
}
