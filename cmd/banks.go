package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List question banks and their sizes",
	RunE: func(cmd *cobra.Command, args []string) error {
		banks := resolveBanks(cmd)

		subjects, err := banks.Subjects()
		if err != nil {
			return fmt.Errorf("scan bank directory: %w", err)
		}
		if len(subjects) == 0 {
			fmt.Printf("No question banks found in %s\n", banks.Dir())
			return nil
		}

		fmt.Printf("%-20s %s\n", "SUBJECT", "QUESTIONS")
		for _, subject := range subjects {
			questions, err := banks.Load(subject)
			if err != nil {
				return fmt.Errorf("load %s: %w", subject, err)
			}
			fmt.Printf("%-20s %d\n", subject, len(questions))
		}
		return nil
	},
}
