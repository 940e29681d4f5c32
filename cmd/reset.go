package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a learner's progress and scores",
	Long: "Deletes a learner's attempt records and scores so they can start a\n" +
		"subject over. The answer event log is kept as history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		subject, _ := cmd.Flags().GetString("subject")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Reset(cmd.Context(), user, subject); err != nil {
			return err
		}

		if subject != "" {
			fmt.Printf("Reset %s for %s\n", subject, user)
		} else {
			fmt.Printf("Reset all subjects for %s\n", user)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().String("user", "", "Learner name (required)")
	resetCmd.Flags().String("subject", "", "Limit the reset to one subject")
	_ = resetCmd.MarkFlagRequired("user")
}
