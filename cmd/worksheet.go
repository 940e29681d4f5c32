package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balajinix/avani-academy/internal/worksheet"
)

var worksheetCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Render a subject's bank as a printable HTML worksheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		out, _ := cmd.Flags().GetString("out")
		title, _ := cmd.Flags().GetString("title")
		count, _ := cmd.Flags().GetInt("count")
		shuffle, _ := cmd.Flags().GetBool("shuffle")
		withKey, _ := cmd.Flags().GetBool("key")

		banks := resolveBanks(cmd)
		questions, err := banks.Load(subject)
		if err != nil {
			return fmt.Errorf("load bank: %w", err)
		}

		if out == "" {
			out = strings.ToLower(subject) + "-worksheet.html"
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()

		opts := worksheet.Options{
			Title:   title,
			Count:   count,
			Shuffle: shuffle,
			WithKey: withKey,
		}
		if err := worksheet.New().Render(f, subject, questions, opts); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", out)
		return nil
	},
}

func init() {
	worksheetCmd.Flags().String("subject", "", "Subject to render (required)")
	worksheetCmd.Flags().String("out", "", "Output file (default <subject>-worksheet.html)")
	worksheetCmd.Flags().String("title", "", "Worksheet heading")
	worksheetCmd.Flags().Int("count", 0, "Limit the number of questions (0 = all)")
	worksheetCmd.Flags().Bool("shuffle", false, "Randomize question order")
	worksheetCmd.Flags().Bool("key", false, "Append an answer key page")
	_ = worksheetCmd.MarkFlagRequired("subject")
}
