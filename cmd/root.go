package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/balajinix/avani-academy/internal/app"
	"github.com/balajinix/avani-academy/internal/bank"
	"github.com/balajinix/avani-academy/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "avani",
	Short: "Adaptive quiz app for school subjects",
	Long: "Avani Academy is a terminal quiz app for school children.\n" +
		"Missed questions come back often; mastered ones resurface now and then.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		return app.Run(st, resolveBanks(cmd))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() { _ = godotenv.Load() })

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AVANI_DB env var)")
	rootCmd.PersistentFlags().String("banks", "", "Directory of question bank JSON files (overrides AVANI_BANKS env var)")

	rootCmd.AddCommand(banksCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(worksheetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then AVANI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// resolveBanks returns the bank store using --banks flag, then AVANI_BANKS,
// then the default directory.
func resolveBanks(cmd *cobra.Command) *bank.Store {
	if dir, _ := cmd.Flags().GetString("banks"); dir != "" {
		return bank.New(dir)
	}
	return bank.New(bank.DefaultDir())
}
