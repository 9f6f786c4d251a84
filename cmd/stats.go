package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lingoquest/lingo/internal/ui/components"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		recent, _ := cmd.Flags().GetInt("recent")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		summary, err := st.Attempts().Summary(ctx)
		if err != nil {
			return fmt.Errorf("query summary: %w", err)
		}
		if len(summary) == 0 {
			fmt.Println("No quiz attempts yet. Run `lingo` and pick a card.")
			return nil
		}

		fmt.Printf("%-12s  %-8s  %-26s  %s\n", "Language", "Attempts", "Best", "Last")
		fmt.Println(strings.Repeat("─", 70))
		for _, s := range summary {
			bar := components.NewScoreBar(s.Best, s.Total, 16)
			fmt.Printf("%-12s  %-8d  %-26s  %s\n",
				s.Language,
				s.Attempts,
				bar.View(),
				s.Last.Local().Format("2006-01-02 15:04"),
			)
		}

		if recent <= 0 {
			return nil
		}
		attempts, err := st.Attempts().Recent(ctx, recent)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}
		fmt.Println()
		fmt.Println("Recent attempts")
		for _, a := range attempts {
			fmt.Printf("  %s  %-10s  %d / %d  (%s)\n",
				a.CreatedAt.Local().Format("2006-01-02 15:04"), a.Language, a.Score, a.Total, a.Source)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("recent", 5, "Number of recent attempts to list (0 to hide)")
}
