package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear generated comments",
	Long: `List the JavaDoc comments generated so far, newest first.
Recorded comments are reused when the same method is described the same way.

Examples:
  jdoc history            # Show the last 10 comments
  jdoc history --limit 0  # Show everything
  jdoc history --clear    # Forget all comments`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of entries to show (0 for all)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded comments")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	out := cmd.OutOrStdout()

	if !cfg.History.Enabled {
		fmt.Fprintln(out, "History is disabled.")
		return nil
	}

	st := openHistory(cfg, GetLogger())
	if st == nil {
		return fmt.Errorf("history database is not available")
	}
	defer st.Close()

	if historyClear {
		count, err := st.Count()
		if err != nil {
			return err
		}
		if err := st.Clear(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Fprintf(out, "Removed %d entries.\n", count)
		return nil
	}

	entries, err := st.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No history yet.")
		return nil
	}

	header := color.New(color.FgCyan, color.Bold)
	for _, e := range entries {
		header.Fprintf(out, "%s  %s", e.CreatedAt.Format("2006-01-02 15:04"), e.Method)
		if e.Hierarchy != "" {
			fmt.Fprintf(out, " (%s)", e.Hierarchy)
		}
		fmt.Fprintln(out)
		if e.File != "" {
			fmt.Fprintf(out, "  file:        %s\n", e.File)
		}
		fmt.Fprintf(out, "  model:       %s\n", e.Model)
		fmt.Fprintf(out, "  description: %s\n", e.Description)
		fmt.Fprintln(out, e.Comment)
		fmt.Fprintln(out)
	}
	return nil
}
