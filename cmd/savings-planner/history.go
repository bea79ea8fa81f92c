package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rpgo/savings-planner/internal/cli"
	"github.com/rpgo/savings-planner/internal/output"
	"github.com/rpgo/savings-planner/internal/store"
)

var (
	flagHistoryLimit  int
	flagHistoryFormat string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past suggestion runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Render the suggestions of a past run (an ID prefix is enough)",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a past run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyListCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Maximum runs to list (0 = all)")
	historyShowCmd.Flags().StringVarP(&flagHistoryFormat, "format", "f", "", "Output format (default from settings)")
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func openHistory() (*store.History, error) {
	if !settings.History.Enabled {
		return nil, fmt.Errorf("history is disabled in %s", settingsPath())
	}
	return store.Open(settings.History.DBPath)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	h, err := openHistory()
	if err != nil {
		return err
	}
	defer h.Close()

	runs, err := h.ListRuns(flagHistoryLimit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "  No runs recorded yet.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.ID[:8],
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Source,
			strconv.Itoa(r.PeopleCount),
			strconv.Itoa(r.ProductsCount),
			strconv.Itoa(r.RecordCount),
		})
	}
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   "Suggestion runs",
		Headers: []string{"Run", "Created", "Source", "People", "Products", "Suggestions"},
		Rows:    rows,
	}))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	h, err := openHistory()
	if err != nil {
		return err
	}
	defer h.Close()

	run, records, err := h.LoadRun(args[0])
	if err != nil {
		return err
	}
	format := flagHistoryFormat
	if format == "" {
		format = settings.General.DefaultFormat
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "  Run %s from %s (%s)\n", run.ID, run.CreatedAt.Local().Format("2006-01-02 15:04"), run.Source)
	return output.Render(cmd.OutOrStdout(), records, format)
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	h, err := openHistory()
	if err != nil {
		return err
	}
	defer h.Close()

	run, _, err := h.LoadRun(args[0])
	if err != nil {
		return err
	}
	if err := h.DeleteRun(run.ID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Deleted run %s\n", run.ID)
	return nil
}
