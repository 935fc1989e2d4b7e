package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/recruit-tracker/internal/model"
)

func init() {
	outreachCmd := &cobra.Command{
		Use:   "outreach",
		Short: "Log and review contact with coaches",
	}

	logCmd := &cobra.Command{
		Use:   "log <message>",
		Short: "Log outreach to a school, dated today",
		Args:  cobra.MinimumNArgs(1),
		Run:   runOutreachLog,
	}
	logCmd.Flags().Int64P("school", "s", 0, "School id (required)")
	logCmd.MarkFlagRequired("school")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List outreach entries",
		Run:   runOutreachList,
	}

	outreachCmd.AddCommand(logCmd, listCmd)
	RootCmd.AddCommand(outreachCmd)
}

type outreachView struct {
	model.Outreach
	School string `json:"school"`
}

func runOutreachLog(cmd *cobra.Command, args []string) {
	schoolID, _ := cmd.Flags().GetInt64("school")

	t, kv := openTracker(cmd)
	defer kv.Close()

	o, ok := t.LogOutreach(cmd.Context(), schoolID, strings.Join(args, " "))
	if !ok {
		unchanged(cmd, "unknown school or empty message")
		return
	}
	printJSON(cmd, outreachView{Outreach: o, School: t.SchoolName(o.SchoolID)})
}

func runOutreachList(cmd *cobra.Command, args []string) {
	t, kv := openTracker(cmd)
	defer kv.Close()

	entries := t.Outreach()
	views := make([]outreachView, 0, len(entries))
	for _, o := range entries {
		views = append(views, outreachView{Outreach: o, School: t.SchoolName(o.SchoolID)})
	}

	if textOutput() {
		for _, v := range views {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", v.Date, v.School, v.Message)
		}
		return
	}
	printJSON(cmd, views)
}
