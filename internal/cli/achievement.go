package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	achCmd := &cobra.Command{
		Use:   "achievement",
		Short: "Manage profile achievements",
	}

	addCmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add an achievement",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAchievementAdd,
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an achievement",
		Args:  cobra.ExactArgs(1),
		Run:   runAchievementRm,
	}

	achCmd.AddCommand(addCmd, rmCmd)
	RootCmd.AddCommand(achCmd)
}

func runAchievementAdd(cmd *cobra.Command, args []string) {
	t, kv := openTracker(cmd)
	defer kv.Close()

	a, ok := t.AddAchievement(cmd.Context(), strings.Join(args, " "))
	if !ok {
		unchanged(cmd, "achievement text is empty")
		return
	}
	printJSON(cmd, a)
}

func runAchievementRm(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		exitErr("achievement rm", fmt.Errorf("invalid id %q", args[0]))
	}

	t, kv := openTracker(cmd)
	defer kv.Close()

	if !t.RemoveAchievement(cmd.Context(), id) {
		unchanged(cmd, "no achievement with that id")
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%d}`+"\n", id)
}
