package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rcliao/recruit-tracker/internal/model"
)

func init() {
	schoolCmd := &cobra.Command{
		Use:   "school",
		Short: "Manage the school list",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a school; its fit score is taken from the current GPA",
		Run:   runSchoolAdd,
	}
	addCmd.Flags().StringP("name", "n", "", "School name (required)")
	addCmd.Flags().String("division", string(model.DivisionNCAAD1), `Division: "NCAA DI", "NCAA DII", "NCAA DIII", "NAIA", "Junior College"`)
	addCmd.Flags().String("contact", "", "Coach contact")
	addCmd.MarkFlagRequired("name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List schools",
		Run:   runSchoolList,
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a school and its outreach entries",
		Args:  cobra.ExactArgs(1),
		Run:   runSchoolRm,
	}

	schoolCmd.AddCommand(addCmd, listCmd, rmCmd)
	RootCmd.AddCommand(schoolCmd)
}

func runSchoolAdd(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	division, _ := cmd.Flags().GetString("division")
	contact, _ := cmd.Flags().GetString("contact")

	if !model.ValidDivisions[model.Division(division)] {
		exitErr("school add", fmt.Errorf("invalid division %q", division))
	}

	t, kv := openTracker(cmd)
	defer kv.Close()

	s, ok := t.AddSchool(cmd.Context(), name, model.Division(division), contact)
	if !ok {
		unchanged(cmd, "school name is empty")
		return
	}
	printJSON(cmd, s)
}

func runSchoolList(cmd *cobra.Command, args []string) {
	t, kv := openTracker(cmd)
	defer kv.Close()

	schools := t.Schools()
	if textOutput() {
		for _, s := range schools {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\tfit %d\t%s\n", s.ID, s.Name, s.Division, s.FitScore, s.Contact)
		}
		return
	}
	printJSON(cmd, schools)
}

func runSchoolRm(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		exitErr("school rm", fmt.Errorf("invalid id %q", args[0]))
	}

	t, kv := openTracker(cmd)
	defer kv.Close()

	removed, ok := t.RemoveSchool(cmd.Context(), id)
	if !ok {
		unchanged(cmd, "no school with that id")
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%d,"outreach_removed":%d}`+"\n", id, removed)
}
