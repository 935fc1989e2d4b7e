package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/recruit-tracker/internal/model"
)

func init() {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit the athlete profile",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the profile and its completion percentage",
		Run:   runProfileShow,
	}

	setCmd := &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set one profile field",
		Long:  "Set one profile field. Fields: " + strings.Join(model.ProfileFields, ", "),
		Args:  cobra.MinimumNArgs(1),
		Run:   runProfileSet,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the profile as JSON",
		Run:   runProfileExport,
	}
	exportCmd.Flags().StringP("out", "o", "", "Write to file instead of stdout")

	importCmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the profile with an exported JSON file",
		Long:  "Replace the profile with an exported JSON file (or stdin). Malformed input leaves the profile unchanged.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runProfileImport,
	}

	profileCmd.AddCommand(showCmd, setCmd, exportCmd, importCmd)
	RootCmd.AddCommand(profileCmd)
}

type profileView struct {
	Profile    model.Profile `json:"profile"`
	Completion int           `json:"completion"`
}

func runProfileShow(cmd *cobra.Command, args []string) {
	t, kv := openTracker(cmd)
	defer kv.Close()

	printJSON(cmd, profileView{Profile: t.Profile(), Completion: t.ProfileCompletion()})
}

func runProfileSet(cmd *cobra.Command, args []string) {
	field := args[0]
	value := strings.Join(args[1:], " ")

	t, kv := openTracker(cmd)
	defer kv.Close()

	if !t.UpdateProfileField(cmd.Context(), field, value) {
		exitErr("profile set", fmt.Errorf("unknown field %q (valid: %s)", field, strings.Join(model.ProfileFields, ", ")))
	}
	printJSON(cmd, profileView{Profile: t.Profile(), Completion: t.ProfileCompletion()})
}

func runProfileExport(cmd *cobra.Command, args []string) {
	out, _ := cmd.Flags().GetString("out")

	t, kv := openTracker(cmd)
	defer kv.Close()

	data := t.ExportProfile()
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), data)
		return
	}
	if err := os.WriteFile(out, []byte(data+"\n"), 0o644); err != nil {
		exitErr("write export", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"file":%q}`+"\n", out)
}

func runProfileImport(cmd *cobra.Command, args []string) {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		exitErr("read import", err)
	}

	t, kv := openTracker(cmd)
	defer kv.Close()

	if err := t.ImportProfile(cmd.Context(), string(data)); err != nil {
		exitErr("import", err)
	}
	printJSON(cmd, profileView{Profile: t.Profile(), Completion: t.ProfileCompletion()})
}
