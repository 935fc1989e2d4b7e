package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Brand and assistant names",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show settings",
		Run:   runSettingsShow,
	}

	setCmd := &cobra.Command{
		Use:   "set <brand|bot> <value>",
		Short: "Set the brand name or the assistant's name",
		Args:  cobra.MinimumNArgs(2),
		Run:   runSettingsSet,
	}

	reelCmd := &cobra.Command{
		Use:   "reel",
		Short: "Highlight reel planning notes",
	}

	reelShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the reel plan",
		Run:   runReelShow,
	}

	reelSetCmd := &cobra.Command{
		Use:   "set <text>",
		Short: "Replace the reel plan",
		Run:   runReelSet,
	}

	settingsCmd.AddCommand(showCmd, setCmd)
	reelCmd.AddCommand(reelShowCmd, reelSetCmd)
	RootCmd.AddCommand(settingsCmd, reelCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) {
	t, kv := openTracker(cmd)
	defer kv.Close()

	printJSON(cmd, t.Settings())
}

func runSettingsSet(cmd *cobra.Command, args []string) {
	value := strings.Join(args[1:], " ")

	t, kv := openTracker(cmd)
	defer kv.Close()

	switch args[0] {
	case "brand":
		t.SetBrandName(cmd.Context(), value)
	case "bot":
		t.SetBotName(cmd.Context(), value)
	default:
		exitErr("settings set", fmt.Errorf("unknown setting %q (valid: brand, bot)", args[0]))
	}
	printJSON(cmd, t.Settings())
}

func runReelShow(cmd *cobra.Command, args []string) {
	t, kv := openTracker(cmd)
	defer kv.Close()

	fmt.Fprintln(cmd.OutOrStdout(), t.Settings().ReelPlan)
}

func runReelSet(cmd *cobra.Command, args []string) {
	t, kv := openTracker(cmd)
	defer kv.Close()

	t.SetReelPlan(cmd.Context(), strings.Join(args, " "))
	fmt.Fprintln(cmd.OutOrStdout(), `{"ok":true}`)
}
