package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rcliao/recruit-tracker/internal/model"
	"github.com/rcliao/recruit-tracker/internal/tui"
)

func init() {
	chatCmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask the recruiting assistant",
		Long:  "Send one message to the assistant, or start an interactive session with -i.",
		Run:   runChat,
	}
	chatCmd.Flags().BoolP("interactive", "i", false, "Interactive chat session")

	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Show the conversation history",
		Run:   runChatLog,
	}

	chatCmd.AddCommand(logCmd)
	RootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) {
	interactive, _ := cmd.Flags().GetBool("interactive")

	t, kv := openTracker(cmd)
	defer kv.Close()

	if interactive || len(args) == 0 {
		p := tea.NewProgram(tui.NewChat(cmd.Context(), t), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			exitErr("chat", err)
		}
		return
	}

	user, reply, ok := t.SendToBot(cmd.Context(), strings.Join(args, " "))
	if !ok {
		unchanged(cmd, "message is empty")
		return
	}
	if textOutput() {
		fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
		return
	}
	printJSON(cmd, []any{user, reply})
}

func runChatLog(cmd *cobra.Command, args []string) {
	t, kv := openTracker(cmd)
	defer kv.Close()

	msgs := t.Chat()
	if textOutput() {
		bot := t.Settings().BotName
		for _, m := range msgs {
			who := "you"
			if m.From == model.SenderBot {
				who = bot
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", who, m.Text)
		}
		return
	}
	printJSON(cmd, msgs)
}
