package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/recruit-tracker/internal/tui"
)

const checklistMarkdown = `# Recruiting checklist

## Freshman / Sophomore
- [ ] Register with the NCAA Eligibility Center
- [ ] Keep your GPA up and take core courses
- [ ] Start a highlight clip folder

## Junior
- [ ] Take the SAT or ACT
- [ ] Finish your profile and highlight reel
- [ ] Build a school list across divisions
- [ ] Email coaches every two to three weeks

## Senior
- [ ] Schedule official and unofficial visits
- [ ] Compare offers and financial aid
- [ ] Sign and notify the other programs
`

const resourcesMarkdown = `# Resources

| Resource | What it is for |
|---|---|
| NCAA Eligibility Center | academic and amateur certification for DI and DII |
| NAIA Eligibility Center | certification for NAIA programs |
| NJCAA | junior college athletics |
| Federal Student Aid (FAFSA) | need-based financial aid |

Ask the assistant with ` + "`recruit-tracker chat`" + ` for tips on your profile,
school list, outreach and highlight reel.
`

func init() {
	checklistCmd := &cobra.Command{
		Use:   "checklist",
		Short: "Show the recruiting checklist",
		Run: func(cmd *cobra.Command, args []string) {
			printMarkdown(cmd, checklistMarkdown)
		},
	}

	resourcesCmd := &cobra.Command{
		Use:   "resources",
		Short: "Show recruiting resources",
		Run: func(cmd *cobra.Command, args []string) {
			printMarkdown(cmd, resourcesMarkdown)
		},
	}

	RootCmd.AddCommand(checklistCmd, resourcesCmd)
}

// printMarkdown renders md for the terminal. --format markdown prints the
// source instead.
func printMarkdown(cmd *cobra.Command, md string) {
	if formatFlag == "markdown" {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return
	}
	out, err := tui.RenderMarkdown(md, 80)
	if err != nil {
		logger.Debug("markdown render failed", zap.Error(err))
		out = md
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
}
