package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	rcio "github.com/matzehuels/rollcall/pkg/io"
	"github.com/matzehuels/rollcall/pkg/vote"
)

// inspectCommand creates the inspect command for summarizing a vote file.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "inspect <file>",
		Short:   "Summarize a roll-call vote without rendering it",
		Example: `  rollcall inspect h3-115.2017.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			set, err := rcio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("Loaded %s: %d ballots", set.ID, set.Total())
			printSummary(set)
			return nil
		},
	}
}

// printSummary prints the outcome, tally and per-party breakdown of set.
func printSummary(set *vote.Set) {
	yea, other := set.Tally()

	fmt.Println(StyleTitle.Render(set.ID))
	printKeyValue("Result", resultBadge(set.Passed)+" "+StyleDim.Render(set.Result))
	printKeyValue("Chamber", set.Chamber.String())
	printKeyValue("Requires", fmt.Sprintf("%s (%d of %d)", set.Requires, set.Threshold, set.Total()))
	printKeyValue("Tally", fmt.Sprintf("%d - %d", yea, other))
	if set.Vacancies > 0 {
		printKeyValue("Vacancies", fmt.Sprintf("%d", set.Vacancies))
	}

	fmt.Println()
	for _, pc := range set.ByParty() {
		fmt.Println(partyRow(pc))
	}
}

// partyRow formats one party's counts.
func partyRow(pc vote.PartyCount) string {
	return fmt.Sprintf("  %s %-2s %s yea  %s nay  %s not voting",
		partySeat(pc.Party), pc.Party,
		StyleNumber.Render(fmt.Sprintf("%3d", pc.Yea)),
		StyleNumber.Render(fmt.Sprintf("%3d", pc.Nay)),
		StyleNumber.Render(fmt.Sprintf("%3d", pc.NotVoting)))
}
