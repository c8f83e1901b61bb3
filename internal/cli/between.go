package cli

import (
	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/runecut"
)

func newBetweenCommand(a *app) *cobra.Command {
	var beginPolicy, endPolicy string

	cmd := &cobra.Command{
		Use:   "between BEGIN END",
		Short: "Print the text between code units BEGIN and END",
		Long: `Print the code units in [BEGIN, END). --policy applies to both cuts;
--begin-policy and --end-policy override it for one side.`,
		Example: `  runecut between 2 5 --text 'A𝔼Ѝ𝔼' --begin-policy keep --end-policy discard`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			begin, err := parseIndex("begin", args[0])
			if err != nil {
				return err
			}
			end, err := parseIndex("end", args[1])
			if err != nil {
				return err
			}
			bp, err := a.policyFlag("begin-policy", beginPolicy)
			if err != nil {
				return err
			}
			ep, err := a.policyFlag("end-policy", endPolicy)
			if err != nil {
				return err
			}
			text, err := a.input(cmd)
			if err != nil {
				return err
			}

			a.log.Debug().Str("request", describe("SliceBetween",
				field{"begin", begin}, field{"end", end}, field{"beginPolicy", bp},
				field{"endPolicy", ep}, field{"units", text.Len()})).Msg("slicing")

			result, err := runecut.SliceBetween(text, begin, end, bp, ep)
			if err != nil {
				return err
			}
			return a.output(cmd, result)
		},
	}

	cmd.Flags().StringVar(&beginPolicy, "begin-policy", "", "policy for the BEGIN cut")
	cmd.Flags().StringVar(&endPolicy, "end-policy", "", "policy for the END cut")
	return cmd
}
