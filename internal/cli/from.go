package cli

import (
	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/runecut"
	"github.com/scalecode-solutions/runecut/tostring"
)

func newFromCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "from BEGIN",
		Short: "Print the text from code unit BEGIN to the end",
		Example: `  runecut from 2 --text 'A𝔼Ѝ' --policy keep
  printf 'A𝔼Ѝ' | runecut from 2 -p discard`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			begin, err := parseIndex("begin", args[0])
			if err != nil {
				return err
			}
			text, err := a.input(cmd)
			if err != nil {
				return err
			}

			a.log.Debug().Str("request", describe("SliceFrom",
				field{"begin", begin}, field{"policy", a.cfg.Policy}, field{"units", text.Len()})).Msg("slicing")

			result, err := runecut.SliceFrom(text, begin, a.cfg.Policy)
			if err != nil {
				return err
			}
			return a.output(cmd, result)
		},
	}
}

// field is one named value of a logged request.
type field struct {
	name  string
	value any
}

// describe renders a request for debug logs. A malformed description is
// replaced by the error text.
func describe(op string, fields ...field) string {
	b, err := tostring.ForName(op)
	if err != nil {
		return err.Error()
	}
	for _, f := range fields {
		b.Append(f.name, f.value)
	}
	if err := b.Err(); err != nil {
		return err.Error()
	}
	return b.String()
}
