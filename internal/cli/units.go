package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/scalecode-solutions/runecut"
)

// unitStyles colors table rows by unit kind. Colors are dropped when the
// writer is not a terminal.
type unitStyles struct {
	index lipgloss.Style
	kinds map[runecut.UnitKind]lipgloss.Style
}

func newUnitStyles(w io.Writer) unitStyles {
	r := lipgloss.NewRenderer(w)
	return unitStyles{
		index: r.NewStyle().Width(6).Align(lipgloss.Right).Foreground(lipgloss.Color("#8a8a8a")),
		kinds: map[runecut.UnitKind]lipgloss.Style{
			runecut.Ordinary:      r.NewStyle(),
			runecut.HighSurrogate: r.NewStyle().Foreground(lipgloss.Color("#d7875f")).Bold(true),
			runecut.LowSurrogate:  r.NewStyle().Foreground(lipgloss.Color("#5f87d7")).Bold(true),
		},
	}
}

// unitStats counts the units of a text by how they pair up.
type unitStats struct {
	units, pairs, isolated int
}

func countUnits(t runecut.Text) unitStats {
	s := unitStats{units: t.Len()}
	for i := 0; i < len(t); i++ {
		switch t.UnitKind(i) {
		case runecut.HighSurrogate:
			if i+1 < len(t) && runecut.IsLowSurrogate(t[i+1]) {
				s.pairs++
				i++
			} else {
				s.isolated++
			}
		case runecut.LowSurrogate:
			s.isolated++
		}
	}
	return s
}

func newUnitsCommand(a *app) *cobra.Command {
	var summaryOnly bool

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the UTF-16 code units of the input",
		Long: `List every code unit with its index, value and kind. Use it to find
offsets for from and between.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if !summaryOnly {
				if err := writeUnits(w, text); err != nil {
					return fmt.Errorf("write units: %w", err)
				}
			}

			s := countUnits(text)
			a.log.Debug().Int("units", s.units).Int("pairs", s.pairs).Int("isolated", s.isolated).Msg("units listed")

			p := message.NewPrinter(language.English)
			_, err = p.Fprintf(w, "%d code units, %d surrogate pairs, %d isolated surrogates\n",
				s.units, s.pairs, s.isolated)
			return err
		},
	}

	cmd.Flags().BoolVarP(&summaryOnly, "summary", "s", false, "print only the counts")
	return cmd
}

func writeUnits(w io.Writer, t runecut.Text) error {
	styles := newUnitStyles(w)
	for i, u := range t {
		kind := runecut.Classify(u)
		row := fmt.Sprintf("U+%04X  %-8s", u, kind)
		if kind == runecut.Ordinary {
			row += fmt.Sprintf("  %q", rune(u))
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", styles.index.Render(fmt.Sprint(i)), styles.kinds[kind].Render(row)); err != nil {
			return err
		}
	}
	return nil
}
