package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/runecut"
	"github.com/scalecode-solutions/runecut/internal/codec"
	"github.com/scalecode-solutions/runecut/internal/config"
)

// input returns the text selected by --text, --file or standard input.
func (a *app) input(cmd *cobra.Command) (runecut.Text, error) {
	if cmd.Flags().Changed("text") {
		if a.file != "" {
			return nil, errors.New("--text and --file are mutually exclusive")
		}
		return runecut.FromString(a.text), nil
	}

	var r io.Reader = cmd.InOrStdin()
	source := "stdin"
	if a.file != "" {
		f, err := os.Open(a.file)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r, source = f, a.file
	}

	t, err := codec.Decode(r, a.cfg.InputEncoding)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	a.log.Debug().Str("source", source).Int("units", t.Len()).Msg("input decoded")
	return t, nil
}

// output writes t in the configured encoding, followed by a newline for
// UTF-8 unless --no-newline is set.
func (a *app) output(cmd *cobra.Command, t runecut.Text) error {
	w := cmd.OutOrStdout()
	if err := codec.Encode(w, t, a.cfg.OutputEncoding); err != nil {
		return err
	}
	if a.cfg.OutputEncoding == config.EncodingUTF8 && !a.noNewline {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if t.HasIsolatedSurrogate() {
		a.log.Warn().Msg("result contains an isolated surrogate")
	}
	return nil
}

func parseIndex(name, s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, s)
	}
	return i, nil
}
