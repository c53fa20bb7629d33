package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/govalues/moneywords"
	"github.com/govalues/moneywords/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const quitCommand = "quit"

func translateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate [numeral...]",
		Short: "Translate numerals into words",
		Long: `Translate each numeral given as an argument and print one phrase per line.
Without arguments, numerals are read interactively until "quit" is entered.`,
		Example: `  moneywords translate 123.45
  moneywords translate --style british --case lower 1001
  moneywords translate --unit euro --minor-unit cent 0.01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := translatorConfig(viper.GetViper())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return interactive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
			}
			for _, arg := range args {
				words, err := translateLine(cfg, arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), words)
			}
			return nil
		},
	}
}

// translateLine puts a single numeral into words.
func translateLine(cfg moneywords.Config, line string) (string, error) {
	n, err := moneywords.ParseNumeral(line)
	if err != nil {
		return "", err
	}
	return cfg.Translate(n)
}

// interactive reads numerals from r and writes their translations to w
// until the input ends, "quit" is entered, or ctx is canceled.
// Invalid numerals are reported and do not stop the loop.
func interactive(ctx context.Context, r io.Reader, w io.Writer, cfg moneywords.Config) error {
	reader := cli.NewLineReader(r)

	fmt.Fprintln(w, cli.RenderBox("moneywords", fmt.Sprintf("Input a non-negative real number or %q to exit.", quitCommand)))

	for {
		fmt.Fprint(w, "\n"+cli.FormatPrompt("Input"))

		line, err := reader.ReadLine(ctx)
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, cli.ErrInputCancelled):
			fmt.Fprintln(w)
			return nil
		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}

		switch {
		case line == "":
			continue
		case strings.EqualFold(line, quitCommand):
			return nil
		}

		words, err := translateLine(cfg, line)
		if err != nil {
			slog.Debug("Translation failed", "input", line, "error", err)
			fmt.Fprintln(w, cli.FormatError(err))
			continue
		}
		fmt.Fprintln(w, cli.FormatResult(words))
	}
}
