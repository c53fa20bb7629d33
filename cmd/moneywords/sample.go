package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/govalues/moneywords"
	"github.com/govalues/moneywords/internal/cli"
	"github.com/govalues/moneywords/internal/numgen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func sampleCmd() *cobra.Command {
	var (
		seed    uint64
		maxFrac int
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Translate random numerals of every magnitude",
		Long: `Generate one random numeral for each integer length from 1 to 6 digits and
for every scale name up to vigintillion, and print it with its translation.
The last length, 64 digits, is beyond the supported range and is reported.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := translatorConfig(viper.GetViper())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano()) //nolint:gosec
			}
			slog.Debug("Sampling numerals", "seed", seed, "max_frac", maxFrac)
			return sample(cmd.OutOrStdout(), numgen.New(seed), cfg, maxFrac)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().IntVar(&maxFrac, "max-frac", numgen.DefaultMaxFrac, "upper bound on the length of the fractional part")

	return cmd
}

// sample writes a random numeral and its translation for every length
// of [numgen.DriverLengths]. Numerals that are too large are reported and
// skipped.
func sample(w io.Writer, g *numgen.Generator, cfg moneywords.Config, maxFrac int) error {
	for _, length := range numgen.DriverLengths() {
		s, err := g.Numeral(length, maxFrac)
		if err != nil {
			return err
		}
		n, err := moneywords.ParseNumeral(s)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "Integer part length: %d\n\n%s\n\n", length, n)

		words, err := cfg.Translate(n)
		switch {
		case errors.Is(err, moneywords.ErrMagnitudeOverflow):
			slog.Warn("Numeral is too large", "digits", length, "error", err)
			fmt.Fprintf(w, "%s\n\n", cli.FormatWarning("Error: "+err.Error()))
			continue
		case err != nil:
			return err
		}
		fmt.Fprintf(w, "%s\n\n", words)
	}
	return nil
}
