package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/govalues/moneywords"
	"github.com/govalues/moneywords/internal/cli"
	"github.com/govalues/moneywords/internal/numgen"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errMismatch = errors.New("round trip mismatch")

// verifyReport summarizes a verification run.
type verifyReport struct {
	Checked    int // numerals generated
	Overflows  int // numerals rejected with a magnitude overflow
	Mismatches int // translations that did not parse back to the rounded numeral
}

func verifyCmd() *cobra.Command {
	var (
		seed    uint64
		rounds  int
		maxFrac int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that translations parse back to the rounded numerals",
		Long: `Generate random numerals of every magnitude, translate each one and parse
the words back. The parsed numeral must equal the generated one rounded to the
scale of the unit. Progress is written to stderr.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rounds < 1 {
				return fmt.Errorf("rounds must be positive, got %d", rounds)
			}
			cfg, err := translatorConfig(viper.GetViper())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano()) //nolint:gosec
			}
			slog.Debug("Verifying translations", "seed", seed, "rounds", rounds)

			report, err := verify(cmd.Context(), cmd.ErrOrStderr(), numgen.New(seed), cfg, rounds, maxFrac)
			if err != nil {
				return err
			}
			summary := fmt.Sprintf("Checked:    %d\nOverflows:  %d\nMismatches: %d",
				report.Checked, report.Overflows, report.Mismatches)
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox("Verification", summary))
			if report.Mismatches > 0 {
				return fmt.Errorf("%d translations: %w", report.Mismatches, errMismatch)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().IntVar(&rounds, "rounds", 10, "number of numerals per integer length")
	cmd.Flags().IntVar(&maxFrac, "max-frac", numgen.DefaultMaxFrac, "upper bound on the length of the fractional part")

	return cmd
}

// verify translates rounds numerals of every length of
// [numgen.DriverLengths] and parses each translation back.
// Progress is written to progress.
func verify(ctx context.Context, progress io.Writer, g *numgen.Generator, cfg moneywords.Config, rounds, maxFrac int) (verifyReport, error) {
	var report verifyReport
	lengths := numgen.DriverLengths()

	bar := progressbar.NewOptions(rounds*len(lengths),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Verifying translations..."),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(progress); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)

	for range rounds {
		for _, length := range lengths {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			s, err := g.Numeral(length, maxFrac)
			if err != nil {
				return report, err
			}
			n, err := moneywords.ParseNumeral(s)
			if err != nil {
				return report, err
			}
			report.Checked++

			err = checkRoundTrip(cfg, n)
			switch {
			case errors.Is(err, moneywords.ErrMagnitudeOverflow):
				report.Overflows++
			case errors.Is(err, errMismatch):
				report.Mismatches++
				slog.Error("Translation does not parse back", "numeral", n, "error", err)
			case err != nil:
				return report, err
			}

			if err := bar.Add(1); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}
	}

	if err := bar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
	return report, nil
}

// checkRoundTrip translates n and parses the words back.
// It returns an error wrapping errMismatch if the result differs from n
// rounded to the scale of the unit.
func checkRoundTrip(cfg moneywords.Config, n moneywords.Numeral) error {
	words, err := cfg.Translate(n)
	if err != nil {
		return err
	}
	want, err := n.Round(cfg.Unit.Scale(), cfg.Rounding)
	if err != nil {
		return err
	}
	got, err := moneywords.ParseWords(words, cfg.Unit)
	if err != nil {
		return fmt.Errorf("%q: %w: %w", words, errMismatch, err)
	}
	if got != want {
		return fmt.Errorf("%q parsed as %v, want %v: %w", words, got, want, errMismatch)
	}
	return nil
}
