package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/handodds/internal/game/deck"
	"github.com/cory-johannsen/handodds/internal/game/hand"
)

const (
	flagDeck      = "deck"
	flagHand      = "hand"
	flagCard      = "card"
	flagBreakdown = "breakdown"
)

func newCalcCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the odds for cards given on the command line",
		Example: `  handodds calc --deck 40 --hand 5 --card "Ash Blossom:3:1:3"
  handodds calc --card "Starter:3" --card "Extender:2:1:2" --breakdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &deck.Profile{
				Name:     "command line",
				DeckSize: e.cfg.Calculator.DeckSize,
				HandSize: e.cfg.Calculator.HandSize,
			}
			if cmd.Flags().Changed(flagDeck) {
				p.DeckSize, _ = cmd.Flags().GetInt(flagDeck)
			}
			if cmd.Flags().Changed(flagHand) {
				p.HandSize, _ = cmd.Flags().GetInt(flagHand)
			}
			specs, _ := cmd.Flags().GetStringArray(flagCard)
			for _, s := range specs {
				c, err := deck.ParseCard(s)
				if err != nil {
					return err
				}
				p.Cards = append(p.Cards, c)
			}
			breakdown, _ := cmd.Flags().GetBool(flagBreakdown)
			return e.report(cmd.OutOrStdout(), p, breakdown)
		},
	}
	cmd.Flags().Int(flagDeck, 0, "deck size (default from calculator.deck_size)")
	cmd.Flags().Int(flagHand, 0, "hand size (default from calculator.hand_size)")
	cmd.Flags().StringArray(flagCard, nil, "tracked card as name:copies[:min[:max]] (repeatable)")
	cmd.Flags().Bool(flagBreakdown, false, "list every card-count combination that satisfies the requirements")
	return cmd
}

// report computes p and writes "<name>: <percent>", plus the breakdown when
// requested. Invalid profiles return an error and print nothing.
func (e *env) report(w io.Writer, p *deck.Profile, breakdown bool) error {
	req, err := p.Request(e.cfg.Calculator.MaxCategories)
	if err != nil {
		return err
	}
	e.checkDeckSize(p.Name, p.DeckSize)

	res, err := e.calc.Probability(req)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	precision := e.cfg.Calculator.Precision
	fmt.Fprintf(w, "%s: %s\n", p.Name, res.Format(precision))
	if !breakdown {
		return nil
	}

	rows, err := e.calc.Breakdown(req)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %s  %s\n", describe(req.Categories, row), formatShare(row, precision))
	}
	return nil
}

func describe(cats []hand.Category, row hand.Assignment) string {
	parts := make([]string, 0, len(cats)+1)
	for i, c := range cats {
		parts = append(parts, fmt.Sprintf("%s=%d", c.Label, row.Counts[i]))
	}
	parts = append(parts, fmt.Sprintf("other=%d", row.Leftover))
	return strings.Join(parts, " ")
}

func formatShare(row hand.Assignment, precision int) string {
	f, _ := row.Probability.Float64()
	return fmt.Sprintf("%.*f%%", precision, f*100)
}
