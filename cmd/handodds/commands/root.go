// Package commands implements the handodds cobra command tree.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/handodds/internal/config"
	"github.com/cory-johannsen/handodds/internal/game/hand"
	"github.com/cory-johannsen/handodds/internal/observability"
)

const flagConfig = "config"

// env is the state shared by subcommands once the root command has loaded
// configuration.
type env struct {
	newLogger func(config.LoggingConfig) (*zap.Logger, error)

	cfg    config.Config
	logger *zap.Logger
	calc   *hand.Calculator
}

func newEnv() *env {
	return &env{newLogger: observability.NewLogger}
}

// Execute runs the command tree with the process arguments. The logger is
// flushed whether or not the command succeeds.
func Execute() error {
	e := newEnv()
	return e.execute(newRootCmd(e))
}

// NewRootCmd builds the handodds command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newEnv())
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "handodds",
		Short:         "Opening hand probability calculator",
		Long:          "Compute the exact probability that an opening hand meets per-card requirements.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString(flagConfig)
			return e.load(path)
		},
	}
	root.PersistentFlags().String(flagConfig, "", "path to configuration file (defaults and HANDODDS_* env when empty)")

	root.AddCommand(
		newCalcCmd(e),
		newProfileCmd(e),
		newProfilesCmd(e),
	)
	return root
}

// execute runs root and then syncs the logger. PersistentPostRun hooks are
// skipped when RunE fails, so the flush happens here instead.
func (e *env) execute(root *cobra.Command) error {
	err := root.Execute()
	if e.logger != nil {
		_ = e.logger.Sync()
	}
	return err
}

func (e *env) load(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger, err := e.newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	e.cfg = cfg
	e.logger = logger
	e.calc = hand.NewLoggedCalculator(logger)
	return nil
}

// checkDeckSize warns when a deck falls outside the configured legal range.
func (e *env) checkDeckSize(name string, size int) {
	if !e.cfg.Calculator.LegalDeckSize(size) {
		e.logger.Warn("deck size outside legal range",
			zap.String("deck", name),
			zap.Int("deck_size", size),
			zap.Int("min", e.cfg.Calculator.DeckSizeMin),
			zap.Int("max", e.cfg.Calculator.DeckSizeMax),
		)
	}
}
