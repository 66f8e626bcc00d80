package hand

import (
	"errors"

	"go.uber.org/zap"
)

// Calculator wraps the engine with a logger.
// Calculations are logged at debug level; rejected requests at warn level.
type Calculator struct {
	logger *zap.Logger
}

// NewLoggedCalculator creates a Calculator that logs to logger.
//
// Precondition: logger must be non-nil.
func NewLoggedCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		panic("hand: NewLoggedCalculator requires a non-nil logger")
	}
	return &Calculator{logger: logger}
}

// Probability computes Probability(r) and logs the outcome.
func (c *Calculator) Probability(r Request) (Result, error) {
	res, err := Probability(r)
	if err != nil {
		c.logRejected(r, err)
		return Result{}, err
	}
	c.logger.Debug("hand probability",
		zap.Int("population", r.Population),
		zap.Int("hand_size", r.HandSize),
		zap.Int("categories", len(r.Categories)),
		zap.Int("assignments", res.Assignments()),
		zap.String("exact", res.exact.RatString()),
		zap.Float64("probability", res.Float64()),
	)
	return res, nil
}

// Breakdown computes Breakdown(r) and logs the number of assignments.
func (c *Calculator) Breakdown(r Request) ([]Assignment, error) {
	rows, err := Breakdown(r)
	if err != nil {
		c.logRejected(r, err)
		return nil, err
	}
	c.logger.Debug("hand breakdown",
		zap.Int("population", r.Population),
		zap.Int("hand_size", r.HandSize),
		zap.Int("assignments", len(rows)),
	)
	return rows, nil
}

func (c *Calculator) logRejected(r Request, err error) {
	fields := []zap.Field{
		zap.Int("population", r.Population),
		zap.Int("hand_size", r.HandSize),
		zap.Int("categories", len(r.Categories)),
		zap.Error(err),
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		fields = append(fields,
			zap.Stringer("kind", cfgErr.Kind),
			zap.Int("category", cfgErr.Category),
		)
	}
	c.logger.Warn("hand request rejected", fields...)
}
