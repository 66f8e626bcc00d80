package hand

import (
	"errors"
	"fmt"
)

// ErrorKind names the invariant a rejected Request violated.
type ErrorKind int

const (
	// InvalidPopulation: the deck size is not positive.
	InvalidPopulation ErrorKind = iota + 1
	// InvalidDrawSize: the hand size is not positive or exceeds the deck size.
	InvalidDrawSize
	// InvalidCategoryRange: a category's copies, min and max are out of order.
	InvalidCategoryRange
	// OverAllocatedPopulation: the categories claim more cards than the deck holds.
	OverAllocatedPopulation
)

// Sentinel errors matched by errors.Is against a *ConfigError of the same kind.
var (
	ErrInvalidPopulation       = errors.New("hand: invalid population")
	ErrInvalidDrawSize         = errors.New("hand: invalid draw size")
	ErrInvalidCategoryRange    = errors.New("hand: invalid category range")
	ErrOverAllocatedPopulation = errors.New("hand: over-allocated population")
)

// String returns the kind's stable identifier.
func (k ErrorKind) String() string {
	switch k {
	case InvalidPopulation:
		return "InvalidPopulation"
	case InvalidDrawSize:
		return "InvalidDrawSize"
	case InvalidCategoryRange:
		return "InvalidCategoryRange"
	case OverAllocatedPopulation:
		return "OverAllocatedPopulation"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidPopulation:
		return ErrInvalidPopulation
	case InvalidDrawSize:
		return ErrInvalidDrawSize
	case InvalidCategoryRange:
		return ErrInvalidCategoryRange
	case OverAllocatedPopulation:
		return ErrOverAllocatedPopulation
	default:
		return nil
	}
}

// ConfigError reports the first invariant a Request violates.
type ConfigError struct {
	Kind ErrorKind
	// Category is the index of the offending category, or -1 when the
	// violation is not specific to one category.
	Category int
	// Detail is a human-readable description of the violation.
	Detail string
}

// Error implements error.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("hand: %s: %s", e.Kind, e.Detail)
}

// Unwrap returns the sentinel error for e.Kind.
func (e *ConfigError) Unwrap() error {
	return e.Kind.sentinel()
}

func configErrorf(kind ErrorKind, category int, format string, args ...any) *ConfigError {
	return &ConfigError{Kind: kind, Category: category, Detail: fmt.Sprintf(format, args...)}
}
