// Package shipping holds the interchangeable shipping-cost policies. A
// strategy is picked per call and never bound to an order; orders keep only
// the resulting cost.
package shipping

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNegativeInput is returned for negative weight or distance. The
	// formulas themselves would happily extrapolate, so bad inputs are
	// rejected instead of clamped.
	ErrNegativeInput = errors.New("shipping weight and distance must be non-negative")
	ErrUnknownMethod = errors.New("unknown shipping method")
)

// Strategy maps (weight, distance) to a cost. Implementations are stateless
// and deterministic.
type Strategy interface {
	Calculate(weightKg, distanceKm float64) (float64, error)
}

// Method names accepted by ForMethod.
const (
	MethodSedex       = "sedex"
	MethodPac         = "pac"
	MethodLocalPickup = "local_pickup"
)

func validate(weightKg, distanceKm float64) error {
	if weightKg < 0 || distanceKm < 0 {
		return fmt.Errorf("%w: weight=%v distance=%v", ErrNegativeInput, weightKg, distanceKm)
	}
	return nil
}

// Sedex is the express courier rate.
type Sedex struct{}

func (Sedex) Calculate(weightKg, distanceKm float64) (float64, error) {
	if err := validate(weightKg, distanceKm); err != nil {
		return 0, err
	}
	return 10.0 + weightKg*3.5 + distanceKm*0.1, nil
}

// Pac is the economy courier rate.
type Pac struct{}

func (Pac) Calculate(weightKg, distanceKm float64) (float64, error) {
	if err := validate(weightKg, distanceKm); err != nil {
		return 0, err
	}
	return 5.0 + weightKg*2.5 + distanceKm*0.05, nil
}

// LocalPickup is free regardless of weight and distance.
type LocalPickup struct{}

func (LocalPickup) Calculate(weightKg, distanceKm float64) (float64, error) {
	if err := validate(weightKg, distanceKm); err != nil {
		return 0, err
	}
	return 0.0, nil
}

// ForMethod resolves a method discriminator, case-insensitively.
func ForMethod(method string) (Strategy, error) {
	switch strings.ToLower(method) {
	case MethodSedex:
		return Sedex{}, nil
	case MethodPac:
		return Pac{}, nil
	case MethodLocalPickup:
		return LocalPickup{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// Quoter delegates to a single held strategy.
type Quoter struct {
	strategy Strategy
}

func NewQuoter(strategy Strategy) Quoter {
	return Quoter{strategy: strategy}
}

func (q Quoter) ExecuteCalculation(weightKg, distanceKm float64) (float64, error) {
	return q.strategy.Calculate(weightKg, distanceKm)
}
