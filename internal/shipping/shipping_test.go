package shipping_test

import (
	"testing"

	"github.com/wetland/storefront-service/internal/shipping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategies(t *testing.T) {
	testCases := []struct {
		name       string
		strategy   shipping.Strategy
		weightKg   float64
		distanceKm float64
		want       float64
	}{
		{name: "sedex", strategy: shipping.Sedex{}, weightKg: 2.0, distanceKm: 100.0, want: 27.0},
		{name: "sedex zero inputs", strategy: shipping.Sedex{}, want: 10.0},
		{name: "sedex long haul", strategy: shipping.Sedex{}, weightKg: 1.0, distanceKm: 350.0, want: 48.5},
		{name: "pac", strategy: shipping.Pac{}, weightKg: 2.0, distanceKm: 100.0, want: 15.0},
		{name: "pac zero inputs", strategy: shipping.Pac{}, want: 5.0},
		{name: "local pickup", strategy: shipping.LocalPickup{}, weightKg: 2.0, distanceKm: 100.0, want: 0.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cost, err := tc.strategy.Calculate(tc.weightKg, tc.distanceKm)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, cost, 1e-9)
		})
	}
}

func TestStrategies_NegativeInput(t *testing.T) {
	strategies := []shipping.Strategy{shipping.Sedex{}, shipping.Pac{}, shipping.LocalPickup{}}

	for _, s := range strategies {
		_, err := s.Calculate(-1.0, 10.0)
		assert.ErrorIs(t, err, shipping.ErrNegativeInput)

		_, err = s.Calculate(1.0, -10.0)
		assert.ErrorIs(t, err, shipping.ErrNegativeInput)
	}
}

func TestForMethod(t *testing.T) {
	testCases := []struct {
		method string
		want   shipping.Strategy
	}{
		{method: "sedex", want: shipping.Sedex{}},
		{method: "SEDEX", want: shipping.Sedex{}},
		{method: "pac", want: shipping.Pac{}},
		{method: "local_pickup", want: shipping.LocalPickup{}},
	}

	for _, tc := range testCases {
		strategy, err := shipping.ForMethod(tc.method)
		require.NoError(t, err)
		assert.Equal(t, tc.want, strategy)
	}

	_, err := shipping.ForMethod("drone")
	assert.ErrorIs(t, err, shipping.ErrUnknownMethod)
}

func TestQuoter(t *testing.T) {
	quoter := shipping.NewQuoter(shipping.Pac{})

	cost, err := quoter.ExecuteCalculation(2.0, 100.0)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, cost, 1e-9)

	_, err = quoter.ExecuteCalculation(-2.0, 100.0)
	assert.ErrorIs(t, err, shipping.ErrNegativeInput)
}
