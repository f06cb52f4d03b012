package utils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/wetland/storefront-service/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("not found")

func fastRetry(attempts int) utils.RetryConfig {
	return utils.RetryConfig{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
	}
}

func TestRetry_SucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := utils.Retry(fastRetry(5), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	wantErr := errors.New("still broken")
	err := utils.Retry(fastRetry(3), func() error {
		calls++
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 3, calls)
}

func TestRetry_StableErrorReturnsImmediately(t *testing.T) {
	calls := 0
	err := utils.Retry(fastRetry(5), func() error {
		calls++
		return errNotFound
	}, errNotFound)
	assert.ErrorIs(t, err, errNotFound)
	assert.Equal(t, 1, calls)
}

func TestRetry_WrappedStableError(t *testing.T) {
	calls := 0
	err := utils.Retry(fastRetry(5), func() error {
		calls++
		return errors.Join(errors.New("lookup failed"), errNotFound)
	}, errNotFound)
	assert.ErrorIs(t, err, errNotFound)
	assert.Equal(t, 1, calls)
}
