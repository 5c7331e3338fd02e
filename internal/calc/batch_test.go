package calc

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalAll(t *testing.T) {
	srcs := []string{"2 + 3 * 4", "3 & 4", "8 - 3 - 2", "5 / 0", "(1 + 2"}

	results, err := EvalAll(context.Background(), srcs, 2)
	require.NoError(t, err)
	require.Len(t, results, len(srcs))

	assert := assert.New(t)
	for i, src := range srcs {
		assert.Equal(src, results[i].Src)
	}

	assert.NoError(results[0].Err)
	assert.Equal(int64(14), results[0].Val)
	assert.NoError(results[2].Err)
	assert.Equal(int64(3), results[2].Val)

	var scanErr *ScanError
	assert.True(errors.As(results[1].Err, &scanErr))
	assert.Equal(&ScanError{2, '&', "&", ErrUnexpectedChar}, errors.Cause(results[1].Err))
	assert.Equal(
		"expression 2: [pos 2] Error at '&': Unexpected character.",
		results[1].Err.Error(),
	)

	var runtimeErr *RuntimeError
	assert.True(errors.As(results[3].Err, &runtimeErr))
	assert.True(errors.Is(results[3].Err, ErrDivideByZero))
	assert.Zero(results[3].Val)

	var parseErr *ParseError
	assert.True(errors.As(results[4].Err, &parseErr))
	assert.True(errors.Is(results[4].Err, ErrUnbalancedParen))
}

func TestEvalAllWorkers(t *testing.T) {
	srcs := make([]string, 100)
	for i := range srcs {
		srcs[i] = fmt.Sprintf("%d * (%d + 1) / 2", i, i)
	}

	for _, workers := range []int{0, 1, 4, 200} {
		results, err := EvalAll(context.Background(), srcs, workers)
		require.NoError(t, err)
		require.Len(t, results, len(srcs))
		for i, result := range results {
			assert.NoError(t, result.Err)
			assert.Equal(t, int64(i*(i+1)/2), result.Val, "workers=%d %s", workers, result.Src)
		}
	}
}

func TestEvalAllEmpty(t *testing.T) {
	results, err := EvalAll(context.Background(), nil, 4)

	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestEvalAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := EvalAll(ctx, []string{"1 + 1", "2 + 2"}, 1)

	assert.Nil(t, results)
	assert.ErrorIs(t, err, context.Canceled)
}
