package uniswap_v3_math

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	_, err := MulDivFloor(big.NewInt(1), big.NewInt(1), big.NewInt(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMath)
	assert.ErrorIs(t, err, ErrUniswap3)
	assert.Equal(t, "division by zero", err.Error())

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, KindMath, e.Kind)
	assert.Equal(t, "UNI3_ERR_MATH", e.Code())
	assert.Equal(t, "MathError", e.Kind.String())

	_, err = TickSpacing(FeeAmount(1234))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUniswap3)
	assert.NotErrorIs(t, err, ErrMath)
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "UNI3_ERR", e.Code())
	assert.Equal(t, "Uniswap3Error", e.Kind.String())
}

func TestErrorIsMatchesMessage(t *testing.T) {
	_, err := MulDivCeil(big.NewInt(1), big.NewInt(1), big.NewInt(0))
	assert.ErrorIs(t, err, &Error{Kind: KindMath, Message: "division by zero"})
	assert.NotErrorIs(t, err, &Error{Kind: KindMath, Message: "sum overflows uint256"})
	assert.NotErrorIs(t, err, &Error{Kind: KindUniswap3, Message: "division by zero"})

	wrapped := fmt.Errorf("quote: %w", err)
	assert.ErrorIs(t, wrapped, ErrMath)
	assert.NotErrorIs(t, errors.New("division by zero"), ErrUniswap3)
}
