package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainedAddition(t *testing.T) {
	e := New()

	require.NoError(t, ApplyOperator(e, Add))
	digits(t, e, 5)
	require.NoError(t, ApplyOperator(e, Add))
	assert.Equal(t, "0", e.String())
	v, err := e.ActiveOperand()
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	digits(t, e, 3)
	require.NoError(t, Equals(e))
	assert.Equal(t, "8", e.String())
	assert.False(t, e.HasActiveOperand())
	_, ok := e.PendingOperator()
	assert.False(t, ok)
}

func TestBinaryOperators(t *testing.T) {
	tests := []struct {
		name  string
		left  float64
		op    Operator
		right float64
		want  string
	}{
		{name: "add", left: 12, op: Add, right: 5, want: "17"},
		{name: "subtract", left: 3, op: Subtract, right: 10, want: "-7"},
		{name: "multiply", left: 1.5, op: Multiply, right: 4, want: "6"},
		{name: "divide", left: 7, op: Divide, right: 2, want: "3.5"},
		{name: "power", left: 2, op: Power, right: 10, want: "1024"},
		{name: "inverse power", left: 2, op: InversePower, right: 2, want: "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			require.NoError(t, e.SetValue(tt.left))
			require.NoError(t, ApplyOperator(e, tt.op))
			require.NoError(t, e.SetValue(tt.right))
			require.NoError(t, Equals(e))
			assert.Equal(t, tt.want, e.String())
		})
	}
}

func TestDivisionByZeroLeavesChain(t *testing.T) {
	e := New()
	digits(t, e, 1)
	require.NoError(t, ApplyOperator(e, Divide))
	digits(t, e, 0)

	err := Equals(e)
	assert.ErrorIs(t, err, ErrInvalidOperation)
	assert.Equal(t, "0", e.String())
	op, ok := e.PendingOperator()
	require.True(t, ok)
	assert.Equal(t, "/", op.Symbol)
	v, err := e.ActiveOperand()
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	// A following operator fails the same way and changes nothing.
	err = ApplyOperator(e, Add)
	assert.ErrorIs(t, err, ErrInvalidOperation)
	op, _ = e.PendingOperator()
	assert.Equal(t, "/", op.Symbol)

	// Fixing the divisor recovers the chain.
	digits(t, e, 4)
	require.NoError(t, Equals(e))
	assert.Equal(t, "0.25", e.String())
}

func TestEqualsWithoutPendingIsNoop(t *testing.T) {
	e := New()
	digits(t, e, 4, 2)
	rec := &recorder{}
	e.AddListener(rec)

	require.NoError(t, Equals(e))
	assert.Equal(t, "42", e.String())
	assert.Empty(t, rec.seen)
}

func TestEqualsRepeatedIsStable(t *testing.T) {
	e := New()
	digits(t, e, 6)
	require.NoError(t, ApplyOperator(e, Multiply))
	digits(t, e, 7)
	require.NoError(t, Equals(e))
	require.NoError(t, Equals(e))
	assert.Equal(t, "42", e.String())
}

func TestApplyOperatorReplacesPending(t *testing.T) {
	e := New()
	digits(t, e, 9)
	require.NoError(t, ApplyOperator(e, Subtract))
	digits(t, e, 4)
	require.NoError(t, ApplyOperator(e, Multiply))
	assert.Equal(t, "0", e.String())

	v, err := e.ActiveOperand()
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	op, _ := e.PendingOperator()
	assert.Equal(t, "*", op.Symbol)
}

func TestApplyUnary(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		op       Unary
		inverted bool
		want     float64
		wantErr  error
	}{
		{name: "reciprocal", value: 4, op: Reciprocal, want: 0.25},
		{name: "reciprocal ignores inversion", value: 4, op: Reciprocal, inverted: true, want: 0.25},
		{name: "reciprocal of zero", value: 0, op: Reciprocal, wantErr: ErrInvalidOperation},
		{name: "sin", value: 0, op: Sin, want: 0},
		{name: "asin", value: 1, op: Sin, inverted: true, want: math.Pi / 2},
		{name: "cos", value: 0, op: Cos, want: 1},
		{name: "acos", value: 1, op: Cos, inverted: true, want: 0},
		{name: "atan", value: 1, op: Tan, inverted: true, want: math.Pi / 4},
		{name: "actg", value: 1, op: Ctg, inverted: true, want: math.Pi / 4},
		{name: "ctg of zero", value: 0, op: Ctg, wantErr: ErrInvalidOperation},
		{name: "log", value: 1000, op: Log, want: 3},
		{name: "ten to the x", value: 2, op: Log, inverted: true, want: 100},
		{name: "log of negative", value: -1, op: Log, wantErr: ErrInvalidOperation},
		{name: "ln", value: 1, op: Ln, want: 0},
		{name: "e to the x", value: 0, op: Ln, inverted: true, want: 1},
		{name: "asin out of domain", value: 2, op: Sin, inverted: true, wantErr: ErrInvalidOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			require.NoError(t, e.SetValue(tt.value))
			before := e.String()

			err := ApplyUnary(e, tt.op.Select(tt.inverted))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, e.String())
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, e.Value(), 1e-12)
		})
	}
}

func TestUnaryLabels(t *testing.T) {
	assert.Equal(t, "sin", Sin.LabelFor(false))
	assert.Equal(t, "asin", Sin.LabelFor(true))
	assert.Equal(t, "1/x", Reciprocal.LabelFor(true))
	assert.Equal(t, "10^x", Log.LabelFor(true))
	assert.Equal(t, "x^n", Exponent.Select(false).Symbol)
	assert.Equal(t, "x^-n", Exponent.Select(true).Symbol)
}

func TestZeroOperatorIsInvalid(t *testing.T) {
	assert.True(t, math.IsNaN(Operator{}.Apply(1, 2)))

	e := New()
	require.NoError(t, e.SetActiveOperand(1))
	e.SetPendingOperator(Operator{})
	assert.ErrorIs(t, Equals(e), ErrInvalidOperation)
}

func TestPushPop(t *testing.T) {
	e := New()
	assert.ErrorIs(t, PopValue(e), ErrStackUnderflow)

	digits(t, e, 4)
	require.NoError(t, PushValue(e))
	assert.Equal(t, "0", e.String())
	assert.Equal(t, 1, e.Depth())

	digits(t, e, 9)
	require.NoError(t, PopValue(e))
	assert.Equal(t, "4", e.String())
	assert.Equal(t, 0, e.Depth())

	assert.ErrorIs(t, PopValue(e), ErrStackUnderflow)
	assert.Equal(t, "4", e.String())
}

func TestStackSurvivesChain(t *testing.T) {
	e := New()
	require.NoError(t, e.SetValue(2.5))
	require.NoError(t, PushValue(e))

	digits(t, e, 3)
	require.NoError(t, ApplyOperator(e, Add))
	require.NoError(t, PopValue(e))
	require.NoError(t, Equals(e))
	assert.Equal(t, "5.5", e.String())
}
