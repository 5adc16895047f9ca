package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odex-network/odex-daemon/internal/core/domain"
)

const (
	holder       = "alice"
	strikeAmount = uint64(100)
	amount       = uint64(100)
	premium      = uint64(10)
	createdAt    = int64(1000)
	duration     = int64(86400)
)

func TestNewOption(t *testing.T) {
	t.Parallel()

	o, err := domain.NewOption(
		domain.OptionKindCall, holder, strikeAmount, amount, premium,
		createdAt, duration,
	)
	require.NoError(t, err)
	require.NotNil(t, o)
	require.Equal(t, domain.OptionStatusCodeCreated, o.Status)
	require.Equal(t, holder, o.Holder)
	require.Equal(t, createdAt+duration, o.ExpiryTime())
	require.False(t, o.IsActive())
	require.False(t, o.IsTerminal())
}

func TestFailingNewOption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		kind          domain.OptionKind
		amount        uint64
		expectedError error
	}{
		{
			name:          "invalid_kind",
			kind:          domain.OptionKind(42),
			amount:        amount,
			expectedError: domain.ErrInvalidOptionKind,
		},
		{
			name:          "zero_amount",
			kind:          domain.OptionKindCall,
			amount:        0,
			expectedError: domain.ErrAmountTooLow,
		},
	}

	for i := range tests {
		tt := tests[i]

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o, err := domain.NewOption(
				tt.kind, holder, strikeAmount, tt.amount, premium,
				createdAt, duration,
			)
			require.ErrorIs(t, err, tt.expectedError)
			require.Nil(t, o)
		})
	}
}

func TestOptionActivate(t *testing.T) {
	t.Parallel()

	o := newCreatedOption(t)
	err := o.Activate()
	require.NoError(t, err)
	require.Equal(t, domain.OptionStatusCodeActive, o.Status)
	require.True(t, o.IsActive())

	err = o.Activate()
	require.ErrorIs(t, err, domain.ErrOptionMustBeCreated)
}

func TestOptionExercise(t *testing.T) {
	t.Parallel()

	t.Run("within_window", func(t *testing.T) {
		t.Parallel()

		o := newActiveOption(t)
		err := o.Exercise(createdAt + 10)
		require.NoError(t, err)
		require.Equal(t, domain.OptionStatusCodeExercised, o.Status)
		require.True(t, o.IsTerminal())
	})

	t.Run("exactly_at_expiry", func(t *testing.T) {
		t.Parallel()

		o := newActiveOption(t)
		err := o.Exercise(o.ExpiryTime())
		require.NoError(t, err)
		require.Equal(t, domain.OptionStatusCodeExercised, o.Status)
	})

	t.Run("past_expiry_flips_to_expired", func(t *testing.T) {
		t.Parallel()

		o := newActiveOption(t)
		err := o.Exercise(o.ExpiryTime() + 1)
		require.ErrorIs(t, err, domain.ErrOptionExpired)
		require.Equal(t, domain.OptionStatusCodeExpired, o.Status)
	})

	t.Run("twice", func(t *testing.T) {
		t.Parallel()

		o := newActiveOption(t)
		require.NoError(t, o.Exercise(createdAt+10))
		err := o.Exercise(createdAt + 20)
		require.ErrorIs(t, err, domain.ErrOptionMustBeActive)
		require.Equal(t, domain.OptionStatusCodeExercised, o.Status)
	})

	t.Run("not_active", func(t *testing.T) {
		t.Parallel()

		o := newCreatedOption(t)
		err := o.Exercise(createdAt + 10)
		require.ErrorIs(t, err, domain.ErrOptionMustBeActive)
		require.Equal(t, domain.OptionStatusCodeCreated, o.Status)
	})
}

func TestOptionCancel(t *testing.T) {
	t.Parallel()

	o := newCreatedOption(t)
	err := o.Cancel()
	require.NoError(t, err)
	require.Equal(t, domain.OptionStatusCodeCancelled, o.Status)
	require.True(t, o.IsTerminal())

	active := newActiveOption(t)
	err = active.Cancel()
	require.ErrorIs(t, err, domain.ErrOptionMustBeCreated)
	require.Equal(t, domain.OptionStatusCodeActive, active.Status)
}

func TestOptionExpire(t *testing.T) {
	t.Parallel()

	o := newActiveOption(t)
	err := o.Expire(o.ExpiryTime())
	require.ErrorIs(t, err, domain.ErrOptionMustBeActive)
	require.True(t, o.IsActive())

	err = o.Expire(o.ExpiryTime() + 1)
	require.NoError(t, err)
	require.Equal(t, domain.OptionStatusCodeExpired, o.Status)
}

func TestOptionSettlementLegs(t *testing.T) {
	t.Parallel()

	call := newActiveOption(t)
	in, tokenIn := call.SettlementInput()
	require.Equal(t, strikeAmount, in)
	require.Equal(t, domain.PaymentToken, tokenIn)
	require.Equal(t, amount, call.PayoutAmount())
	require.Equal(t, domain.PoolToken, call.PayoutToken())

	put, err := domain.NewOption(
		domain.OptionKindPut, holder, strikeAmount, amount, premium,
		createdAt, duration,
	)
	require.NoError(t, err)
	in, tokenIn = put.SettlementInput()
	require.Equal(t, amount, in)
	require.Equal(t, domain.PoolToken, tokenIn)
	require.Equal(t, strikeAmount, put.PayoutAmount())
	require.Equal(t, domain.PaymentToken, put.PayoutToken())
}

func newCreatedOption(t *testing.T) *domain.Option {
	o, err := domain.NewOption(
		domain.OptionKindCall, holder, strikeAmount, amount, premium,
		createdAt, duration,
	)
	require.NoError(t, err)
	return o
}

func newActiveOption(t *testing.T) *domain.Option {
	o := newCreatedOption(t)
	require.NoError(t, o.Activate())
	return o
}
