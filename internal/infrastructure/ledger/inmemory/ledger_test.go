package inmemory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odex-network/odex-daemon/internal/core/domain"
	"github.com/odex-network/odex-daemon/internal/core/ports"
	"github.com/odex-network/odex-daemon/internal/infrastructure/ledger/inmemory"
)

var ctx = context.Background()

func TestLedgerMintAndTransfer(t *testing.T) {
	t.Parallel()

	ledger := inmemory.NewLedger()
	require.NoError(t, ledger.Mint(ctx, "alice", 100, domain.PaymentToken))

	balance, err := ledger.BalanceOf(ctx, "alice", domain.PaymentToken)
	require.NoError(t, err)
	require.Equal(t, uint64(100), balance)

	// Balances are tracked per token kind.
	balance, err = ledger.BalanceOf(ctx, "alice", domain.PoolToken)
	require.NoError(t, err)
	require.Zero(t, balance)

	require.NoError(t, ledger.Transfer(ctx, "alice", "bob", 40, domain.PaymentToken))

	balance, err = ledger.BalanceOf(ctx, "alice", domain.PaymentToken)
	require.NoError(t, err)
	require.Equal(t, uint64(60), balance)
	balance, err = ledger.BalanceOf(ctx, "bob", domain.PaymentToken)
	require.NoError(t, err)
	require.Equal(t, uint64(40), balance)
}

func TestFailingLedgerTransfer(t *testing.T) {
	t.Parallel()

	ledger := inmemory.NewLedger()
	require.NoError(t, ledger.Mint(ctx, "alice", 100, domain.PaymentToken))

	err := ledger.Transfer(ctx, "alice", "bob", 101, domain.PaymentToken)
	require.ErrorIs(t, err, ports.ErrInsufficientFunds)

	// A failed transfer moves nothing.
	balance, err := ledger.BalanceOf(ctx, "alice", domain.PaymentToken)
	require.NoError(t, err)
	require.Equal(t, uint64(100), balance)

	err = ledger.Transfer(ctx, "", "bob", 10, domain.PaymentToken)
	require.ErrorIs(t, err, ports.ErrUnknownAccount)
}

func TestLedgerTransferFrom(t *testing.T) {
	t.Parallel()

	ledger := inmemory.NewLedger()
	require.NoError(t, ledger.Mint(ctx, "alice", 100, domain.PaymentToken))
	require.NoError(t, ledger.Approve(ctx, "alice", "engine", 50, domain.PaymentToken))

	allowance, err := ledger.Allowance(ctx, "alice", "engine", domain.PaymentToken)
	require.NoError(t, err)
	require.Equal(t, uint64(50), allowance)

	require.NoError(t, ledger.TransferFrom(
		ctx, "engine", "alice", "bob", 30, domain.PaymentToken,
	))

	// Spending burns the allowance.
	allowance, err = ledger.Allowance(ctx, "alice", "engine", domain.PaymentToken)
	require.NoError(t, err)
	require.Equal(t, uint64(20), allowance)

	err = ledger.TransferFrom(ctx, "engine", "alice", "bob", 21, domain.PaymentToken)
	require.ErrorIs(t, err, ports.ErrInsufficientAllowance)

	balance, err := ledger.BalanceOf(ctx, "bob", domain.PaymentToken)
	require.NoError(t, err)
	require.Equal(t, uint64(30), balance)
}

func TestFailingLedgerTransferFrom(t *testing.T) {
	t.Parallel()

	ledger := inmemory.NewLedger()
	// Allowance larger than the balance: the funds check still applies.
	require.NoError(t, ledger.Mint(ctx, "alice", 10, domain.PaymentToken))
	require.NoError(t, ledger.Approve(ctx, "alice", "engine", 100, domain.PaymentToken))

	err := ledger.TransferFrom(ctx, "engine", "alice", "bob", 50, domain.PaymentToken)
	require.ErrorIs(t, err, ports.ErrInsufficientFunds)

	// The allowance is untouched when the transfer fails.
	allowance, err := ledger.Allowance(ctx, "alice", "engine", domain.PaymentToken)
	require.NoError(t, err)
	require.Equal(t, uint64(100), allowance)
}
