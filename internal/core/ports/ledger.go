package ports

import (
	"context"
	"errors"

	"github.com/odex-network/odex-daemon/internal/core/domain"
)

var (
	// ErrInsufficientFunds is returned by a ledger transfer when the sender
	// balance is too low.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientAllowance is returned by a delegated transfer when the
	// spender allowance is too low.
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	// ErrUnknownAccount is returned when an operation references an account
	// the ledger has never seen and cannot create implicitly.
	ErrUnknownAccount = errors.New("unknown ledger account")
)

// FungibleLedger is the external capability holding the balances of the two
// token kinds. Transfers fail cleanly without partial effect; a failed
// transfer must abort the whole engine operation that requested it.
type FungibleLedger interface {
	// BalanceOf returns the balance of an account for the given token.
	BalanceOf(ctx context.Context, account string, token domain.TokenKind) (uint64, error)
	// Transfer moves tokens between two accounts.
	Transfer(ctx context.Context, from, to string, amount uint64, token domain.TokenKind) error
	// TransferFrom moves tokens out of owner's account spending the
	// allowance owner granted to spender.
	TransferFrom(ctx context.Context, spender, owner, to string, amount uint64, token domain.TokenKind) error
	// Approve grants spender an allowance over owner's tokens.
	Approve(ctx context.Context, owner, spender string, amount uint64, token domain.TokenKind) error
	// Allowance returns the residual allowance owner granted to spender.
	Allowance(ctx context.Context, owner, spender string, token domain.TokenKind) (uint64, error)
	// Mint credits freshly issued tokens to an account. Only used at
	// bootstrap to seed the genesis reserves and in tests.
	Mint(ctx context.Context, account string, amount uint64, token domain.TokenKind) error
}
