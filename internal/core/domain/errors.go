package domain

import "errors"

var (
	// ErrOptionMustBeCreated is thrown when activating or cancelling an
	// option that already left the Created status.
	ErrOptionMustBeCreated = errors.New("option must be in created status")
	// ErrOptionMustBeActive is thrown when exercising an option that is not
	// currently active.
	ErrOptionMustBeActive = errors.New("option must be in active status")
	// ErrOptionExpired is thrown when exercising an option past the end of
	// its exercise window.
	ErrOptionExpired = errors.New("option is expired")
	// ErrInvalidOptionKind ...
	ErrInvalidOptionKind = errors.New("option kind must be either call or put")
	// ErrAmountTooLow ...
	ErrAmountTooLow = errors.New("provided amount is too low")
	// ErrInsufficientLiquidity is thrown when a swap would drain a reserve
	// or a payout exceeds the pool balance.
	ErrInsufficientLiquidity = errors.New("insufficient pool liquidity")
	// ErrInvalidPoolReserves ...
	ErrInvalidPoolReserves = errors.New("pool reserves must be positive")
	// ErrInvalidPoolFee ...
	ErrInvalidPoolFee = errors.New("pool fee must be lower than 10000 basis points")
	// ErrOptionNotFound ...
	ErrOptionNotFound = errors.New("option not found")
	// ErrPoolNotFound ...
	ErrPoolNotFound = errors.New("liquidity pool not found")
)
