package application

import "errors"

var (
	// ErrInvalidDuration is thrown when creating an option with a duration
	// outside the configured bounds.
	ErrInvalidDuration = errors.New("duration is out of the allowed bounds")
	// ErrSlippageExceeded is thrown when the pool-token equivalent of the
	// computed premium is lower than the minimum the buyer accepts.
	ErrSlippageExceeded = errors.New("swap output is below the accepted minimum")
	// ErrTransferFailed is thrown when a ledger transfer fails and the
	// whole operation is aborted.
	ErrTransferFailed = errors.New("ledger transfer failed")
	// ErrLedgerMisconfigured signals a broken ledger capability, eg. system
	// accounts the ledger does not know. Distinct from business errors so
	// callers can tell a misdeployment from a rejected request.
	ErrLedgerMisconfigured = errors.New("ledger capability is misconfigured")
)
