package domain

// Option is the data structure representing an at-the-money option bought
// against the shared liquidity pool. Strike, amount and premium are fixed
// at creation, only the status changes afterwards.
type Option struct {
	Id           uint64
	Kind         OptionKind
	Holder       string
	StrikeAmount uint64
	Amount       uint64
	Premium      uint64
	CreatedAt    int64
	Duration     int64
	Status       int
}

// NewOption returns an option in Created status. The id is assigned by the
// repository when the option is persisted.
func NewOption(
	kind OptionKind, holder string,
	strikeAmount, amount, premium uint64,
	createdAt, duration int64,
) (*Option, error) {
	if kind != OptionKindCall && kind != OptionKindPut {
		return nil, ErrInvalidOptionKind
	}
	if amount == 0 {
		return nil, ErrAmountTooLow
	}
	return &Option{
		Kind:         kind,
		Holder:       holder,
		StrikeAmount: strikeAmount,
		Amount:       amount,
		Premium:      premium,
		CreatedAt:    createdAt,
		Duration:     duration,
		Status:       OptionStatusCodeCreated,
	}, nil
}

// Activate brings an option from the Created to the Active status, ie. the
// premium has been escrowed and the exercise window is open.
func (o *Option) Activate() error {
	if o.Status != OptionStatusCodeCreated {
		return ErrOptionMustBeCreated
	}
	o.Status = OptionStatusCodeActive
	return nil
}

// Exercise brings an active option to the Exercised status. The expiry
// boundary is inclusive: exercising exactly at CreatedAt+Duration succeeds.
// A late call flips the option to Expired and returns ErrOptionExpired;
// this is the one authorized side effect of a failed exercise, a missed
// window is a terminal fact regardless of the call outcome.
func (o *Option) Exercise(now int64) error {
	if o.Status != OptionStatusCodeActive {
		return ErrOptionMustBeActive
	}
	if o.IsExpired(now) {
		o.Status = OptionStatusCodeExpired
		return ErrOptionExpired
	}
	o.Status = OptionStatusCodeExercised
	return nil
}

// Cancel brings an option from the Created to the Cancelled terminal
// status. Active options cannot be cancelled.
func (o *Option) Cancel() error {
	if o.Status != OptionStatusCodeCreated {
		return ErrOptionMustBeCreated
	}
	o.Status = OptionStatusCodeCancelled
	return nil
}

// Expire flips an active option to Expired once its window has passed.
func (o *Option) Expire(now int64) error {
	if o.Status != OptionStatusCodeActive {
		return ErrOptionMustBeActive
	}
	if !o.IsExpired(now) {
		return ErrOptionMustBeActive
	}
	o.Status = OptionStatusCodeExpired
	return nil
}

// ExpiryTime returns the last timestamp at which the option can be
// exercised.
func (o *Option) ExpiryTime() int64 {
	return o.CreatedAt + o.Duration
}

// IsExpired returns whether the exercise window has passed at the given
// timestamp.
func (o *Option) IsExpired(now int64) bool {
	return now > o.ExpiryTime()
}

// IsActive returns whether the option is currently exercisable.
func (o *Option) IsActive() bool {
	return o.Status == OptionStatusCodeActive
}

// IsTerminal returns whether the option reached one of its final statuses.
func (o *Option) IsTerminal() bool {
	return o.Status == OptionStatusCodeExercised ||
		o.Status == OptionStatusCodeExpired ||
		o.Status == OptionStatusCodeCancelled
}

// PayoutAmount returns what is released to the holder at exercise: the
// notional in pool tokens for calls, the strike in payment tokens for puts.
func (o *Option) PayoutAmount() uint64 {
	if o.Kind == OptionKindPut {
		return o.StrikeAmount
	}
	return o.Amount
}

// PayoutToken returns the asset the payout is denominated in.
func (o *Option) PayoutToken() TokenKind {
	if o.Kind == OptionKindPut {
		return PaymentToken
	}
	return PoolToken
}

// SettlementInput returns what the holder delivers at exercise, the
// counterpart of PayoutAmount.
func (o *Option) SettlementInput() (uint64, TokenKind) {
	if o.Kind == OptionKindPut {
		return o.Amount, PoolToken
	}
	return o.StrikeAmount, PaymentToken
}
