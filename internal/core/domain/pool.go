package domain

import (
	"math/big"

	"github.com/odex-network/odex-daemon/pkg/amm"
)

// LiquidityPool holds the state of the single shared pool options are
// settled against. It keeps two books: the swap reserves, which form the
// constant-product pricing curve, and the custody balances, which track
// the tokens the pool itself owns (deposits plus accrued swap proceeds
// minus payouts released to option holders).
type LiquidityPool struct {
	PoolTokenReserve    uint64
	PaymentTokenReserve uint64
	PoolTokenBalance    uint64
	PaymentTokenBalance uint64
	// PercentageFee is the swap fee expressed in basis points.
	PercentageFee uint32
	CreatedAt     int64
}

// NewLiquidityPool returns a pool with the given genesis reserves and
// swap fee and empty custody.
func NewLiquidityPool(
	poolTokenReserve, paymentTokenReserve uint64, percentageFee uint32,
	createdAt int64,
) (*LiquidityPool, error) {
	if poolTokenReserve == 0 || paymentTokenReserve == 0 {
		return nil, ErrInvalidPoolReserves
	}
	if percentageFee >= amm.BpsDenominator {
		return nil, ErrInvalidPoolFee
	}
	return &LiquidityPool{
		PoolTokenReserve:    poolTokenReserve,
		PaymentTokenReserve: paymentTokenReserve,
		PercentageFee:       percentageFee,
		CreatedAt:           createdAt,
	}, nil
}

// Reserves returns the (reserveIn, reserveOut) pair for a swap selling the
// given token kind.
func (p *LiquidityPool) Reserves(tokenIn TokenKind) (uint64, uint64) {
	if tokenIn == PaymentToken {
		return p.PaymentTokenReserve, p.PoolTokenReserve
	}
	return p.PoolTokenReserve, p.PaymentTokenReserve
}

// PreviewSwap quotes the output of a swap without mutating the reserves.
func (p *LiquidityPool) PreviewSwap(
	amountIn uint64, tokenIn TokenKind,
) (uint64, error) {
	reserveIn, reserveOut := p.Reserves(tokenIn)
	amountOut, err := amm.QuoteOutput(
		reserveIn, reserveOut, amountIn, p.PercentageFee,
	)
	if err != nil {
		return 0, err
	}
	if amountOut >= reserveOut {
		return 0, ErrInsufficientLiquidity
	}
	return amountOut, nil
}

// Swap sells amountIn of the given token against the reserves and returns
// the amount bought. Both reserves are adjusted atomically; the floor
// rounding of the quote keeps the reserve product non-decreasing.
func (p *LiquidityPool) Swap(
	amountIn uint64, tokenIn TokenKind,
) (uint64, error) {
	if amountIn == 0 {
		return 0, ErrAmountTooLow
	}
	amountOut, err := p.PreviewSwap(amountIn, tokenIn)
	if err != nil {
		return 0, err
	}

	if tokenIn == PaymentToken {
		p.PaymentTokenReserve += amountIn
		p.PoolTokenReserve -= amountOut
	} else {
		p.PoolTokenReserve += amountIn
		p.PaymentTokenReserve -= amountOut
	}
	return amountOut, nil
}

// SpotQuote values the given amount of the input token at the current spot
// price, without fee and without slippage. Used to derive at-the-money
// strikes.
func (p *LiquidityPool) SpotQuote(
	amount uint64, tokenIn TokenKind,
) (uint64, error) {
	reserveIn, reserveOut := p.Reserves(tokenIn)
	if reserveIn == 0 || reserveOut == 0 {
		return 0, ErrInvalidPoolReserves
	}
	quote := new(big.Int).Quo(
		new(big.Int).Mul(
			new(big.Int).SetUint64(amount), new(big.Int).SetUint64(reserveOut),
		),
		new(big.Int).SetUint64(reserveIn),
	)
	return quote.Uint64(), nil
}

// Deposit adds pool tokens to the pool custody.
func (p *LiquidityPool) Deposit(amount uint64) error {
	if amount == 0 {
		return ErrAmountTooLow
	}
	p.PoolTokenBalance += amount
	return nil
}

// Credit adds swap proceeds of the given kind to the pool custody.
func (p *LiquidityPool) Credit(amount uint64, token TokenKind) {
	if token == PaymentToken {
		p.PaymentTokenBalance += amount
		return
	}
	p.PoolTokenBalance += amount
}

// Release takes tokens of the given kind out of the pool custody, failing
// when the custody balance is short.
func (p *LiquidityPool) Release(amount uint64, token TokenKind) error {
	if token == PaymentToken {
		if amount > p.PaymentTokenBalance {
			return ErrInsufficientLiquidity
		}
		p.PaymentTokenBalance -= amount
		return nil
	}
	if amount > p.PoolTokenBalance {
		return ErrInsufficientLiquidity
	}
	p.PoolTokenBalance -= amount
	return nil
}

// CustodyBalance returns the custody balance for the given token kind.
func (p *LiquidityPool) CustodyBalance(token TokenKind) uint64 {
	if token == PaymentToken {
		return p.PaymentTokenBalance
	}
	return p.PoolTokenBalance
}

// ReserveProduct returns the current product of the two reserves.
func (p *LiquidityPool) ReserveProduct() *big.Int {
	return new(big.Int).Mul(
		new(big.Int).SetUint64(p.PoolTokenReserve),
		new(big.Int).SetUint64(p.PaymentTokenReserve),
	)
}
