// Package amm implements the constant-product quote math used to price
// swaps against a pair of reserves.
package amm

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

// BpsDenominator is the denominator used for fees expressed in basis points.
const BpsDenominator = 10000

var (
	// ErrInvalidReserves ...
	ErrInvalidReserves = errors.New("reserves must be positive")
	// ErrInvalidFee ...
	ErrInvalidFee = errors.New("fee must be lower than 10000 basis points")

	bpsDen = big.NewInt(BpsDenominator)
)

// QuoteOutput returns the amount of output asset given in exchange for
// amountIn of the input asset, keeping the product of the reserves
// non-decreasing. The fee is expressed in basis points and charged on the
// way in. Integer floor arithmetic only, so that rounding always favors
// the reserves.
//
//	amountOut = reserveOut * amountIn * (10000 - feeBps) /
//	            (reserveIn * 10000 + amountIn * (10000 - feeBps))
func QuoteOutput(
	reserveIn, reserveOut, amountIn uint64, feeBps uint32,
) (uint64, error) {
	if reserveIn == 0 || reserveOut == 0 {
		return 0, ErrInvalidReserves
	}
	if feeBps >= BpsDenominator {
		return 0, ErrInvalidFee
	}
	if amountIn == 0 {
		return 0, nil
	}

	inWithFee := new(big.Int).Mul(
		new(big.Int).SetUint64(amountIn),
		big.NewInt(int64(BpsDenominator-feeBps)),
	)
	num := new(big.Int).Mul(new(big.Int).SetUint64(reserveOut), inWithFee)
	den := new(big.Int).Add(
		new(big.Int).Mul(new(big.Int).SetUint64(reserveIn), bpsDen),
		inWithFee,
	)
	return new(big.Int).Quo(num, den).Uint64(), nil
}

// QuoteInput returns the amount of input asset needed to receive amountOut
// of the output asset. It is the inverse of QuoteOutput, rounded up so
// that paying the returned amount always yields at least amountOut.
func QuoteInput(
	reserveIn, reserveOut, amountOut uint64, feeBps uint32,
) (uint64, error) {
	if reserveIn == 0 || reserveOut == 0 {
		return 0, ErrInvalidReserves
	}
	if feeBps >= BpsDenominator {
		return 0, ErrInvalidFee
	}
	if amountOut == 0 {
		return 0, nil
	}
	if amountOut >= reserveOut {
		return 0, ErrInvalidReserves
	}

	num := new(big.Int).Mul(
		new(big.Int).Mul(new(big.Int).SetUint64(reserveIn), new(big.Int).SetUint64(amountOut)),
		bpsDen,
	)
	den := new(big.Int).Mul(
		new(big.Int).SetUint64(reserveOut-amountOut),
		big.NewInt(int64(BpsDenominator-feeBps)),
	)
	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() > 0 {
		quo.Add(quo, big.NewInt(1))
	}
	return quo.Uint64(), nil
}

// SpotPrice returns how much one unit of the input asset is valued in
// output asset given the two reserves.
func SpotPrice(reserveIn, reserveOut uint64) (decimal.Decimal, error) {
	if reserveIn == 0 || reserveOut == 0 {
		return decimal.Zero, ErrInvalidReserves
	}
	in := decimal.NewFromBigInt(new(big.Int).SetUint64(reserveIn), 0)
	out := decimal.NewFromBigInt(new(big.Int).SetUint64(reserveOut), 0)
	return out.Div(in), nil
}
