package mathutil

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// TenThousands ...
var TenThousands = uint64(10000)

func init() {
	decimal.DivisionPrecision = 8
}

// PlusFee calculates an amount with a fee added given an uint64 amount and a fee expressed in basis point (ie. 0.25 = 25)
func PlusFee(amount, feeAsBasisPoint uint64) (withFee, calculatedFee uint64) {
	feeDecimal := decimal.NewFromBigInt(new(big.Int).SetUint64(feeAsBasisPoint), 0)
	amountDecimal := decimal.NewFromBigInt(new(big.Int).SetUint64(amount), 0)

	calculatedFeeDecimal := amountDecimal.Div(decimal.NewFromBigInt(new(big.Int).SetUint64(TenThousands), 0)).Mul(feeDecimal)
	withFeeDecimal := amountDecimal.Add(calculatedFeeDecimal)

	return withFeeDecimal.BigInt().Uint64(), calculatedFeeDecimal.BigInt().Uint64()
}

// LessFee calculates an amount with a fee subtracted given an uint64 amount and a fee expressed in basis point (ie. 0.25 = 25)
func LessFee(amount, feeAsBasisPoint uint64) (withFee, calculatedFee uint64) {
	feeDecimal := decimal.NewFromBigInt(new(big.Int).SetUint64(feeAsBasisPoint), 0)
	amountDecimal := decimal.NewFromBigInt(new(big.Int).SetUint64(amount), 0)

	calculatedFeeDecimal := amountDecimal.Div(decimal.NewFromBigInt(new(big.Int).SetUint64(TenThousands), 0)).Mul(feeDecimal)
	withFeeDecimal := amountDecimal.Sub(calculatedFeeDecimal)

	return withFeeDecimal.BigInt().Uint64(), calculatedFeeDecimal.BigInt().Uint64()
}
