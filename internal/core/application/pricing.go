package application

import (
	"math/big"

	"github.com/odex-network/odex-daemon/pkg/amm"
)

// PremiumReferenceDuration is the duration the volatility parameter is
// quoted against, ie. an option lasting exactly this long costs
// strike * volatilityBps / 10000.
const PremiumReferenceDuration int64 = 86400

// premiumSqrtScale scales the integer square root so that four decimal
// digits of the time factor survive the flooring.
var premiumSqrtScale = big.NewInt(100000000)

// PremiumQuote computes the upfront premium of an at-the-money option:
//
//	premium = strike * (volatilityBps / 10000) * sqrt(duration / 86400)
//
// floored to an integer, minimum 1. The square-root time scaling is the
// standard short-dated approximation of option time value; volatilityBps
// is a configured volatility proxy. Integer arithmetic only, so the quote
// is deterministic, and the premium is non-decreasing in duration.
func PremiumQuote(strikeAmount, volatilityBps uint64, duration int64) uint64 {
	if strikeAmount == 0 || volatilityBps == 0 || duration <= 0 {
		return 1
	}

	// sqrt(duration/ref) as a fixed-point integer with 4 decimal digits:
	// isqrt(duration * 1e8 / ref) / 1e4.
	scaled := new(big.Int).Quo(
		new(big.Int).Mul(big.NewInt(duration), premiumSqrtScale),
		big.NewInt(PremiumReferenceDuration),
	)
	timeFactor := new(big.Int).Sqrt(scaled)

	premium := new(big.Int).Mul(new(big.Int).SetUint64(strikeAmount), new(big.Int).SetUint64(volatilityBps))
	premium.Mul(premium, timeFactor)
	premium.Quo(premium, big.NewInt(amm.BpsDenominator))
	premium.Quo(premium, big.NewInt(10000))

	if premium.Sign() <= 0 {
		return 1
	}
	return premium.Uint64()
}
