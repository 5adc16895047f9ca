package domain

// TokenKind identifies one of the two fungible assets the daemon deals with.
type TokenKind int

const (
	// PoolToken is the asset held by the liquidity pool and used as the
	// notional of every option.
	PoolToken TokenKind = iota
	// PaymentToken is the asset premiums and strikes are paid in.
	PaymentToken
)

func (t TokenKind) String() string {
	switch t {
	case PoolToken:
		return "pool"
	case PaymentToken:
		return "payment"
	default:
		return "unknown"
	}
}

// Other returns the opposite side of the pair.
func (t TokenKind) Other() TokenKind {
	if t == PoolToken {
		return PaymentToken
	}
	return PoolToken
}

// OptionKind discriminates calls from puts.
type OptionKind int

const (
	OptionKindCall OptionKind = iota
	OptionKindPut
)

func (k OptionKind) String() string {
	if k == OptionKindPut {
		return "put"
	}
	return "call"
}

// Option status codes. An option walks Created -> Active and ends in
// exactly one of Exercised, Expired or Cancelled.
const (
	OptionStatusCodeUndefined = iota
	OptionStatusCodeCreated
	OptionStatusCodeActive
	OptionStatusCodeExercised
	OptionStatusCodeExpired
	OptionStatusCodeCancelled
)

var statusLabels = map[int]string{
	OptionStatusCodeUndefined: "undefined",
	OptionStatusCodeCreated:   "created",
	OptionStatusCodeActive:    "active",
	OptionStatusCodeExercised: "exercised",
	OptionStatusCodeExpired:   "expired",
	OptionStatusCodeCancelled: "cancelled",
}

// OptionStatusLabel returns the human readable label for a status code.
func OptionStatusLabel(code int) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return "unknown"
}
