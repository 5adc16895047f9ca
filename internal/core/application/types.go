package application

import (
	"github.com/odex-network/odex-daemon/internal/core/domain"
)

// Ledger accounts owned by the daemon.
const (
	// EngineAccount is the account the engine acts as when spending the
	// allowances granted by buyers and holders.
	EngineAccount = "odex.engine"
	// PoolAccount holds the pool custody: deposits, accrued swap proceeds
	// and the funds payouts are released from.
	PoolAccount = "odex.pool"
	// VenueAccount backs the swap reserves, seeded with the genesis
	// liquidity at bootstrap.
	VenueAccount = "odex.venue"
)

// OptionInfo is the read-only projection of an option returned by the
// query operations.
type OptionInfo struct {
	Id           uint64 `json:"id"`
	Kind         string `json:"kind"`
	Holder       string `json:"holder"`
	StrikeAmount uint64 `json:"strike_amount"`
	Amount       uint64 `json:"amount"`
	Premium      uint64 `json:"premium"`
	Status       string `json:"status"`
	CreatedAt    int64  `json:"created_at"`
	Duration     int64  `json:"duration"`
	ExpiryTime   int64  `json:"expiry_time"`
}

func optionInfo(o *domain.Option) OptionInfo {
	return OptionInfo{
		Id:           o.Id,
		Kind:         o.Kind.String(),
		Holder:       o.Holder,
		StrikeAmount: o.StrikeAmount,
		Amount:       o.Amount,
		Premium:      o.Premium,
		Status:       domain.OptionStatusLabel(o.Status),
		CreatedAt:    o.CreatedAt,
		Duration:     o.Duration,
		ExpiryTime:   o.ExpiryTime(),
	}
}

// PoolInfo is the read-only projection of the liquidity pool.
type PoolInfo struct {
	PoolTokenReserve    uint64 `json:"pool_token_reserve"`
	PaymentTokenReserve uint64 `json:"payment_token_reserve"`
	PoolTokenBalance    uint64 `json:"pool_token_balance"`
	PaymentTokenBalance uint64 `json:"payment_token_balance"`
	PercentageFee       uint32 `json:"percentage_fee"`
	SpotPrice           string `json:"spot_price"`
}

// SwapPreview is the indicative quote of a swap against the current
// reserves: nothing is committed and the quoted output is not reserved.
type SwapPreview struct {
	TokenIn   string `json:"token_in"`
	AmountIn  uint64 `json:"amount_in"`
	FeeAmount uint64 `json:"fee_amount"`
	TokenOut  string `json:"token_out"`
	AmountOut uint64 `json:"amount_out"`
}

// EventInfo is the read-only projection of a log event.
type EventInfo struct {
	Seq          uint64 `json:"seq"`
	Type         string `json:"type"`
	OptionId     uint64 `json:"option_id"`
	Timestamp    int64  `json:"timestamp"`
	TokenSold    string `json:"token_sold,omitempty"`
	AmountSold   uint64 `json:"amount_sold,omitempty"`
	TokenBought  string `json:"token_bought,omitempty"`
	AmountBought uint64 `json:"amount_bought,omitempty"`
	Amount       uint64 `json:"amount,omitempty"`
}

func eventInfo(e domain.Event) EventInfo {
	info := EventInfo{
		Seq:       e.Seq,
		OptionId:  e.OptionId,
		Timestamp: e.Timestamp,
	}
	switch e.Type {
	case domain.EventTypeExchange:
		info.Type = domain.ExchangeTopic
		info.TokenSold = e.TokenSold.String()
		info.AmountSold = e.AmountSold
		info.TokenBought = e.TokenBought.String()
		info.AmountBought = e.AmountBought
	case domain.EventTypeExercise:
		info.Type = domain.ExerciseTopic
		info.Amount = e.Amount
	}
	return info
}
