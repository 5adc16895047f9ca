package domain

// Event types emitted by the options engine.
const (
	// EventTypeExchange records a swap leg executed against the pool
	// reserves on behalf of an option.
	EventTypeExchange = iota
	// EventTypeExercise records the payout released to the holder of an
	// exercised option. It always follows the Exchange event emitted
	// within the same exercise call.
	EventTypeExercise
)

// Event topics a subscriber can listen on.
const (
	ExchangeTopic = "exchange"
	ExerciseTopic = "exercise"
	AnyTopic      = "*"
)

// Event is an immutable record appended to the engine's ordered event log.
// Seq is assigned by the repository and defines the total order.
type Event struct {
	Seq       uint64
	Type      int
	OptionId  uint64
	Timestamp int64

	// Exchange fields.
	TokenSold    TokenKind
	AmountSold   uint64
	TokenBought  TokenKind
	AmountBought uint64

	// Exercise field.
	Amount uint64
}

// Topic returns the pubsub topic the event is published on.
func (e Event) Topic() string {
	if e.Type == EventTypeExercise {
		return ExerciseTopic
	}
	return ExchangeTopic
}

// NewExchangeEvent returns the record of a swap executed for an option.
func NewExchangeEvent(
	optionId uint64, tokenSold TokenKind, amountSold uint64,
	tokenBought TokenKind, amountBought uint64, timestamp int64,
) Event {
	return Event{
		Type:         EventTypeExchange,
		OptionId:     optionId,
		TokenSold:    tokenSold,
		AmountSold:   amountSold,
		TokenBought:  tokenBought,
		AmountBought: amountBought,
		Timestamp:    timestamp,
	}
}

// NewExerciseEvent returns the record of an option payout.
func NewExerciseEvent(optionId, amount uint64, timestamp int64) Event {
	return Event{
		Type:      EventTypeExercise,
		OptionId:  optionId,
		Amount:    amount,
		Timestamp: timestamp,
	}
}
