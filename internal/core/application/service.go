package application

import (
	"sync"

	"github.com/odex-network/odex-daemon/internal/core/domain"
	"github.com/odex-network/odex-daemon/internal/core/ports"
)

// ServiceOpts groups the dependencies and policy parameters of the engine
// and pool services.
type ServiceOpts struct {
	OptionRepository domain.OptionRepository
	PoolRepository   domain.PoolRepository
	EventRepository  domain.EventRepository
	Ledger           ports.FungibleLedger
	PubSub           ports.PubSub
	Clock            ports.Clock

	// MinDuration and MaxDuration bound the accepted option durations, in
	// seconds.
	MinDuration int64
	MaxDuration int64
	// VolatilityBps is the volatility proxy of the premium formula, in
	// basis points.
	VolatilityBps uint64
}

// NewServices returns the option engine and the pool service. The two
// share a lock so that every operation against the pool state runs to
// completion with no interleaving, mirroring sequential transaction
// semantics.
func NewServices(opts ServiceOpts) (*OptionService, *PoolService) {
	mtx := &sync.Mutex{}
	optionSvc := &OptionService{
		optionRepo:    opts.OptionRepository,
		poolRepo:      opts.PoolRepository,
		eventRepo:     opts.EventRepository,
		ledger:        opts.Ledger,
		pubSub:        opts.PubSub,
		clock:         opts.Clock,
		minDuration:   opts.MinDuration,
		maxDuration:   opts.MaxDuration,
		volatilityBps: opts.VolatilityBps,
		mtx:           mtx,
	}
	poolSvc := &PoolService{
		poolRepo:  opts.PoolRepository,
		eventRepo: opts.EventRepository,
		ledger:    opts.Ledger,
		mtx:       mtx,
	}
	return optionSvc, poolSvc
}
