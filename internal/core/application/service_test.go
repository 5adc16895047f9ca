package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/odex-network/odex-daemon/internal/core/application"
	"github.com/odex-network/odex-daemon/internal/core/domain"
	"github.com/odex-network/odex-daemon/internal/core/ports"
	odexclock "github.com/odex-network/odex-daemon/internal/infrastructure/clock"
	ledgerinmemory "github.com/odex-network/odex-daemon/internal/infrastructure/ledger/inmemory"
	pubsubinmemory "github.com/odex-network/odex-daemon/internal/infrastructure/pubsub/inmemory"
	dbbadger "github.com/odex-network/odex-daemon/internal/infrastructure/storage/db/badger"
)

const (
	buyer    = "alice"
	provider = "bob"

	poolReserve    = uint64(2000)
	paymentReserve = uint64(2000)
	percentageFee  = uint32(30)
	minDuration    = int64(600)
	maxDuration    = int64(31536000)
	volatilityBps  = uint64(1000)

	optionAmount   = uint64(100)
	optionDuration = int64(86400)
)

var ctx = context.Background()

type testServices struct {
	optionSvc *application.OptionService
	poolSvc   *application.PoolService

	optionRepo domain.OptionRepository
	poolRepo   domain.PoolRepository
	eventRepo  domain.EventRepository
	ledger     ports.FungibleLedger
	pubSub     ports.PubSub
	clock      *odexclock.ManualClock
}

// newTestServices wires the services against in-memory stores, an empty
// ledger seeded with the venue backing, and a manual clock.
func newTestServices(t *testing.T) *testServices {
	db, err := dbbadger.NewDbManager("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	optionRepo := dbbadger.NewOptionRepositoryImpl(db)
	poolRepo := dbbadger.NewPoolRepositoryImpl(db)
	eventRepo := dbbadger.NewEventRepositoryImpl(db)
	ledger := ledgerinmemory.NewLedger()
	pubSub := pubsubinmemory.NewService()
	t.Cleanup(pubSub.Close)
	clock := odexclock.NewManualClock(time.Unix(1000, 0))

	pool, err := domain.NewLiquidityPool(
		poolReserve, paymentReserve, percentageFee, clock.Now().Unix(),
	)
	require.NoError(t, err)
	require.NoError(t, poolRepo.AddPool(ctx, pool))

	// The venue account backs the swap reserves.
	require.NoError(t, ledger.Mint(
		ctx, application.VenueAccount, poolReserve, domain.PoolToken,
	))
	require.NoError(t, ledger.Mint(
		ctx, application.VenueAccount, paymentReserve, domain.PaymentToken,
	))

	optionSvc, poolSvc := application.NewServices(application.ServiceOpts{
		OptionRepository: optionRepo,
		PoolRepository:   poolRepo,
		EventRepository:  eventRepo,
		Ledger:           ledger,
		PubSub:           pubSub,
		Clock:            clock,
		MinDuration:      minDuration,
		MaxDuration:      maxDuration,
		VolatilityBps:    volatilityBps,
	})

	return &testServices{
		optionSvc:  optionSvc,
		poolSvc:    poolSvc,
		optionRepo: optionRepo,
		poolRepo:   poolRepo,
		eventRepo:  eventRepo,
		ledger:     ledger,
		pubSub:     pubSub,
		clock:      clock,
	}
}

// fundAccount mints tokens to an account and approves the engine to spend
// them, the two prerequisites of every buyer-side operation.
func (s *testServices) fundAccount(
	t *testing.T, account string, amount uint64, token domain.TokenKind,
) {
	require.NoError(t, s.ledger.Mint(ctx, account, amount, token))
	require.NoError(t, s.ledger.Approve(
		ctx, account, application.EngineAccount, amount, token,
	))
}

func (s *testServices) balance(
	t *testing.T, account string, token domain.TokenKind,
) uint64 {
	balance, err := s.ledger.BalanceOf(ctx, account, token)
	require.NoError(t, err)
	return balance
}

// totalSupply sums a token over every account touched by the tests, used
// to check that settlement conserves tokens.
func (s *testServices) totalSupply(t *testing.T, token domain.TokenKind) uint64 {
	accounts := []string{
		buyer, provider,
		application.EngineAccount,
		application.PoolAccount,
		application.VenueAccount,
	}
	var total uint64
	for _, account := range accounts {
		total += s.balance(t, account, token)
	}
	return total
}

func (s *testServices) getPool(t *testing.T) *domain.LiquidityPool {
	pool, err := s.poolRepo.GetPool(ctx)
	require.NoError(t, err)
	return pool
}
