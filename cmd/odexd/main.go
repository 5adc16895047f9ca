package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/odex-network/odex-daemon/internal/config"
	"github.com/odex-network/odex-daemon/internal/core/application"
	"github.com/odex-network/odex-daemon/internal/core/domain"
	"github.com/odex-network/odex-daemon/internal/core/ports"
	"github.com/odex-network/odex-daemon/internal/infrastructure/clock"
	ledgerinmemory "github.com/odex-network/odex-daemon/internal/infrastructure/ledger/inmemory"
	pubsubinmemory "github.com/odex-network/odex-daemon/internal/infrastructure/pubsub/inmemory"
	dbbadger "github.com/odex-network/odex-daemon/internal/infrastructure/storage/db/badger"
	httpinterface "github.com/odex-network/odex-daemon/internal/interfaces/http"
)

func main() {
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	dbManager, err := dbbadger.NewDbManager(config.GetDbDir(), nil)
	if err != nil {
		log.WithError(err).Panic("error while opening db")
	}
	defer dbManager.Close()

	optionRepo := dbbadger.NewOptionRepositoryImpl(dbManager)
	poolRepo := dbbadger.NewPoolRepositoryImpl(dbManager)
	eventRepo := dbbadger.NewEventRepositoryImpl(dbManager)

	ledger := ledgerinmemory.NewLedger()
	pubsub := pubsubinmemory.NewService()
	defer pubsub.Close()
	sysClock := clock.NewSystemClock()

	if err := bootstrapPool(poolRepo, ledger, sysClock); err != nil {
		log.WithError(err).Panic("error while bootstrapping liquidity pool")
	}

	optionSvc, poolSvc := application.NewServices(application.ServiceOpts{
		OptionRepository: optionRepo,
		PoolRepository:   poolRepo,
		EventRepository:  eventRepo,
		Ledger:           ledger,
		PubSub:           pubsub,
		Clock:            sysClock,
		MinDuration:      int64(config.GetInt(config.MinDurationKey)),
		MaxDuration:      int64(config.GetInt(config.MaxDurationKey)),
		VolatilityBps:    config.GetUint64(config.VolatilityBpsKey),
	})

	addr := fmt.Sprintf(":%d", config.GetInt(config.HTTPPortKey))
	server := httpinterface.NewServer(optionSvc, poolSvc, ledger)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if config.GetBool(config.EnableProfilerKey) {
		go func() {
			log.Info("profiler is listening on localhost:6060")
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				log.WithError(err).Error("profiler stopped")
			}
		}()
	}

	go func() {
		log.Infof("http interface is listening on %s", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Panic("error listening on http interface")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("error while shutting down http interface")
	}

	log.Info("exiting")
}

// bootstrapPool creates the liquidity pool with the configured genesis
// reserves on first start and seeds the venue ledger account accordingly.
func bootstrapPool(
	poolRepo domain.PoolRepository, ledger ports.FungibleLedger,
	sysClock ports.Clock,
) error {
	ctx := context.Background()

	pool, err := poolRepo.GetPool(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrPoolNotFound) {
			return err
		}

		poolReserve := config.GetUint64(config.PoolTokenReserveKey)
		paymentReserve := config.GetUint64(config.PaymentTokenReserveKey)
		fee := uint32(config.GetInt(config.PercentageFeeKey))

		pool, err = domain.NewLiquidityPool(
			poolReserve, paymentReserve, fee, sysClock.Now().Unix(),
		)
		if err != nil {
			return err
		}
		if err := poolRepo.AddPool(ctx, pool); err != nil {
			return err
		}
		log.Infof(
			"created liquidity pool with reserves %d/%d and fee %d bps",
			poolReserve, paymentReserve, fee,
		)
	}

	// The ledger capability is volatile, re-seed the system accounts to
	// match the persisted pool state on every start.
	seeds := []struct {
		account string
		amount  uint64
		token   domain.TokenKind
	}{
		{application.VenueAccount, pool.PoolTokenReserve, domain.PoolToken},
		{application.VenueAccount, pool.PaymentTokenReserve, domain.PaymentToken},
		{application.PoolAccount, pool.PoolTokenBalance, domain.PoolToken},
		{application.PoolAccount, pool.PaymentTokenBalance, domain.PaymentToken},
	}
	for _, seed := range seeds {
		if seed.amount == 0 {
			continue
		}
		if err := ledger.Mint(ctx, seed.account, seed.amount, seed.token); err != nil {
			return err
		}
	}
	return nil
}
