package application

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/odex-network/odex-daemon/internal/core/domain"
	"github.com/odex-network/odex-daemon/internal/core/ports"
	"github.com/odex-network/odex-daemon/pkg/amm"
	"github.com/odex-network/odex-daemon/pkg/mathutil"
)

// PoolService manages the liquidity pool custody: deposits, withdrawals
// and the read-only pool queries.
type PoolService struct {
	poolRepo  domain.PoolRepository
	eventRepo domain.EventRepository
	ledger    ports.FungibleLedger

	mtx *sync.Mutex
}

// Deposit pulls pool tokens from the provider into the pool custody. The
// provider must have approved the engine beforehand; the ledger transfer
// and the custody update are a single atomic step, a failed transfer
// leaves the pool untouched.
func (s *PoolService) Deposit(
	ctx context.Context, provider string, amount uint64,
) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if amount == 0 {
		return domain.ErrAmountTooLow
	}
	if _, err := s.poolRepo.GetPool(ctx); err != nil {
		return err
	}

	allowance, err := s.ledger.Allowance(ctx, provider, EngineAccount, domain.PoolToken)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrLedgerMisconfigured, err)
	}
	if allowance < amount {
		return ports.ErrInsufficientAllowance
	}
	if err := s.ledger.TransferFrom(
		ctx, EngineAccount, provider, PoolAccount, amount, domain.PoolToken,
	); err != nil {
		return transferError(err)
	}

	if err := s.poolRepo.UpdatePool(
		ctx, func(p *domain.LiquidityPool) (*domain.LiquidityPool, error) {
			if err := p.Deposit(amount); err != nil {
				return nil, err
			}
			return p, nil
		},
	); err != nil {
		return err
	}

	log.Infof("deposited %d pool tokens from %s", amount, provider)
	return nil
}

// Withdraw releases pool tokens from the custody back to the provider.
// Single-provider model: no share accounting, the caller is trusted to be
// the depositor.
func (s *PoolService) Withdraw(
	ctx context.Context, provider string, amount uint64,
) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if amount == 0 {
		return domain.ErrAmountTooLow
	}
	pool, err := s.poolRepo.GetPool(ctx)
	if err != nil {
		return err
	}
	if amount > pool.CustodyBalance(domain.PoolToken) {
		return domain.ErrInsufficientLiquidity
	}

	if err := s.ledger.Transfer(
		ctx, PoolAccount, provider, amount, domain.PoolToken,
	); err != nil {
		return transferError(err)
	}

	if err := s.poolRepo.UpdatePool(
		ctx, func(p *domain.LiquidityPool) (*domain.LiquidityPool, error) {
			if err := p.Release(amount, domain.PoolToken); err != nil {
				return nil, err
			}
			return p, nil
		},
	); err != nil {
		return err
	}

	log.Infof("withdrew %d pool tokens to %s", amount, provider)
	return nil
}

// GetPoolTokenBalance returns the pool-token custody balance.
func (s *PoolService) GetPoolTokenBalance(ctx context.Context) (uint64, error) {
	pool, err := s.poolRepo.GetPool(ctx)
	if err != nil {
		return 0, err
	}
	return pool.CustodyBalance(domain.PoolToken), nil
}

// PreviewSwap quotes a swap of amountIn of the given token against the
// current reserves without committing anything.
func (s *PoolService) PreviewSwap(
	ctx context.Context, amountIn uint64, tokenIn domain.TokenKind,
) (*SwapPreview, error) {
	pool, err := s.poolRepo.GetPool(ctx)
	if err != nil {
		return nil, err
	}
	amountOut, err := pool.PreviewSwap(amountIn, tokenIn)
	if err != nil {
		return nil, err
	}
	_, feeAmount := mathutil.LessFee(amountIn, uint64(pool.PercentageFee))
	return &SwapPreview{
		TokenIn:   tokenIn.String(),
		AmountIn:  amountIn,
		FeeAmount: feeAmount,
		TokenOut:  tokenIn.Other().String(),
		AmountOut: amountOut,
	}, nil
}

// GetPoolInfo returns reserves, custody balances, fee and spot price.
func (s *PoolService) GetPoolInfo(ctx context.Context) (*PoolInfo, error) {
	pool, err := s.poolRepo.GetPool(ctx)
	if err != nil {
		return nil, err
	}
	spot, err := amm.SpotPrice(pool.PoolTokenReserve, pool.PaymentTokenReserve)
	if err != nil {
		return nil, err
	}
	return &PoolInfo{
		PoolTokenReserve:    pool.PoolTokenReserve,
		PaymentTokenReserve: pool.PaymentTokenReserve,
		PoolTokenBalance:    pool.CustodyBalance(domain.PoolToken),
		PaymentTokenBalance: pool.CustodyBalance(domain.PaymentToken),
		PercentageFee:       pool.PercentageFee,
		SpotPrice:           spot.String(),
	}, nil
}

// ListEvents returns the whole ordered event log.
func (s *PoolService) ListEvents(ctx context.Context) ([]EventInfo, error) {
	events, err := s.eventRepo.GetAllEvents(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]EventInfo, 0, len(events))
	for _, e := range events {
		infos = append(infos, eventInfo(e))
	}
	return infos, nil
}

// ListEventsForOption returns the log entries related to one option.
func (s *PoolService) ListEventsForOption(
	ctx context.Context, optionId uint64,
) ([]EventInfo, error) {
	events, err := s.eventRepo.GetEventsForOption(ctx, optionId)
	if err != nil {
		return nil, err
	}
	infos := make([]EventInfo, 0, len(events))
	for _, e := range events {
		infos = append(infos, eventInfo(e))
	}
	return infos, nil
}
