package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/odex-network/odex-daemon/internal/core/domain"
	"github.com/odex-network/odex-daemon/internal/core/ports"
)

// OptionService is the options lifecycle and settlement engine. Every
// mutating operation is serialized and all-or-nothing: preconditions and
// quotes are evaluated against the latest committed pool state before any
// ledger leg or repository write happens.
type OptionService struct {
	optionRepo domain.OptionRepository
	poolRepo   domain.PoolRepository
	eventRepo  domain.EventRepository
	ledger     ports.FungibleLedger
	pubSub     ports.PubSub
	clock      ports.Clock

	minDuration   int64
	maxDuration   int64
	volatilityBps uint64

	mtx *sync.Mutex
}

// CreateATM creates an at-the-money option for the buyer: the strike is
// the current spot value of the notional, the premium is computed by the
// documented pricing policy, pulled from the buyer and swapped into the
// pool. The option is persisted directly in Active status since creation
// and premium escrow happen in the same atomic step.
func (s *OptionService) CreateATM(
	ctx context.Context, buyer string, kind domain.OptionKind,
	duration int64, amount, minPremiumOut uint64,
) (*OptionInfo, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if duration < s.minDuration || duration > s.maxDuration {
		return nil, ErrInvalidDuration
	}

	pool, err := s.poolRepo.GetPool(ctx)
	if err != nil {
		return nil, err
	}

	strikeAmount, err := pool.SpotQuote(amount, domain.PoolToken)
	if err != nil {
		return nil, err
	}
	if strikeAmount == 0 {
		return nil, domain.ErrAmountTooLow
	}
	premium := PremiumQuote(strikeAmount, s.volatilityBps, duration)

	// Quote the premium swap on a scratch copy, nothing is committed yet.
	preview := *pool
	equivalent, err := preview.Swap(premium, domain.PaymentToken)
	if err != nil {
		return nil, err
	}
	if equivalent < minPremiumOut {
		return nil, ErrSlippageExceeded
	}

	now := s.clock.Now().Unix()
	option, err := domain.NewOption(
		kind, buyer, strikeAmount, amount, premium, now, duration,
	)
	if err != nil {
		return nil, err
	}

	if err := s.checkSpendable(ctx, buyer, premium, domain.PaymentToken); err != nil {
		return nil, err
	}

	if err := s.ledger.TransferFrom(
		ctx, EngineAccount, buyer, VenueAccount, premium, domain.PaymentToken,
	); err != nil {
		return nil, transferError(err)
	}
	if err := s.ledger.Transfer(
		ctx, VenueAccount, PoolAccount, equivalent, domain.PoolToken,
	); err != nil {
		s.refund(ctx, VenueAccount, buyer, premium, domain.PaymentToken)
		return nil, transferError(err)
	}

	if err := s.poolRepo.UpdatePool(
		ctx, func(p *domain.LiquidityPool) (*domain.LiquidityPool, error) {
			out, err := p.Swap(premium, domain.PaymentToken)
			if err != nil {
				return nil, err
			}
			p.Credit(out, domain.PoolToken)
			return p, nil
		},
	); err != nil {
		return nil, err
	}

	if err := option.Activate(); err != nil {
		return nil, err
	}
	optionId, err := s.optionRepo.AddOption(ctx, option)
	if err != nil {
		return nil, err
	}

	s.emit(ctx, domain.NewExchangeEvent(
		optionId, domain.PaymentToken, premium, domain.PoolToken, equivalent, now,
	))

	log.Infof(
		"created %s option %d: strike %d, amount %d, premium %d (pool equivalent %d)",
		kind, optionId, strikeAmount, amount, premium, equivalent,
	)

	info := optionInfo(option)
	return &info, nil
}

// Exercise settles an active option at the current pool reserves: the
// holder delivers the strike (calls) or the notional (puts), the delivered
// tokens are swapped into the pool and the payout is released to the
// holder. A call past the exercise window fails with ErrOptionExpired and
// flips the option to Expired as its only side effect.
func (s *OptionService) Exercise(ctx context.Context, optionId uint64) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	option, err := s.optionRepo.GetOption(ctx, optionId)
	if err != nil {
		return err
	}

	now := s.clock.Now().Unix()
	scratch := *option
	if err := scratch.Exercise(now); err != nil {
		if errors.Is(err, domain.ErrOptionExpired) {
			if updateErr := s.optionRepo.UpdateOption(
				ctx, optionId,
				func(o *domain.Option) (*domain.Option, error) {
					// Lazy expiry: persist the terminal status discovered by
					// the failed attempt.
					o.Exercise(now)
					return o, nil
				},
			); updateErr != nil {
				return updateErr
			}
			log.Debugf("option %d expired at %d", optionId, option.ExpiryTime())
		}
		return err
	}

	pool, err := s.poolRepo.GetPool(ctx)
	if err != nil {
		return err
	}

	amountIn, tokenIn := option.SettlementInput()
	payout, payoutToken := option.PayoutAmount(), option.PayoutToken()

	preview := *pool
	proceeds, err := preview.Swap(amountIn, tokenIn)
	if err != nil {
		return err
	}
	preview.Credit(proceeds, tokenIn.Other())
	if err := preview.Release(payout, payoutToken); err != nil {
		return err
	}

	if err := s.checkSpendable(ctx, option.Holder, amountIn, tokenIn); err != nil {
		return err
	}

	if err := s.ledger.TransferFrom(
		ctx, EngineAccount, option.Holder, VenueAccount, amountIn, tokenIn,
	); err != nil {
		return transferError(err)
	}
	if err := s.ledger.Transfer(
		ctx, VenueAccount, PoolAccount, proceeds, tokenIn.Other(),
	); err != nil {
		s.refund(ctx, VenueAccount, option.Holder, amountIn, tokenIn)
		return transferError(err)
	}
	if err := s.ledger.Transfer(
		ctx, PoolAccount, option.Holder, payout, payoutToken,
	); err != nil {
		s.refund(ctx, PoolAccount, VenueAccount, proceeds, tokenIn.Other())
		s.refund(ctx, VenueAccount, option.Holder, amountIn, tokenIn)
		return transferError(err)
	}

	if err := s.poolRepo.UpdatePool(
		ctx, func(p *domain.LiquidityPool) (*domain.LiquidityPool, error) {
			out, err := p.Swap(amountIn, tokenIn)
			if err != nil {
				return nil, err
			}
			p.Credit(out, tokenIn.Other())
			if err := p.Release(payout, payoutToken); err != nil {
				return nil, err
			}
			return p, nil
		},
	); err != nil {
		return err
	}

	if err := s.optionRepo.UpdateOption(
		ctx, optionId, func(o *domain.Option) (*domain.Option, error) {
			if err := o.Exercise(now); err != nil {
				return nil, err
			}
			return o, nil
		},
	); err != nil {
		return err
	}

	s.emit(ctx, domain.NewExchangeEvent(
		optionId, tokenIn, amountIn, tokenIn.Other(), proceeds, now,
	))
	s.emit(ctx, domain.NewExerciseEvent(optionId, option.Amount, now))

	log.Infof(
		"exercised option %d: swapped %d %s for %d %s, released %d %s to holder",
		optionId, amountIn, tokenIn, proceeds, tokenIn.Other(), payout, payoutToken,
	)
	return nil
}

// Cancel brings an option still in Created status to the Cancelled
// terminal status. Nothing is refunded since no premium is escrowed before
// activation.
func (s *OptionService) Cancel(ctx context.Context, optionId uint64) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.optionRepo.UpdateOption(
		ctx, optionId, func(o *domain.Option) (*domain.Option, error) {
			if err := o.Cancel(); err != nil {
				return nil, err
			}
			return o, nil
		},
	)
}

// GetOptionInfo returns the read-only projection of an option. Calling it
// mutates nothing and emits nothing.
func (s *OptionService) GetOptionInfo(
	ctx context.Context, optionId uint64,
) (*OptionInfo, error) {
	option, err := s.optionRepo.GetOption(ctx, optionId)
	if err != nil {
		return nil, err
	}
	info := optionInfo(option)
	return &info, nil
}

// ListOptions returns the projections of all options ever created, ordered
// by id.
func (s *OptionService) ListOptions(ctx context.Context) ([]OptionInfo, error) {
	options, err := s.optionRepo.GetAllOptions(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]OptionInfo, 0, len(options))
	for i := range options {
		infos = append(infos, optionInfo(&options[i]))
	}
	return infos, nil
}

// checkSpendable verifies balance and allowance upfront so that the ledger
// legs of an operation cannot fail halfway through.
func (s *OptionService) checkSpendable(
	ctx context.Context, owner string, amount uint64, token domain.TokenKind,
) error {
	balance, err := s.ledger.BalanceOf(ctx, owner, token)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrLedgerMisconfigured, err)
	}
	if balance < amount {
		return fmt.Errorf("%w: %s", ErrTransferFailed, ports.ErrInsufficientFunds)
	}
	allowance, err := s.ledger.Allowance(ctx, owner, EngineAccount, token)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrLedgerMisconfigured, err)
	}
	if allowance < amount {
		return ports.ErrInsufficientAllowance
	}
	return nil
}

func (s *OptionService) refund(
	ctx context.Context, from, to string, amount uint64, token domain.TokenKind,
) {
	if err := s.ledger.Transfer(ctx, from, to, amount, token); err != nil {
		log.WithError(err).Errorf(
			"failed to refund %d %s from %s to %s", amount, token, from, to,
		)
	}
}

func (s *OptionService) emit(ctx context.Context, event domain.Event) {
	stored, err := s.eventRepo.AddEvent(ctx, event)
	if err != nil {
		log.WithError(err).Error("failed to append event to log")
		stored = event
	}
	if err := s.pubSub.Publish(stored); err != nil {
		log.WithError(err).Error("failed to publish event")
	}
}

func transferError(err error) error {
	if errors.Is(err, ports.ErrInsufficientAllowance) {
		return err
	}
	return fmt.Errorf("%w: %s", ErrTransferFailed, err)
}
