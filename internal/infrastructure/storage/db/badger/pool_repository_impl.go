package dbbadger

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/odex-network/odex-daemon/internal/core/domain"
)

const poolKey = "liquidity_pool"

type poolRepositoryImpl struct {
	db *DbManager
}

// NewPoolRepositoryImpl returns a badger implementation of the
// PoolRepository interface.
func NewPoolRepositoryImpl(db *DbManager) domain.PoolRepository {
	return poolRepositoryImpl{db: db}
}

func (r poolRepositoryImpl) AddPool(
	ctx context.Context, pool *domain.LiquidityPool,
) error {
	return r.db.Store.Insert(poolKey, *pool)
}

func (r poolRepositoryImpl) GetPool(
	ctx context.Context,
) (*domain.LiquidityPool, error) {
	var pool domain.LiquidityPool
	if err := r.db.Store.Get(poolKey, &pool); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrPoolNotFound
		}
		return nil, err
	}
	return &pool, nil
}

func (r poolRepositoryImpl) UpdatePool(
	ctx context.Context,
	updateFn func(p *domain.LiquidityPool) (*domain.LiquidityPool, error),
) error {
	currentPool, err := r.GetPool(ctx)
	if err != nil {
		return err
	}

	updatedPool, err := updateFn(currentPool)
	if err != nil {
		return err
	}

	return r.db.Store.Update(poolKey, *updatedPool)
}
