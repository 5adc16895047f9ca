package domain

import "context"

// PoolRepository is the abstraction for persisting the single shared
// liquidity pool.
type PoolRepository interface {
	// AddPool persists the pool. Fails if one already exists.
	AddPool(ctx context.Context, pool *LiquidityPool) error
	// GetPool returns the pool, or ErrPoolNotFound.
	GetPool(ctx context.Context) (*LiquidityPool, error)
	// UpdatePool allows to commit multiple changes to the pool in a
	// transactional way.
	UpdatePool(
		ctx context.Context,
		updateFn func(p *LiquidityPool) (*LiquidityPool, error),
	) error
}
