package domain

import "context"

// OptionRepository is the abstraction for any kind of database intended to
// persist Options.
type OptionRepository interface {
	// AddOption persists a new option, assigning it the next monotonic id.
	AddOption(ctx context.Context, option *Option) (uint64, error)
	// GetOption returns the option with the given id, or ErrOptionNotFound.
	GetOption(ctx context.Context, id uint64) (*Option, error)
	// GetAllOptions returns all the options stored in the repository,
	// ordered by id.
	GetAllOptions(ctx context.Context) ([]Option, error)
	// UpdateOption allows to commit multiple changes to the same option in
	// a transactional way.
	UpdateOption(
		ctx context.Context, id uint64,
		updateFn func(o *Option) (*Option, error),
	) error
}
