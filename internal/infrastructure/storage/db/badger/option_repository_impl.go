package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/odex-network/odex-daemon/internal/core/domain"
)

// optionCounter keeps the next id to assign, so that option ids are
// monotonic starting from 0.
type optionCounter struct {
	Next uint64
}

const optionCounterKey = "option_counter"

type optionRepositoryImpl struct {
	db *DbManager
}

// NewOptionRepositoryImpl returns a badger implementation of the
// OptionRepository interface.
func NewOptionRepositoryImpl(db *DbManager) domain.OptionRepository {
	return optionRepositoryImpl{db: db}
}

func (r optionRepositoryImpl) AddOption(
	ctx context.Context, option *domain.Option,
) (uint64, error) {
	var id uint64
	err := r.db.Store.Badger().Update(func(tx *badger.Txn) error {
		var counter optionCounter
		if err := r.db.Store.TxGet(tx, optionCounterKey, &counter); err != nil {
			if err != badgerhold.ErrNotFound {
				return err
			}
			counter = optionCounter{}
		}
		id = counter.Next

		option.Id = id
		if err := r.db.Store.TxInsert(tx, id, *option); err != nil {
			return err
		}

		counter.Next++
		return r.db.Store.TxUpsert(tx, optionCounterKey, counter)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r optionRepositoryImpl) GetOption(
	ctx context.Context, id uint64,
) (*domain.Option, error) {
	var option domain.Option
	if err := r.db.Store.Get(id, &option); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrOptionNotFound
		}
		return nil, err
	}
	return &option, nil
}

func (r optionRepositoryImpl) GetAllOptions(
	ctx context.Context,
) ([]domain.Option, error) {
	var options []domain.Option
	query := badgerhold.Where("Id").Ge(uint64(0)).SortBy("Id")
	if err := r.db.Store.Find(&options, query); err != nil {
		return nil, err
	}
	return options, nil
}

func (r optionRepositoryImpl) UpdateOption(
	ctx context.Context, id uint64,
	updateFn func(o *domain.Option) (*domain.Option, error),
) error {
	currentOption, err := r.GetOption(ctx, id)
	if err != nil {
		return err
	}

	updatedOption, err := updateFn(currentOption)
	if err != nil {
		return err
	}

	return r.db.Store.Update(id, *updatedOption)
}
