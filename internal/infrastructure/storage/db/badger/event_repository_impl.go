package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/odex-network/odex-daemon/internal/core/domain"
)

type eventCounter struct {
	Next uint64
}

const eventCounterKey = "event_counter"

type eventRepositoryImpl struct {
	db *DbManager
}

// NewEventRepositoryImpl returns a badger implementation of the
// append-only EventRepository interface.
func NewEventRepositoryImpl(db *DbManager) domain.EventRepository {
	return eventRepositoryImpl{db: db}
}

func (r eventRepositoryImpl) AddEvent(
	ctx context.Context, event domain.Event,
) (domain.Event, error) {
	err := r.db.EventStore.Badger().Update(func(tx *badger.Txn) error {
		var counter eventCounter
		if err := r.db.EventStore.TxGet(tx, eventCounterKey, &counter); err != nil {
			if err != badgerhold.ErrNotFound {
				return err
			}
			counter = eventCounter{}
		}
		event.Seq = counter.Next

		if err := r.db.EventStore.TxInsert(tx, event.Seq, event); err != nil {
			return err
		}

		counter.Next++
		return r.db.EventStore.TxUpsert(tx, eventCounterKey, counter)
	})
	if err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

func (r eventRepositoryImpl) GetAllEvents(
	ctx context.Context,
) ([]domain.Event, error) {
	var events []domain.Event
	query := badgerhold.Where("Seq").Ge(uint64(0)).SortBy("Seq")
	if err := r.db.EventStore.Find(&events, query); err != nil {
		return nil, err
	}
	return events, nil
}

func (r eventRepositoryImpl) GetEventsForOption(
	ctx context.Context, optionId uint64,
) ([]domain.Event, error) {
	var events []domain.Event
	query := badgerhold.Where("OptionId").Eq(optionId).SortBy("Seq")
	if err := r.db.EventStore.Find(&events, query); err != nil {
		return nil, err
	}
	return events, nil
}
