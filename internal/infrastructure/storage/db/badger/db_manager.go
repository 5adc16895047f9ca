package dbbadger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"
)

// DbManager holds all the badgerhold stores in a single data structure.
type DbManager struct {
	Store      *badgerhold.Store
	EventStore *badgerhold.Store
}

// NewDbManager opens (or creates if not exists) the badger stores on disk,
// one for the engine state and one for the event log. An empty base dir
// opens the stores in memory, used by tests.
func NewDbManager(baseDbDir string, logger badger.Logger) (*DbManager, error) {
	var engineDir, eventDir string
	if baseDbDir != "" {
		engineDir = baseDbDir + "/engine"
		eventDir = baseDbDir + "/events"
	}

	engineDb, err := createDb(engineDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening engine db: %w", err)
	}

	eventDb, err := createDb(eventDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening events db: %w", err)
	}

	return &DbManager{
		Store:      engineDb,
		EventStore: eventDb,
	}, nil
}

// Close gracefully closes the underlying stores.
func (d *DbManager) Close() error {
	if err := d.Store.Close(); err != nil {
		return err
	}
	return d.EventStore.Close()
}

// JSONEncode is a custom JSON based encoder for badger
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)

	err := en.Encode(value)
	if err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger
func JSONDecode(data []byte, value interface{}) error {
	var buff bytes.Buffer
	de := json.NewDecoder(&buff)

	_, err := buff.Write(data)
	if err != nil {
		return err
	}

	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (db *badgerhold.Store, err error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger
	opts.InMemory = isInMemory

	db, err = badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})

	return
}
