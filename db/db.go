package db

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"texttosql/models"
)

const queryRecordPrefix = "query:"

// HistoryStore persists one record per /query round trip in badger.
type HistoryStore struct {
	badgerDB *badger.DB
}

func New(dbPath string) (*HistoryStore, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Disable badger logging for cleaner output

	badgerDB, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	return &HistoryStore{badgerDB: badgerDB}, nil
}

// NewInMemory opens a badger instance backed by memory only. Used in tests.
func NewInMemory() (*HistoryStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	badgerDB, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory history database: %w", err)
	}

	return &HistoryStore{badgerDB: badgerDB}, nil
}

func (s *HistoryStore) Close() error {
	return s.badgerDB.Close()
}

func (s *HistoryStore) StoreQueryRecord(record *models.QueryRecord) error {
	return s.badgerDB.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%s:%s", queryRecordPrefix, record.Timestamp, record.ID))

		data, err := json.Marshal(record)
		if err != nil {
			return err
		}

		return txn.Set(key, data)
	})
}

// ListQueryRecords returns stored records, newest first.
func (s *HistoryStore) ListQueryRecords() ([]models.QueryRecord, error) {
	var records []models.QueryRecord

	err := s.badgerDB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(queryRecordPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var record models.QueryRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})

	return records, nil
}

func (s *HistoryStore) ClearQueryRecords() error {
	return s.badgerDB.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(queryRecordPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)

		var keys [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}
