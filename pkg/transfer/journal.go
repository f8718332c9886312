package transfer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger"
	"github.com/goph/emperror"
	"github.com/op/go-logging"
)

// Entry records one attempted transfer, successful or not.
type Entry struct {
	Source      string            `json:"source"`
	Destination string            `json:"destination"`
	Files       int               `json:"files"`
	Size        int64             `json:"size"`
	Checksum    map[string]string `json:"checksum,omitempty"`
	Start       time.Time         `json:"start"`
	End         time.Time         `json:"end"`
	Status      string            `json:"status"`
	Message     string            `json:"message,omitempty"`
}

// Journal keeps the local transfer history in a badger database.
type Journal struct {
	db     *badger.DB
	logger *logging.Logger
}

func OpenJournal(dir string, logger *logging.Logger) (*Journal, error) {
	bconfig := badger.DefaultOptions(dir)
	bconfig.Logger = logger // use our logger...
	db, err := badger.Open(bconfig)
	if err != nil {
		return nil, emperror.Wrapf(err, "cannot open badger database in %s", dir)
	}
	return &Journal{db: db, logger: logger}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Add stores entry keyed by its start timestamp.
func (j *Journal) Add(entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return emperror.Wrapf(err, "cannot marshal journal entry for %s", entry.Source)
	}
	key := []byte(fmt.Sprintf("transfer:%020d", entry.Start.UnixNano()))
	if err := j.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	}); err != nil {
		return emperror.Wrapf(err, "cannot store journal entry for %s", entry.Source)
	}
	return nil
}

// List returns all entries in chronological order.
func (j *Journal) List() ([]*Entry, error) {
	var entries []*Entry
	if err := j.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte("transfer:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			data, err := it.Item().ValueCopy(nil)
			if err != nil {
				return emperror.Wrapf(err, "cannot read journal entry %s", it.Item().Key())
			}
			entry := &Entry{}
			if err := json.Unmarshal(data, entry); err != nil {
				return emperror.Wrapf(err, "cannot unmarshal journal entry %s", it.Item().Key())
			}
			entries = append(entries, entry)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return entries, nil
}
