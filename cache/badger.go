package cache

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/go-crypt/x/blake2b"
)

const (
	// keyTextLimit bounds how much of the text participates in the key.
	keyTextLimit = 100

	entryKeyPrefix = "emb:"
)

// BadgerStore is a Store backed by a BadgerDB database.
type BadgerStore struct {
	db     *badger.DB
	expiry time.Duration
	now    func() time.Time
	logger *slog.Logger
}

var _ Store = (*BadgerStore)(nil)

// Option configures a BadgerStore.
type Option func(*BadgerStore)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *BadgerStore) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// WithClock overrides the time source used for stamping and expiring
// entries. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *BadgerStore) {
		if now != nil {
			s.now = now
		}
	}
}

// badgerLoggerAdapter adapts slog.Logger to the badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenStore opens (or creates) a disk-backed embedding cache at filePath.
// Entries older than expiry are treated as absent. With inMemory set, the
// store lives entirely in memory; filePath is ignored.
func OpenStore(filePath string, expiry time.Duration, inMemory bool, opts ...Option) (*BadgerStore, error) {
	var badgerOpts badger.Options

	if inMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		badgerOpts = badger.DefaultOptions(filePath)
	}

	s := &BadgerStore{
		expiry: expiry,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	badgerOpts.Logger = &badgerLoggerAdapter{logger: s.logger}
	badgerOpts.Compression = options.None

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, err
	}
	s.db = db

	return s, nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// entryKey derives the storage key from at most the first keyTextLimit
// characters of the text.
func entryKey(text string) []byte {
	prefix := text
	if len(prefix) > keyTextLimit {
		prefix = prefix[:keyTextLimit]
	}

	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(prefix))
	sum := h.Sum(nil)

	key := make([]byte, 0, len(entryKeyPrefix)+len(sum))
	key = append(key, entryKeyPrefix...)
	key = append(key, sum...)
	return key
}

// Get returns the cached vector for text. Expired and unreadable entries
// are purged and reported absent.
func (s *BadgerStore) Get(text string) ([]float32, bool) {
	key := entryKey(text)

	var data []byte
	err := s.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false
	}
	if err != nil {
		s.logger.Warn("cache read failed", "err", err)
		return nil, false
	}

	e, err := unmarshalEntry(data)
	if err != nil {
		// Corrupt entry: fail open, recompute.
		s.logger.Warn("dropping unreadable cache entry", "err", err)
		s.delete(key)
		return nil, false
	}

	if s.expired(e.storedAt) {
		s.delete(key)
		return nil, false
	}

	return e.vector, true
}

// Set stores the vector for text, stamped with the current time.
func (s *BadgerStore) Set(text string, vector []float32) error {
	value := marshalEntry(entry{
		storedAt: s.now().UnixMilli(),
		vector:   vector,
	})
	return s.db.Update(func(tx *badger.Txn) error {
		return tx.Set(entryKey(text), value)
	})
}

// Clear removes every cached embedding.
func (s *BadgerStore) Clear() error {
	return s.db.DropPrefix([]byte(entryKeyPrefix))
}

// CleanupExpired removes all expired entries and reports how many were
// dropped.
func (s *BadgerStore) CleanupExpired() (int, error) {
	var expired [][]byte

	err := s.db.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(entryKeyPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			var drop bool
			err := item.Value(func(val []byte) error {
				e, err := unmarshalEntry(val)
				if err != nil {
					drop = true // unreadable counts as expired
					return nil
				}
				drop = s.expired(e.storedAt)
				return nil
			})
			if err != nil {
				return err
			}
			if drop {
				expired = append(expired, item.KeyCopy(nil))
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, key := range expired {
		if err := s.db.Update(func(tx *badger.Txn) error {
			return tx.Delete(key)
		}); err != nil {
			return 0, err
		}
	}
	return len(expired), nil
}

func (s *BadgerStore) expired(storedAtMilli int64) bool {
	storedAt := time.UnixMilli(storedAtMilli)
	return s.now().Sub(storedAt) > s.expiry
}

func (s *BadgerStore) delete(key []byte) {
	err := s.db.Update(func(tx *badger.Txn) error {
		return tx.Delete(key)
	})
	if err != nil {
		s.logger.Warn("cache delete failed", "err", err)
	}
}
