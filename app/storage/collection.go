package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// lastUpdatedLayout matches the timestamp form used inside the records.
const lastUpdatedLayout = "2006-01-02T15:04:05.000Z"

// Record is a stored entity with a numeric id.
type Record interface {
	RecordID() int
}

// Metadata is derived bookkeeping persisted alongside the records. It is
// recomputed from the record slice on every save and never trusted as
// independent state, so it is always consistent with the records at rest.
type Metadata struct {
	LastID      int    `json:"lastId"`
	TotalCount  int    `json:"totalCount"`
	LastUpdated string `json:"lastUpdated"`
}

// Collection is a JSON-file-backed set of records of one kind. The
// on-disk envelope holds the record array under the collection's key plus
// metadata. Every write rewrites the whole file through the write lock
// and the atomic writer, which keeps writes correct for small collections
// at O(n) cost per write.
type Collection[T Record] struct {
	store *Store
	locks *LockTable
	file  string // backing file, e.g. "posts.json"
	key   string // envelope key holding the record array, e.g. "posts"
}

// NewCollection creates a collection backed by the named file inside
// store's data directory.
func NewCollection[T Record](store *Store, locks *LockTable, file, key string) *Collection[T] {
	return &Collection[T]{store: store, locks: locks, file: file, key: key}
}

// File returns the name of the backing file.
func (c *Collection[T]) File() string { return c.file }

// LoadAll returns every record in the collection. A missing file is
// self-healing: the collection is initialized with an empty envelope. A
// file that exists but does not parse surfaces as ErrCorrupted rather
// than an empty collection, so corruption never silently discards data.
func (c *Collection[T]) LoadAll() ([]T, error) {
	data, err := c.store.Read(c.file)
	if errors.Is(err, ErrNotFound) {
		if err := c.SaveAll(nil); err != nil {
			return nil, err
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	return c.decode(data)
}

// SaveAll rewrites the whole collection, with freshly computed metadata,
// under the file's write lock.
func (c *Collection[T]) SaveAll(records []T) error {
	data, err := c.encode(records)
	if err != nil {
		return err
	}
	return c.locks.WithLock(c.file, func() error {
		return c.store.Write(c.file, data)
	})
}

// Update loads the collection, applies fn, and saves the result, all
// while holding the file's write lock. Concurrent updates to the same
// file therefore never observe a stale snapshot and never overwrite each
// other's mutations. If fn returns an error the file is left untouched.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	return c.locks.WithLock(c.file, func() error {
		records, err := c.loadLocked()
		if err != nil {
			return err
		}
		records, err = fn(records)
		if err != nil {
			return err
		}
		data, err := c.encode(records)
		if err != nil {
			return err
		}
		return c.store.Write(c.file, data)
	})
}

func (c *Collection[T]) loadLocked() ([]T, error) {
	data, err := c.store.Read(c.file)
	if errors.Is(err, ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	return c.decode(data)
}

func (c *Collection[T]) encode(records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	doc := map[string]any{
		c.key: records,
		"metadata": Metadata{
			LastID:      maxID(records),
			TotalCount:  len(records),
			LastUpdated: time.Now().UTC().Format(lastUpdatedLayout),
		},
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.file, err)
	}
	return data, nil
}

func (c *Collection[T]) decode(data []byte) ([]T, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", c.file, err, ErrCorrupted)
	}
	raw, ok := doc[c.key]
	if !ok {
		return nil, fmt.Errorf("%s: missing %q array: %w", c.file, c.key, ErrCorrupted)
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", c.file, err, ErrCorrupted)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// NextID returns the id for a record appended to records: one past the
// highest existing id. Ids freed by deletion are never reused. It must be
// computed from a freshly loaded slice, not a separately stored counter.
func NextID[T Record](records []T) int {
	return maxID(records) + 1
}

func maxID[T Record](records []T) int {
	max := 0
	for _, r := range records {
		if id := r.RecordID(); id > max {
			max = id
		}
	}
	return max
}
