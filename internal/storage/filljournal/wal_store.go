// Package filljournal persists simulated fills in a write-ahead log so a
// rehearsal can be reviewed after the process exits.
package filljournal

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/gowal"

	"github.com/vadiminshakov/trex/internal/domain"
)

const (
	DefaultDir   = "./wal/fills"
	segmentLimit = 100
	maxSegments  = 10

	fillKeyPrefix = "fill_"
)

// Record is a journaled fill with its WAL index.
type Record struct {
	Index uint64
	Order domain.Order
}

// WALStore appends simulated fills to a WAL.
type WALStore struct {
	wal *gowal.Wal
	mu  sync.RWMutex
}

// NewWALStore opens or creates the journal in dir.
func NewWALStore(dir string) (*WALStore, error) {
	if dir == "" {
		dir = DefaultDir
	}

	cfg := gowal.Config{
		Dir:              dir,
		Prefix:           "fill_",
		SegmentThreshold: segmentLimit,
		MaxSegments:      maxSegments,
		IsInSyncDiskMode: true,
	}

	wal, err := gowal.NewWAL(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "init fill WAL")
	}

	return &WALStore{wal: wal}, nil
}

// Record writes a filled order.
func (s *WALStore) Record(order domain.Order) error {
	if s == nil || s.wal == nil {
		return errors.New("fill journal is not initialized")
	}
	if order.OrderUUID == "" {
		return errors.New("fill order id is required")
	}

	payload, err := json.Marshal(order)
	if err != nil {
		return errors.Wrap(err, "marshal fill")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nextIndex := s.wal.CurrentIndex() + 1
	return s.wal.Write(nextIndex, fillKeyPrefix+order.Exchange, payload)
}

// Fills returns journaled fills for market in write order, or all of them if market is empty.
func (s *WALStore) Fills(market string) ([]Record, error) {
	if s == nil || s.wal == nil {
		return nil, errors.New("fill journal is not initialized")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.wal.CurrentIndex()
	records := make([]Record, 0, current)
	for idx := uint64(1); idx <= current; idx++ {
		key, payload, err := s.wal.Get(idx)
		if err != nil {
			// rotated out
			continue
		}
		if !strings.HasPrefix(key, fillKeyPrefix) {
			continue
		}
		if market != "" && strings.TrimPrefix(key, fillKeyPrefix) != market {
			continue
		}

		var order domain.Order
		if err := json.Unmarshal(payload, &order); err != nil {
			return nil, errors.Wrapf(err, "decode fill at index %d", idx)
		}
		records = append(records, Record{Index: idx, Order: order})
	}

	return records, nil
}

// CurrentIndex returns the latest WAL index stored.
func (s *WALStore) CurrentIndex() uint64 {
	if s == nil || s.wal == nil {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.wal.CurrentIndex()
}

// Close closes the underlying WAL.
func (s *WALStore) Close() error {
	if s == nil || s.wal == nil {
		return errors.New("fill journal is not initialized")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wal.Close()
}
