// Package store owns the authoritative in-memory birthday collection and
// its synchronous persistence. Every mutator ends with an explicit persist
// call; a failed write is logged and never rolls back the in-memory state.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/dmathew/go-giftsmart/internal/config"
	"github.com/dmathew/go-giftsmart/internal/recur"
)

// Store is the single source of truth for birthday entries. It is safe for
// concurrent use: mutations come from one logical writer, while the feed
// server and reminder scheduler read from their own goroutines.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	storage Storage

	// OnChange, when set, is invoked after every persisted mutation.
	// The feed publisher hangs off this hook.
	OnChange func()
}

// New constructs a Store over the given backend and loads the persisted
// collection. A missing or undecodable blob is not an error: the store
// starts empty and logs the condition.
func New(storage Storage) *Store {
	s := &Store{storage: storage}

	data, err := storage.Load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Info(config.MsgStoreEmpty, config.LogKeyComponent, config.CompStore)
	case err != nil:
		slog.Warn(config.MsgStoreCorrupt,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyError, err,
		)
	default:
		var entries []Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			slog.Warn(config.MsgStoreCorrupt,
				config.LogKeyComponent, config.CompStore,
				config.LogKeyError, err,
			)
		} else {
			s.entries = entries
			slog.Info(config.MsgStoreLoaded,
				config.LogKeyComponent, config.CompStore,
				config.LogKeyCount, len(entries),
			)
		}
	}

	return s
}

// Add appends an entry to the collection and persists. Duplicate names and
// dates are allowed; only the id is unique.
func (s *Store) Add(e Entry) {
	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.persistLocked()
	s.mu.Unlock()

	slog.Info(config.MsgEntryAdded,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyID, e.ID,
		config.LogKeyName, e.Name,
	)
	s.notify()
}

// Delete removes every entry whose id appears in ids, persisting once for
// the whole batch. Ids with no matching entry are ignored.
func (s *Store) Delete(ids map[string]struct{}) {
	if len(ids) == 0 {
		return
	}

	s.mu.Lock()
	kept := s.entries[:0]
	removed := 0
	for _, e := range s.entries {
		if _, drop := ids[e.ID]; drop {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	if removed > 0 {
		s.persistLocked()
	}
	s.mu.Unlock()

	if removed == 0 {
		return
	}
	slog.Info(config.MsgEntriesDeleted,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyCount, removed,
	)
	s.notify()
}

// ToggleCloseFriend flips the close-friend flag on the entry with the given
// id and persists. It reports whether the id was found.
func (s *Store) ToggleCloseFriend(id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].CloseFriend = !s.entries[i].CloseFriend
			found = true
			break
		}
	}
	if found {
		s.persistLocked()
	}
	s.mu.Unlock()

	if !found {
		return false
	}
	slog.Info(config.MsgEntryToggled,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyID, id,
	)
	s.notify()
	return true
}

// Update replaces the stored entry that shares e's id and persists.
// It reports whether the id was found. The id itself is immutable.
func (s *Store) Update(e Entry) bool {
	s.mu.Lock()
	found := false
	for i := range s.entries {
		if s.entries[i].ID == e.ID {
			s.entries[i] = e
			found = true
			break
		}
	}
	if found {
		s.persistLocked()
	}
	s.mu.Unlock()

	if !found {
		return false
	}
	slog.Info(config.MsgEntryUpdated,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyID, e.ID,
	)
	s.notify()
	return true
}

// Entries returns a snapshot copy of the collection in storage order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Entry(nil), s.entries...)
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sectioned buckets the collection by proximity of the next occurrence
// relative to now. The four sections are always returned in fixed order,
// empty or not; within a section entries sort ascending by day count with
// a stable tie order.
func (s *Store) Sectioned(now time.Time) []Section {
	entries := s.Entries()

	type ranked struct {
		entry Entry
		days  int
	}

	buckets := make([][]ranked, config.SectionCount)
	for _, e := range entries {
		days := recur.DaysUntil(e.Date, now)
		idx := bucketIndex(days)
		buckets[idx] = append(buckets[idx], ranked{entry: e, days: days})
	}

	titles := []string{
		config.SectionToday,
		config.SectionThisWeek,
		config.SectionThisMonth,
		config.SectionUpcoming,
	}

	sections := make([]Section, 0, config.SectionCount)
	for i, title := range titles {
		b := buckets[i]
		sort.SliceStable(b, func(x, y int) bool { return b[x].days < b[y].days })

		sec := Section{Title: title, Entries: make([]Entry, 0, len(b))}
		for _, r := range b {
			sec.Entries = append(sec.Entries, r.entry)
		}
		sections = append(sections, sec)
	}
	return sections
}

func bucketIndex(days int) int {
	switch {
	case days == 0:
		return 0
	case days <= config.WeekCutoffDays:
		return 1
	case days <= config.MonthCutoffDays:
		return 2
	default:
		return 3
	}
}

// persistLocked encodes and writes the collection. Callers hold the lock.
// A write failure is surfaced to the log only: the in-memory state remains
// authoritative for the process lifetime.
func (s *Store) persistLocked() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		slog.Error(config.ErrStoreEncode,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyError, err,
		)
		return
	}
	if err := s.storage.Save(data); err != nil {
		slog.Warn(config.MsgStoreSaveFail,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyError, err,
		)
	}
}

func (s *Store) notify() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
