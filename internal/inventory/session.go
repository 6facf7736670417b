package inventory

import "errors"

var ErrNegativeQuantity = errors.New("quantity must not be negative")

// Flusher persists a bin snapshot. Implementations must treat a blank
// BinID as nothing to write.
type Flusher interface {
	Flush(snapshot Snapshot) error
}

// Session holds the active bin and its parts in first-seen order.
// It is not safe for concurrent use; all mutation happens on the UI
// event goroutine.
type Session struct {
	flusher Flusher
	binID   string
	entries []PartEntry
	index   map[string]int
}

func NewSession(flusher Flusher) *Session {
	return &Session{
		flusher: flusher,
		index:   make(map[string]int),
	}
}

// Start flushes the active bin, if any, and replaces it with an empty
// bin named binID. A blank binID is ignored. When the flush fails the
// previous bin stays active and the error is returned.
func (s *Session) Start(binID string) error {
	if binID == "" {
		return nil
	}

	if s.Active() {
		if err := s.Save(); err != nil {
			return err
		}
	}

	s.binID = binID
	s.entries = nil
	s.index = make(map[string]int)
	return nil
}

// Save flushes the active bin. Without an active bin it does nothing.
func (s *Session) Save() error {
	if !s.Active() || s.flusher == nil {
		return nil
	}
	return s.flusher.Flush(s.Snapshot())
}

// Record applies scan semantics: a new part starts at 1, a known part is
// incremented. The bool reports whether the session changed.
func (s *Session) Record(partNumber string) (PartEntry, bool) {
	if partNumber == "" || !s.Active() {
		return PartEntry{}, false
	}

	if i, ok := s.index[partNumber]; ok {
		s.entries[i].Quantity++
		return s.entries[i], true
	}
	return s.add(partNumber, 1), true
}

// RecordQuantity applies manual semantics: the quantity is set to exactly
// qty whether or not the part was already counted.
func (s *Session) RecordQuantity(partNumber string, qty int) (PartEntry, bool, error) {
	if partNumber == "" || !s.Active() {
		return PartEntry{}, false, nil
	}
	if qty < 0 {
		return PartEntry{}, false, ErrNegativeQuantity
	}

	if i, ok := s.index[partNumber]; ok {
		s.entries[i].Quantity = qty
		return s.entries[i], true, nil
	}
	return s.add(partNumber, qty), true, nil
}

func (s *Session) add(partNumber string, qty int) PartEntry {
	entry := PartEntry{PartNumber: partNumber, Quantity: qty}
	s.index[partNumber] = len(s.entries)
	s.entries = append(s.entries, entry)
	return entry
}

func (s *Session) Active() bool {
	return s.binID != ""
}

func (s *Session) BinID() string {
	return s.binID
}

func (s *Session) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in first-seen order.
func (s *Session) Entries() []PartEntry {
	out := make([]PartEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		BinID:   s.binID,
		Entries: s.Entries(),
	}
}

func (s *Session) TotalQuantity() int {
	return Snapshot{Entries: s.entries}.TotalQuantity()
}
