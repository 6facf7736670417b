package inventory

// PartEntry is one counted part within a bin. Two entries refer to the
// same part only when their part numbers are byte-for-byte equal.
type PartEntry struct {
	PartNumber string
	Quantity   int
}

// Snapshot is an immutable copy of a session handed to a Flusher.
type Snapshot struct {
	BinID   string
	Entries []PartEntry
}

// TotalQuantity sums the quantities of every entry in the snapshot.
func (s Snapshot) TotalQuantity() int {
	total := 0
	for _, e := range s.Entries {
		total += e.Quantity
	}
	return total
}
