package calculator

// HistoryEntry is one successful evaluation, formatted "<expression> = <result>".
type HistoryEntry string

func newEntry(expression, result string) HistoryEntry {
	return HistoryEntry(expression + " = " + result)
}

// History is an append-only log of evaluations.
type History struct {
	entries []HistoryEntry
}

func (h *History) append(e HistoryEntry) {
	h.entries = append(h.entries, e)
}

// Len returns the number of entries recorded so far.
func (h *History) Len() int {
	return len(h.entries)
}

// Since returns a copy of the entries from index n on. It is how renderers
// pick up rows they have not shown yet.
func (h *History) Since(n int) []HistoryEntry {
	if n < 0 {
		n = 0
	}
	if n >= len(h.entries) {
		return nil
	}
	out := make([]HistoryEntry, len(h.entries)-n)
	copy(out, h.entries[n:])
	return out
}

// Entries returns a copy of the whole log.
func (h *History) Entries() []HistoryEntry {
	return h.Since(0)
}
