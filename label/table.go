package label

import "errors"

// ErrUnknownLabel indicates a lookup for a label never registered in the table.
var ErrUnknownLabel = errors.New("label: unknown label")

// ErrUnknownIndex indicates a lookup for an index outside [1, Len()].
var ErrUnknownIndex = errors.New("label: index out of range")

// Table assigns stable integer indices 1..L to leaf labels in first-appearance
// order. Index 0 is never assigned; it is reserved so zero-value Index fields
// read unambiguously as "unset".
type Table struct {
	byLabel map[string]int
	byIndex []string // byIndex[i-1] == label of index i
}

// NewTable returns an empty label table.
func NewTable() *Table {
	return &Table{byLabel: make(map[string]int)}
}

// Intern returns the index for lbl, assigning the next free index on first
// sight. Complexity: O(1) amortized.
func (t *Table) Intern(lbl string) int {
	if idx, ok := t.byLabel[lbl]; ok {
		return idx
	}
	t.byIndex = append(t.byIndex, lbl)
	idx := len(t.byIndex)
	t.byLabel[lbl] = idx
	return idx
}

// Index returns the index assigned to lbl, or ErrUnknownLabel if lbl was
// never interned.
func (t *Table) Index(lbl string) (int, error) {
	idx, ok := t.byLabel[lbl]
	if !ok {
		return 0, ErrUnknownLabel
	}
	return idx, nil
}

// Label returns the label assigned to idx, or ErrUnknownIndex if idx is out
// of range.
func (t *Table) Label(idx int) (string, error) {
	if idx < 1 || idx > len(t.byIndex) {
		return "", ErrUnknownIndex
	}
	return t.byIndex[idx-1], nil
}

// Len returns the number of distinct labels interned so far (L).
func (t *Table) Len() int {
	return len(t.byIndex)
}

// Labels returns all labels in index order (index 1 first).
func (t *Table) Labels() []string {
	out := make([]string, len(t.byIndex))
	copy(out, t.byIndex)
	return out
}
