package resulttable

import (
	"fmt"
	"math"
)

// tableErrorf wraps an underlying error with Table method context.
func tableErrorf(method, subKey, stateKey string, err error) error {
	return fmt.Errorf("Table.%s(%q,%q): %w", method, subKey, stateKey, err)
}

// Table is a dense (subformula key x state key) grid of satisfaction
// scores. The zero value is not usable; construct with NewTable.
type Table struct {
	rows, cols int
	data       []float64

	subIndex   map[string]int
	subOrder   []string
	stateIndex map[string]int
	stateOrder []string
}

// NewTable allocates a Table with one row per entry of subKeys and one
// column per entry of stateKeys, every cell initialised unset. Returns
// ErrEmptySubformulae/ErrEmptyStates for an empty key list, ErrDuplicateKey
// if either list repeats a key.
func NewTable(subKeys, stateKeys []string) (*Table, error) {
	if len(subKeys) == 0 {
		return nil, ErrEmptySubformulae
	}
	if len(stateKeys) == 0 {
		return nil, ErrEmptyStates
	}

	subIndex, err := indexOf(subKeys)
	if err != nil {
		return nil, err
	}
	stateIndex, err := indexOf(stateKeys)
	if err != nil {
		return nil, err
	}

	data := make([]float64, len(subKeys)*len(stateKeys))
	for i := range data {
		data[i] = math.NaN()
	}

	return &Table{
		rows:       len(subKeys),
		cols:       len(stateKeys),
		data:       data,
		subIndex:   subIndex,
		subOrder:   append([]string(nil), subKeys...),
		stateIndex: stateIndex,
		stateOrder: append([]string(nil), stateKeys...),
	}, nil
}

func indexOf(keys []string) (map[string]int, error) {
	idx := make(map[string]int, len(keys))
	for i, k := range keys {
		if _, dup := idx[k]; dup {
			return nil, ErrDuplicateKey
		}
		idx[k] = i
	}

	return idx, nil
}

// SubKeys returns the subformula keys in table row order.
func (t *Table) SubKeys() []string { return append([]string(nil), t.subOrder...) }

// StateKeys returns the state keys in table column order.
func (t *Table) StateKeys() []string { return append([]string(nil), t.stateOrder...) }

func (t *Table) cell(subKey, stateKey string) (int, error) {
	r, ok := t.subIndex[subKey]
	if !ok {
		return 0, ErrUnknownSubformula
	}
	c, ok := t.stateIndex[stateKey]
	if !ok {
		return 0, ErrUnknownState
	}

	return r*t.cols + c, nil
}

// Set writes v into the cell for (subKey, stateKey).
func (t *Table) Set(subKey, stateKey string, v float64) error {
	i, err := t.cell(subKey, stateKey)
	if err != nil {
		return tableErrorf("Set", subKey, stateKey, err)
	}
	t.data[i] = v

	return nil
}

// Get reads the cell for (subKey, stateKey). ok is false when the cell has
// never been Set (still holds its initial NaN sentinel).
func (t *Table) Get(subKey, stateKey string) (value float64, ok bool, err error) {
	i, err := t.cell(subKey, stateKey)
	if err != nil {
		return 0, false, tableErrorf("Get", subKey, stateKey, err)
	}
	v := t.data[i]

	return v, !math.IsNaN(v), nil
}

// Row returns the scores for subKey across every state, in StateKeys
// order. An unset cell reports as math.NaN(); callers wanting an "is it
// set" view per cell should use Get.
func (t *Table) Row(subKey string) ([]float64, error) {
	r, ok := t.subIndex[subKey]
	if !ok {
		return nil, tableErrorf("Row", subKey, "", ErrUnknownSubformula)
	}
	out := make([]float64, t.cols)
	copy(out, t.data[r*t.cols:(r+1)*t.cols])

	return out, nil
}

// Snapshot materialises the whole table as a nested map, keyed by
// subformula then state, for golden-value diffing in tests.
func (t *Table) Snapshot() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, t.rows)
	for _, sub := range t.subOrder {
		row := make(map[string]float64, t.cols)
		for _, state := range t.stateOrder {
			v, ok, _ := t.Get(sub, state)
			if ok {
				row[state] = v
			}
		}
		out[sub] = row
	}

	return out
}
