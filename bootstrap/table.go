package bootstrap

import "gonum.org/v1/gonum/mat"

// Table is a labeled column set: a dense observation matrix whose
// columns carry names.  Rows are observations, columns are features.
// A Table is immutable after construction: both the labels and the
// matrix are copied in, so later mutation of the caller's arguments
// cannot change the table's contents.
type Table struct {
	labels []string
	data   *mat.Dense
}

// NewTable copies data in with one label per column.
//
// Errors:
//   - ErrNilInput      — data is nil.
//   - ErrLabelMismatch — len(labels) != column count of data.
func NewTable(labels []string, data *mat.Dense) (*Table, error) {
	if data == nil {
		return nil, ErrNilInput
	}
	_, k := data.Dims()
	if len(labels) != k {
		return nil, ErrLabelMismatch
	}

	cp := make([]string, k)
	copy(cp, labels)

	return &Table{labels: cp, data: mat.DenseCopyOf(data)}, nil
}

// Labels returns a copy of the column labels in column order.
func (t *Table) Labels() []string {
	cp := make([]string, len(t.labels))
	copy(cp, t.labels)

	return cp
}

// Data exposes the underlying observation matrix read-only.
func (t *Table) Data() mat.Matrix { return t.data }

// SETable computes one bootstrapped standard error per column of t and
// returns them as a Series whose labels exactly match t's column labels,
// in the same order.  Semantics are those of SEColumns.
//
// Errors: ErrNilInput, plus everything SEColumns returns.
func SETable(t *Table, wts []float64, opts *Options) (*Series, error) {
	if t == nil {
		return nil, ErrNilInput
	}

	ses, err := SEColumns(t.data, wts, opts)
	if err != nil {
		return nil, err
	}

	return &Series{labels: t.Labels(), values: ses}, nil
}

// Series is an ordered, labeled sequence of float64 results.
type Series struct {
	labels []string
	values []float64
}

// Len returns the number of entries.
func (s *Series) Len() int { return len(s.values) }

// Label returns the label at position i.
func (s *Series) Label(i int) string { return s.labels[i] }

// Value returns the value at position i.
func (s *Series) Value(i int) float64 { return s.values[i] }

// At returns the value for the given label; ok reports whether the
// label exists.  Lookup is linear: a Series is small (one entry per
// feature column), so an index map would cost more than it saves.
func (s *Series) At(label string) (v float64, ok bool) {
	for i, l := range s.labels {
		if l == label {
			return s.values[i], true
		}
	}

	return 0, false
}

// Labels returns a copy of the labels in order.
func (s *Series) Labels() []string {
	cp := make([]string, len(s.labels))
	copy(cp, s.labels)

	return cp
}

// Values returns a copy of the values in label order.
func (s *Series) Values() []float64 {
	cp := make([]float64, len(s.values))
	copy(cp, s.values)

	return cp
}
