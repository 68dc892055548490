package format

import (
	"fmt"

	"github.com/theory/datetime/datetime/chrono"
	"github.com/theory/datetime/datetime/field"
)

// FieldValues accumulates raw field values during a parse, before
// resolution. Keys are unique: inserting a field that is already present
// with a different value is a conflict, never a silent overwrite.
//
// The insertion log lets optional sections roll back fields added by a
// failed attempt; see Snapshot and RestoreTo.
type FieldValues struct {
	values map[field.Field]int64
	log    []field.Field
	chrono chrono.Chronology
}

// NewFieldValues returns an empty accumulator.
func NewFieldValues() *FieldValues {
	return &FieldValues{values: map[field.Field]int64{}}
}

// Put inserts f with value v. Inserting the same value again is a no-op;
// inserting a different value fails with ErrParse.
func (fv *FieldValues) Put(f field.Field, v int64) error {
	if prev, ok := fv.values[f]; ok {
		if prev == v {
			return nil
		}
		return fmt.Errorf(
			"%w: %v already parsed as %d, conflicts with %d", ErrParse, f, prev, v,
		)
	}
	fv.values[f] = v
	fv.log = append(fv.log, f)
	return nil
}

// Get returns the accumulated value of f.
func (fv *FieldValues) Get(f field.Field) (int64, bool) {
	v, ok := fv.values[f]
	return v, ok
}

// Has returns true when every field in fs has been accumulated.
func (fv *FieldValues) Has(fs ...field.Field) bool {
	for _, f := range fs {
		if _, ok := fv.values[f]; !ok {
			return false
		}
	}
	return true
}

// Len returns the number of accumulated fields.
func (fv *FieldValues) Len() int { return len(fv.values) }

// Fields returns the accumulated fields in insertion order.
func (fv *FieldValues) Fields() []field.Field {
	fs := make([]field.Field, len(fv.log))
	copy(fs, fv.log)
	return fs
}

// SetChronology records the chronology in effect for resolution.
func (fv *FieldValues) SetChronology(c chrono.Chronology) { fv.chrono = c }

// Chronology returns the recorded chronology, or nil.
func (fv *FieldValues) Chronology() chrono.Chronology { return fv.chrono }

// Snapshot marks the current state for a later RestoreTo. The mark is the
// insertion log position, so nested optional sections can each hold their
// own.
func (fv *FieldValues) Snapshot() int { return len(fv.log) }

// RestoreTo drops every field inserted after the mark, rolling back a
// failed optional attempt.
func (fv *FieldValues) RestoreTo(mark int) {
	for _, f := range fv.log[mark:] {
		delete(fv.values, f)
	}
	fv.log = fv.log[:mark]
}

// remove drops f during resolution, after it has been consumed or checked.
func (fv *FieldValues) remove(f field.Field) { delete(fv.values, f) }
