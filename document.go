package labsync

import (
	"fmt"
	"time"
)

// RawRow is one spreadsheet row as delivered by a Source: a mapping from
// header-row column name to raw cell text. Missing cells read as "".
type RawRow map[string]string

// Get returns the raw cell value for a column, or "" if the column is not
// present in the row.
func (r RawRow) Get(col string) string {
	return r[col]
}

// Document is one normalized record destined for the store. Fields a sheet
// kind does not declare are genuinely absent, not present with a nil value;
// the store must be able to tell the two apart.
type Document struct {
	fields map[string]interface{}
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{fields: make(map[string]interface{})}
}

// SetString sets a string field.
func (d *Document) SetString(field, value string) {
	d.set(field, value)
}

// SetYear sets an integer year field.
func (d *Document) SetYear(field string, year int) {
	d.set(field, year)
}

// SetDate sets a calendar-date field.
func (d *Document) SetDate(field string, t time.Time) {
	d.set(field, DateOf(t))
}

// SetDateOrYear sets the polymorphic date field. Absent values leave the
// field out of the document entirely.
func (d *Document) SetDateOrYear(field string, v DateOrYear) {
	if v.IsAbsent() {
		return
	}
	d.set(field, v)
}

func (d *Document) set(field string, value interface{}) {
	if d.fields == nil {
		d.fields = make(map[string]interface{})
	}
	d.fields[field] = value
}

// Has reports whether the document carries the field.
func (d *Document) Has(field string) bool {
	_, ok := d.fields[field]
	return ok
}

// Get returns a field value and whether it is present. Date fields come back
// as DateOrYear.
func (d *Document) Get(field string) (interface{}, bool) {
	v, ok := d.fields[field]
	return v, ok
}

// GetString returns a field as a string, or defaultValue when the field is
// absent or not a string.
func (d *Document) GetString(field, defaultValue string) string {
	v, ok := d.fields[field]
	if !ok {
		return defaultValue
	}
	s, ok := v.(string)
	if !ok {
		return defaultValue
	}
	return s
}

// Len returns the number of fields present.
func (d *Document) Len() int {
	return len(d.fields)
}

// Fields returns a copy of the document's fields with DateOrYear values
// unwrapped to their underlying representation (time.Time or int). This is
// the shape handed to a Sink.
func (d *Document) Fields() map[string]interface{} {
	out := make(map[string]interface{}, len(d.fields))
	for k, v := range d.fields {
		if dy, ok := v.(DateOrYear); ok {
			out[k] = dy.Interface()
			continue
		}
		out[k] = v
	}
	return out
}

// MapRow normalizes one raw row into a document for the given sheet kind.
// The field set is determined by the kind alone, never by which columns the
// row happens to contain. An unregistered kind is a configuration error.
func MapRow(kind SheetKind, row RawRow) (*Document, error) {
	specs, ok := sheetSchemas[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSheetKind, kind)
	}

	doc := NewDocument()
	for _, spec := range commonFields {
		if v, present := spec.Parse(row.Get(spec.Field)); present {
			doc.set(spec.Field, v)
		}
	}
	for _, spec := range specs {
		if v, present := spec.Parse(row.Get(spec.Field)); present {
			doc.set(spec.Field, v)
		}
	}
	return doc, nil
}

// MapRows normalizes a batch of raw rows in order.
func MapRows(kind SheetKind, rows []RawRow) ([]*Document, error) {
	docs := make([]*Document, 0, len(rows))
	for i, row := range rows {
		doc, err := MapRow(kind, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
