package labsync

import "fmt"

// SheetKind identifies the shape of a worksheet. The set is closed: every
// kind declares its full field set below, and rows are normalized against
// that declaration regardless of which columns the sheet happens to carry.
type SheetKind string

const (
	SheetPublications  SheetKind = "publications"
	SheetPreprints     SheetKind = "preprints"
	SheetPresentations SheetKind = "presentations"

	// SheetGeneral is the fallback shape for sheets that only track a year
	// of publication. Its date field holds a year, not a calendar date.
	SheetGeneral SheetKind = "general"
)

// CollectionKind identifies a destination collection and, through
// collectionKeys, the field used as the upsert filter.
type CollectionKind string

const (
	CollectionPublications  CollectionKind = "publications"
	CollectionPreprints     CollectionKind = "preprints"
	CollectionPresentations CollectionKind = "presentations"
	CollectionGeneral       CollectionKind = "general"
)

// FieldSpec binds a document field to the normalizer that produces it from
// the raw cell of the same name. Parse returns the typed value and whether
// the field is present; absent fields are omitted from the document.
type FieldSpec struct {
	Field string
	Parse func(raw string) (interface{}, bool)
}

func asString(raw string) (interface{}, bool) {
	return TrimString(raw), true
}

func asYear(raw string) (interface{}, bool) {
	y, ok := ParseYear(raw)
	if !ok {
		return nil, false
	}
	return y, true
}

func asDate(raw string) (interface{}, bool) {
	t, ok := ParseDate(raw)
	if !ok {
		return nil, false
	}
	return DateOf(t), true
}

// asYearDate parses a year but stores it under the date field, the shape the
// general sheets have always used.
func asYearDate(raw string) (interface{}, bool) {
	y, ok := ParseYear(raw)
	if !ok {
		return nil, false
	}
	return YearOf(y), true
}

// commonFields are shared by every sheet kind.
var commonFields = []FieldSpec{
	{Field: "title", Parse: asString},
	{Field: "image", Parse: asString},
}

// sheetSchemas declares, per kind, the fields a document carries beyond the
// common ones. A field missing here is never present in the output document.
var sheetSchemas = map[SheetKind][]FieldSpec{
	SheetPublications: {
		{Field: "authors", Parse: asString},
		{Field: "publisher", Parse: asString},
		{Field: "year", Parse: asYear},
		{Field: "url", Parse: asString},
		{Field: "date", Parse: asDate},
	},
	SheetPreprints: {
		{Field: "authors", Parse: asString},
		{Field: "publisher", Parse: asString},
		{Field: "year", Parse: asYear},
		{Field: "doi", Parse: asString},
		{Field: "date", Parse: asDate},
	},
	SheetPresentations: {
		{Field: "unique_id", Parse: asString},
		{Field: "event", Parse: asString},
		{Field: "location", Parse: asString},
		{Field: "format", Parse: asString},
		{Field: "date", Parse: asDate},
	},
	SheetGeneral: {
		{Field: "authors", Parse: asString},
		{Field: "publisher", Parse: asString},
		{Field: "year", Parse: asYear},
		{Field: "url", Parse: asString},
		{Field: "date", Parse: asYearDate},
	},
}

// collectionKeys declares the unique-key field per collection kind. The
// upsert filter for every document in a pass is built from this field.
var collectionKeys = map[CollectionKind]string{
	CollectionPublications:  "url",
	CollectionPreprints:     "doi",
	CollectionPresentations: "unique_id",
	CollectionGeneral:       "url",
}

// UniqueKey returns the unique-key field name for a collection kind.
func UniqueKey(kind CollectionKind) (string, error) {
	field, ok := collectionKeys[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCollectionKind, kind)
	}
	return field, nil
}
