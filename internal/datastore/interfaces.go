// Package datastore provides read-only access to the prebuilt dictionary
// store: the character-group full text index, the language info table and
// the build version marker.
package datastore

import "context"

// ReadingRecord is one (character, language) match from the character-group
// index. Position is the 1-based position of the character in the original
// query, used to recover caller order after the set join. Note is empty when
// the reading carries no annotation.
type ReadingRecord struct {
	Char       string
	Position   int
	LanguageID int64
	Reading    string
	Note       string
}

// LanguageRow is one fixed-width row of the public language listing:
//
//	[語言ID, 語言, 簡稱,
//	 地圖集二排序, 地圖集二顏色, 地圖集二分區,
//	 音典排序, 音典顏色, 音典分區,
//	 陳邡排序, 陳邡顏色, 陳邡分區,
//	 地點, 經緯度]
//
// The column count and order are a positional wire contract. Absent
// optional fields stay nil and serialize as null.
type LanguageRow []any

// LanguageRowWidth is the number of columns in a LanguageRow.
const LanguageRowWidth = 14

// Interface defines the read operations the API layer needs from the
// dictionary store.
type Interface interface {
	Open() error
	Close() error

	// BuildVersion returns the store's build version stamp in decimal
	// string form.
	BuildVersion(ctx context.Context) (string, error)

	// LookupReadings returns one ReadingRecord per (character, language)
	// match for the given deduplicated characters, ordered by
	// (character position, language id) ascending.
	LookupReadings(ctx context.Context, chars []string) ([]ReadingRecord, error)

	// ListLanguages returns the public language listing ordered by
	// language id, with the internal sentinel pseudo-language removed.
	ListLanguages(ctx context.Context) ([]LanguageRow, error)
}
