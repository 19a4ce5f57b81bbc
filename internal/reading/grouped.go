package reading

import (
	"github.com/mcpdict/mcpdict-go/internal/datastore"
)

// Detail is one reading of a character in one language. On the wire it is
// a 2-element array [語言ID, 讀音], or a 3-element array [語言ID, 讀音, 註釋]
// when the reading is annotated. Consumers distinguish the two by length,
// so no other arities may ever be produced.
type Detail struct {
	LanguageID int64
	Reading    string
	Note       string
}

// MarshalJSON implements the 2-or-3-element array contract.
func (d Detail) MarshalJSON() ([]byte, error) {
	if d.Note == "" {
		return marshalNoEscape([]any{d.LanguageID, d.Reading})
	}
	return marshalNoEscape([]any{d.LanguageID, d.Reading, d.Note})
}

// GroupedEntry is one element of the grouped form: [字頭, [detail, ...]].
type GroupedEntry struct {
	Char    string
	Details []Detail
}

// MarshalJSON emits the [character, detailList] pair.
func (e GroupedEntry) MarshalJSON() ([]byte, error) {
	return marshalNoEscape([]any{e.Char, e.Details})
}

// ShapeGrouped groups the pre-ordered row set by character position in a
// single linear pass. Rows arrive ordered by (position, language id), so
// a position change closes one group and opens the next; no sorting
// happens here. Characters without any match contribute no rows and are
// therefore absent from the output, never present with an empty list.
func ShapeGrouped(rows []datastore.ReadingRecord) []GroupedEntry {
	entries := make([]GroupedEntry, 0)
	lastPos := -1
	for _, row := range rows {
		detail := Detail{
			LanguageID: row.LanguageID,
			Reading:    row.Reading,
			Note:       row.Note,
		}
		if row.Position == lastPos {
			entries[len(entries)-1].Details = append(entries[len(entries)-1].Details, detail)
			continue
		}
		entries = append(entries, GroupedEntry{Char: row.Char, Details: []Detail{detail}})
		lastPos = row.Position
	}
	return entries
}
