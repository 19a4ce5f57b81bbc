package reading

import (
	"sort"

	"github.com/mcpdict/mcpdict-go/internal/datastore"
)

// LanguageIDColumn is the fixed name of the leading pivot column.
const LanguageIDColumn = "語言ID"

// pivotReading is one reading inside a multi-reading pivot cell:
// [讀音] or [讀音, 註釋].
type pivotReading struct {
	Reading string
	Note    string
}

func (r pivotReading) MarshalJSON() ([]byte, error) {
	if r.Note == "" {
		return marshalNoEscape([]any{r.Reading})
	}
	return marshalNoEscape([]any{r.Reading, r.Note})
}

// PivotCell is one (language, character) cell of the pivoted form. It
// serializes as:
//   - "" when the language has no reading for the character,
//   - the bare reading string when exactly one unannotated reading exists,
//   - an array of [讀音] / [讀音, 註釋] entries otherwise.
//
// The consumer tells the fast path from the fallback by JSON type, string
// versus array, so the cell never wraps a lone unannotated reading.
type PivotCell struct {
	readings []pivotReading
}

func (c PivotCell) MarshalJSON() ([]byte, error) {
	switch {
	case len(c.readings) == 0:
		return marshalNoEscape("")
	case len(c.readings) == 1 && c.readings[0].Note == "":
		return marshalNoEscape(c.readings[0].Reading)
	default:
		return marshalNoEscape(c.readings)
	}
}

// ShapePivot pivots the row set into one row per language and one column
// per input character, input order preserved. The first output row is the
// header [語言ID, char1, ..., charN]; data rows follow in ascending
// language id order and all have the header's column count. A character
// nobody reads still keeps its column, with empty cells down the table.
func ShapePivot(rows []datastore.ReadingRecord, chars []string) [][]any {
	colIndex := make(map[string]int, len(chars))
	for i, ch := range chars {
		colIndex[ch] = i
	}

	cells := make(map[int64][]PivotCell)
	langIDs := make([]int64, 0)
	for _, row := range rows {
		col, ok := colIndex[row.Char]
		if !ok {
			continue
		}
		if _, seen := cells[row.LanguageID]; !seen {
			cells[row.LanguageID] = make([]PivotCell, len(chars))
			langIDs = append(langIDs, row.LanguageID)
		}
		cell := &cells[row.LanguageID][col]
		cell.readings = append(cell.readings, pivotReading{Reading: row.Reading, Note: row.Note})
	}
	sort.Slice(langIDs, func(i, j int) bool { return langIDs[i] < langIDs[j] })

	table := make([][]any, 0, len(langIDs)+1)
	header := make([]any, 0, len(chars)+1)
	header = append(header, LanguageIDColumn)
	for _, ch := range chars {
		header = append(header, ch)
	}
	table = append(table, header)

	for _, id := range langIDs {
		row := make([]any, 0, len(chars)+1)
		row = append(row, id)
		for _, cell := range cells[id] {
			row = append(row, cell)
		}
		table = append(table, row)
	}
	return table
}
