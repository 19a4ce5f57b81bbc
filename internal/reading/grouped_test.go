package reading

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpdict/mcpdict-go/internal/datastore"
)

func rec(pos int, char string, langID int64, reading, note string) datastore.ReadingRecord {
	return datastore.ReadingRecord{
		Char:       char,
		Position:   pos,
		LanguageID: langID,
		Reading:    reading,
		Note:       note,
	}
}

func TestShapeGroupedPreservesInputOrder(t *testing.T) {
	t.Parallel()

	rows := []datastore.ReadingRecord{
		rec(1, "是", 1, "shì", ""),
		rec(1, "是", 3, "si6", ""),
		rec(2, "社", 2, "shè", "白"),
	}

	entries := ShapeGrouped(rows)
	require.Len(t, entries, 2)
	assert.Equal(t, "是", entries[0].Char)
	assert.Equal(t, "社", entries[1].Char)
	require.Len(t, entries[0].Details, 2)

	// Language ids ascend within a group because the rows arrive ordered.
	assert.Less(t, entries[0].Details[0].LanguageID, entries[0].Details[1].LanguageID)
}

func TestShapeGroupedOmitsUnmatchedCharacters(t *testing.T) {
	t.Parallel()

	// Input was "是社" but 社 produced no rows: the grouped form drops it
	// entirely rather than emitting an empty detail list.
	rows := []datastore.ReadingRecord{
		rec(1, "是", 1, "shì", ""),
	}
	entries := ShapeGrouped(rows)
	require.Len(t, entries, 1)
	assert.Equal(t, "是", entries[0].Char)

	assert.Empty(t, ShapeGrouped(nil))
}

func TestDetailWireArity(t *testing.T) {
	t.Parallel()

	plain, err := json.Marshal(Detail{LanguageID: 7, Reading: "shì"})
	require.NoError(t, err)
	annotated, err := json.Marshal(Detail{LanguageID: 7, Reading: "shè", Note: "白"})
	require.NoError(t, err)

	var arr []any
	require.NoError(t, json.Unmarshal(plain, &arr))
	assert.Len(t, arr, 2)
	require.NoError(t, json.Unmarshal(annotated, &arr))
	assert.Len(t, arr, 3)
	assert.Equal(t, "白", arr[2])
}

func TestGroupedEntryJSON(t *testing.T) {
	t.Parallel()

	entry := GroupedEntry{
		Char: "是",
		Details: []Detail{
			{LanguageID: 1, Reading: "shì"},
			{LanguageID: 2, Reading: "si6", Note: "書"},
		},
	}
	b, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `["是",[[1,"shì"],[2,"si6","書"]]]`, string(b))
}
