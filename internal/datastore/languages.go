package datastore

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

// sentinelLanguage is the pseudo-language backing the character-group
// index. It exists only for the full text index and never appears in the
// public listing.
const sentinelLanguage = "漢字"

// languageColumns is the positional column contract of the listing, id
// first. ROWID is the stable language id: assigned by row identity at
// build time, never reassigned.
var languageColumns = []string{
	"ROWID AS 語言ID",
	"語言", "簡稱",
	"地圖集二排序", "地圖集二顏色", "地圖集二分區",
	"音典排序", "音典顏色", "音典分區",
	"陳邡排序", "陳邡顏色", "陳邡分區",
	"地點", "經緯度",
}

// listLanguagesQuery builds the language listing select.
func listLanguagesQuery() (string, []any, error) {
	return sq.Select(languageColumns...).
		From("info").
		Where(sq.NotEq{"簡稱": sentinelLanguage}).
		OrderBy("語言ID").
		ToSql()
}

// buildVersionQuery builds the version stamp select. CAST keeps 64-bit
// stamps exact; the JSON envelope carries the version as a decimal string.
func buildVersionQuery() (string, []any, error) {
	return sq.Select("CAST(version AS TEXT)").
		From("build_version").
		ToSql()
}

// ListLanguages returns the public language listing in stable id order.
func (store *SQLiteStore) ListLanguages(ctx context.Context) ([]LanguageRow, error) {
	if store.DB == nil {
		return nil, errNotReady()
	}

	query, args, err := listLanguagesQuery()
	if err != nil {
		return nil, wrapQueryError(err, "list-langs-build")
	}

	rows, err := store.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err, "list-langs")
	}
	defer func() { _ = rows.Close() }()

	var langs []LanguageRow
	for rows.Next() {
		row := make(LanguageRow, LanguageRowWidth)
		dest := make([]any, LanguageRowWidth)
		for i := range row {
			dest[i] = &row[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, wrapQueryError(err, "list-langs-scan")
		}
		normalizeRow(row)
		langs = append(langs, row)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError(err, "list-langs-rows")
	}
	return langs, nil
}

// normalizeRow converts driver []byte text values to string so rows
// serialize as JSON strings instead of base64.
func normalizeRow(row LanguageRow) {
	for i, v := range row {
		if b, ok := v.([]byte); ok {
			row[i] = string(b)
		}
	}
}
