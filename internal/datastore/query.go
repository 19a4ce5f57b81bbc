package datastore

import (
	"strings"

	"github.com/mcpdict/mcpdict-go/internal/errors"
)

// lookupHead and lookupTail frame the dynamic VALUES list produced by
// BuildLookupQuery. The CTE binds each character to its 1-based position so
// caller order survives the set join; the MATCH predicate runs one
// character-group probe per input character against the full text index,
// and info_rowid resolves the short code to the stable numeric language id.
const lookupHead = `
WITH q(字頭, 字頭編號) AS (
  VALUES `

const lookupTail = `
)
SELECT
  q.字頭編號,
  q.字頭,
  r.語言ID,
  l.讀音,
  IFNULL(l.註釋, '')
FROM q
JOIN langs l
  ON langs MATCH ('字組:' || q.字頭)
JOIN info_rowid r
  ON l.語言 = r.簡稱
ORDER BY q.字頭編號, r.語言ID;`

// BuildLookupQuery returns the lookup statement for n input characters.
// Each character contributes one (?, ?) pair, so character text is always
// bound, never spliced into the statement. Statement text depends only on
// n, which keeps plan caching effective per input-length bucket.
func BuildLookupQuery(n int) (string, error) {
	if n <= 0 {
		return "", errors.Newf("lookup query requires at least one character").
			Component("datastore").
			Category(errors.CategoryValidation).
			Build()
	}

	var sb strings.Builder
	sb.Grow(len(lookupHead) + len(lookupTail) + n*8)
	sb.WriteString(lookupHead)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?)")
	}
	sb.WriteString(lookupTail)
	return sb.String(), nil
}

// LookupParams flattens the character list into the bound parameter list
// for BuildLookupQuery: (char, position) pairs with positions starting
// at 1.
func LookupParams(chars []string) []any {
	params := make([]any, 0, len(chars)*2)
	for i, ch := range chars {
		params = append(params, ch, i+1)
	}
	return params
}
