package datastore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpdict/mcpdict-go/internal/errors"
)

func TestBuildLookupQueryPlaceholderCount(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 17, 512} {
		query, err := BuildLookupQuery(n)
		require.NoError(t, err)
		assert.Equal(t, n, strings.Count(query, "(?, ?)"), "n=%d", n)
		assert.Equal(t, 2*n, strings.Count(query, "?"), "n=%d", n)
	}
}

func TestBuildLookupQueryRejectsEmpty(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1} {
		_, err := BuildLookupQuery(n)
		require.Error(t, err)
		assert.True(t, errors.IsCategory(err, errors.CategoryValidation))
	}
}

func TestBuildLookupQueryNeverInterpolates(t *testing.T) {
	t.Parallel()

	// Statement text depends only on the character count; the characters
	// themselves travel as bound parameters.
	a, err := BuildLookupQuery(3)
	require.NoError(t, err)
	b, err := BuildLookupQuery(3)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	params := LookupParams([]string{"是'; DROP TABLE langs; --"})
	assert.NotContains(t, a, "DROP")
	assert.Equal(t, []any{"是'; DROP TABLE langs; --", 1}, params)
}

func TestBuildLookupQueryOrderingClause(t *testing.T) {
	t.Parallel()

	query, err := BuildLookupQuery(2)
	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY q.字頭編號, r.語言ID")
	assert.Contains(t, query, "MATCH ('字組:' || q.字頭)")
}

func TestLookupParamsPositionsAreOneBased(t *testing.T) {
	t.Parallel()

	params := LookupParams([]string{"是", "社", "會"})
	require.Len(t, params, 6)
	assert.Equal(t, []any{"是", 1, "社", 2, "會", 3}, params)

	assert.Empty(t, LookupParams(nil))
}
