package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderDefaults(t *testing.T) {
	t.Parallel()

	ee := Newf("something broke").Build()
	assert.Equal(t, ComponentUnknown, ee.Component)
	assert.Equal(t, CategoryGeneric, ee.Category)
	assert.Equal(t, "something broke", ee.Error())
}

func TestBuilderMetadata(t *testing.T) {
	t.Parallel()

	ee := Newf("busy: database is locked").
		Component("datastore").
		Category(CategoryTimeout).
		Context("op", "lookup").
		Build()

	assert.Equal(t, "datastore", ee.Component)
	assert.Equal(t, CategoryTimeout, ee.Category)
	assert.Equal(t, "lookup", ee.Context["op"])
}

func TestIsCategoryUnwrapsChain(t *testing.T) {
	t.Parallel()

	inner := Newf("no such table: langs").
		Component("datastore").
		Category(CategoryDatabase).
		Build()
	wrapped := Newf("lookup failed: %w", inner).Build()

	// The outer builder has its own (generic) category; the chain still
	// matches the inner database category via errors.As traversal.
	require.True(t, IsCategory(inner, CategoryDatabase))
	assert.Equal(t, CategoryGeneric, CategoryOf(wrapped))
}

func TestIsMatchesByCategory(t *testing.T) {
	t.Parallel()

	a := Newf("a").Category(CategoryLimit).Build()
	b := Newf("b").Category(CategoryLimit).Build()
	c := Newf("c").Category(CategoryDatabase).Build()

	assert.True(t, Is(a, b))
	assert.False(t, Is(a, c))
}
