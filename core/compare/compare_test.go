package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func keySet(keys ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

func TestReconcile_Partition(t *testing.T) {
	first := keySet("A|B", "A|C", "D")
	second := keySet("A|C", "D", "E")

	rec := Reconcile(first, second)

	assert.Equal(t, []string{"A|C", "D"}, rec.Matched)
	assert.Equal(t, []string{"A|B"}, rec.MissingInSecond)
	assert.Equal(t, []string{"E"}, rec.MissingInFirst)
}

func TestReconcile_Sorted(t *testing.T) {
	first := keySet("z", "m", "a", "k")
	second := keySet("nothing")

	rec := Reconcile(first, second)

	assert.Equal(t, []string{"a", "k", "m", "z"}, rec.MissingInSecond)
	assert.Equal(t, []string{"nothing"}, rec.MissingInFirst)
	assert.Empty(t, rec.Matched)
}

func TestReconcile_CompositeKeyOrder(t *testing.T) {
	// Keys embed columns with '|'; order is by first column, then second.
	first := keySet("B|a", "A|z", "A|b")
	second := keySet()

	rec := Reconcile(first, second)
	assert.Equal(t, []string{"A|b", "A|z", "B|a"}, rec.MissingInSecond)
}

func TestReconcile_EmptyFirstFile(t *testing.T) {
	// An empty file makes every key of the other file missing from it.
	first := keySet()
	second := keySet("X", "Y")

	rec := Reconcile(first, second)

	assert.Empty(t, rec.Matched)
	assert.Empty(t, rec.MissingInSecond)
	assert.Equal(t, []string{"X", "Y"}, rec.MissingInFirst)
}

func TestReconcile_BothEmpty(t *testing.T) {
	rec := Reconcile(keySet(), keySet())
	assert.Empty(t, rec.Matched)
	assert.Empty(t, rec.MissingInFirst)
	assert.Empty(t, rec.MissingInSecond)
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	first := keySet("A")
	second := keySet("B")

	Reconcile(first, second)

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}
