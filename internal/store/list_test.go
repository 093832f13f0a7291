package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id   string
	done bool
}

func (i item) Key() string { return i.id }

func seed() *List[item] {
	return NewList(item{id: "a"}, item{id: "b", done: true}, item{id: "c"})
}

func TestUpdateTouchesOnlyMatchingRecord(t *testing.T) {
	l := seed()
	before := l.Items()

	ok := l.Update("b", func(i item) item {
		i.done = !i.done
		return i
	})
	require.True(t, ok)

	after := l.Items()
	require.Len(t, after, len(before))
	for i := range before {
		if before[i].id == "b" {
			assert.Equal(t, !before[i].done, after[i].done)
			continue
		}
		assert.Equal(t, before[i], after[i])
	}
}

func TestUpdateUnknownID(t *testing.T) {
	l := seed()
	ok := l.Update("zzz", func(i item) item { i.done = true; return i })
	assert.False(t, ok)
	assert.Equal(t, seed().Items(), l.Items())
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	l := seed()
	require.True(t, l.Delete("b"))
	assert.Equal(t, []item{{id: "a"}, {id: "c"}}, l.Items())

	assert.False(t, l.Delete("b"))
	assert.Equal(t, 2, l.Len())
}

func TestDeleteDoesNotAliasItems(t *testing.T) {
	l := seed()
	snapshot := l.Items()
	l.Delete("a")
	assert.Equal(t, "a", snapshot[0].id)
	assert.Equal(t, "b", snapshot[1].id)
}

func TestPrependAndAppend(t *testing.T) {
	l := NewList[item]()
	l.Append(item{id: "2"})
	l.Prepend(item{id: "1"})
	l.Append(item{id: "3"})

	var ids []string
	for _, i := range l.Items() {
		ids = append(ids, i.id)
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
}

func TestFilterAndCount(t *testing.T) {
	l := seed()
	done := func(i item) bool { return i.done }
	assert.Equal(t, []item{{id: "b", done: true}}, l.Filter(done))
	assert.Equal(t, 1, l.Count(done))

	got, ok := l.Get("c")
	require.True(t, ok)
	assert.Equal(t, "c", got.id)
}
