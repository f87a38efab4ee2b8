package gridastar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queueWith returns a frontier over a one-row table whose nodes carry the given (f, h).
func queueWith(t *testing.T, scores ...[2]int) (*frontier, *nodeTable) {
	t.Helper()
	row := make([]Cell, max(1, len(scores)))
	table, err := newNodeTable(Grid{row}, pos(0, 0), pos(0, 0))
	require.NoError(t, err)
	q := newFrontier(table)
	for i, s := range scores {
		n := table.at(i)
		n.f, n.h = s[0], s[1]
		q.insert(i)
	}
	return q, table
}

func drain(t *testing.T, q *frontier) []int {
	t.Helper()
	var out []int
	for q.Len() > 0 {
		i, err := q.extractMin()
		require.NoError(t, err)
		out = append(out, i)
	}
	return out
}

func TestFrontier_OrdersByF(t *testing.T) {
	q, _ := queueWith(t, [2]int{5, 0}, [2]int{2, 0}, [2]int{9, 0}, [2]int{3, 0})
	assert.Equal(t, []int{1, 3, 0, 2}, drain(t, q))
}

func TestFrontier_TieBreaksOnHThenDiscovery(t *testing.T) {
	q, _ := queueWith(t, [2]int{4, 2}, [2]int{4, 1}, [2]int{4, 2}, [2]int{4, 1})
	assert.Equal(t, []int{1, 3, 0, 2}, drain(t, q))
}

func TestFrontier_EmptyExtract(t *testing.T) {
	q, _ := queueWith(t)
	_, err := q.extractMin()
	assert.ErrorIs(t, err, errEmptyFrontier)
}

func TestFrontier_Decrease(t *testing.T) {
	q, table := queueWith(t, [2]int{3, 0}, [2]int{4, 0}, [2]int{8, 0})

	table.at(2).f = 1
	q.decrease(2)

	i, err := q.extractMin()
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	assert.Equal(t, notQueued, table.at(2).heapIndex)
	assert.Equal(t, []int{0, 1}, drain(t, q))
}

func TestFrontier_DecreaseIgnoresUnqueued(t *testing.T) {
	q, table := queueWith(t, [2]int{3, 0})
	_, err := q.extractMin()
	require.NoError(t, err)

	table.at(0).f = 1
	assert.NotPanics(t, func() { q.decrease(0) })
	assert.Equal(t, 0, q.Len())
}

func TestFrontier_HeapIndexTracksPosition(t *testing.T) {
	q, table := queueWith(t, [2]int{7, 0}, [2]int{1, 0}, [2]int{4, 0}, [2]int{2, 0})
	for k, i := range q.open() {
		assert.Equal(t, k, table.at(i).heapIndex)
	}
}
