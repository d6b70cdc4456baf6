package collection

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	out := Map([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, out)

	assert.Empty(t, Map(nil, strconv.Itoa))
}

func TestFilter(t *testing.T) {
	out := Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, out)
}

func TestReduce(t *testing.T) {
	out := Reduce([]string{"a", "b", "c"}, "", func(carry, s string) string { return carry + s })
	assert.Equal(t, "abc", out)
}

func TestSum(t *testing.T) {
	type order struct{ price float64 }
	orders := []order{{10}, {5.5}, {0}}

	assert.Equal(t, 15.5, Sum(orders, func(o order) float64 { return o.price }))
	assert.Zero(t, Sum(nil, func(o order) float64 { return o.price }))
}

func TestKeyBy(t *testing.T) {
	type item struct {
		id   string
		name string
	}
	items := []item{{"a", "first"}, {"b", "second"}, {"a", "override"}}

	out := KeyBy(items, func(i item) string { return i.id })
	assert.Len(t, out, 2)
	assert.Equal(t, "override", out["a"].name, "later duplicates win")
	assert.Equal(t, "second", out["b"].name)
}

func TestSortByDoesNotMutateInput(t *testing.T) {
	in := []int{3, 1, 2}

	out := SortBy(in, func(a, b int) bool { return a < b })

	assert.Equal(t, []int{1, 2, 3}, out)
	assert.Equal(t, []int{3, 1, 2}, in)
}
