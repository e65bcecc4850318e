package iterate_test

import (
	"testing"

	"github.com/on-the-ground/funcview_go/iterate"
	"github.com/on-the-ground/funcview_go/view"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func TestForEachVisitsAllInOrder(t *testing.T) {
	var seen []int
	iterate.ForEach([]int{3, 1, 4}, view.Do1(func(n int) {
		seen = append(seen, n)
	}))

	assert.Equal(t, []int{3, 1, 4}, seen)
}

func TestForEachUntilStopsEarly(t *testing.T) {
	visited := 0
	stopped := iterate.ForEachUntil([]int{1, 2, 3, 4}, view.Of1(func(n int) bool {
		visited++
		return n == 2
	}))

	assert.True(t, stopped)
	assert.Equal(t, 2, visited)
}

func TestForEachUntilRunsToEnd(t *testing.T) {
	stopped := iterate.ForEachUntil([]int{1, 2, 3}, view.Of1(func(n int) bool {
		return n > 10
	}))
	assert.False(t, stopped)
}

func TestFindIf(t *testing.T) {
	words := []string{"alpha", "beta", "gamma"}
	pred := view.Of1(func(s string) bool { return len(s) == 4 })

	got, ok := iterate.FindIf(words, pred)
	assert.True(t, ok)
	assert.Equal(t, "beta", got)

	_, ok = iterate.FindIf(nil, pred)
	assert.False(t, ok)
}

func TestAnyAll(t *testing.T) {
	even := view.Of1(func(n int) bool { return n%2 == 0 })

	assert.True(t, iterate.Any([]int{1, 2, 3}, even))
	assert.False(t, iterate.Any([]int{1, 3, 5}, even))
	assert.True(t, iterate.All([]int{2, 4, 6}, even))
	assert.False(t, iterate.All([]int{2, 5, 6}, even))
}

func TestFoldSumsDecimals(t *testing.T) {
	prices := []decimal.Decimal{
		decimal.MustParse("19.99"),
		decimal.MustParse("4.49"),
		decimal.MustParse("23.49"),
	}

	total := iterate.Fold(prices, decimal.MustNew(0, 2),
		view.Of2(func(acc, price decimal.Decimal) decimal.Decimal {
			sum, err := acc.Add(price)
			if err != nil {
				t.Fatal(err)
			}
			return sum
		}),
	)

	assert.Equal(t, "47.97", total.String())
}

func TestFoldWithStatefulCandidate(t *testing.T) {
	calls := 0
	max := iterate.Fold([]int{2, 9, 4}, 0, view.Of2(func(acc, n int) int {
		calls++
		if n > acc {
			return n
		}
		return acc
	}))

	assert.Equal(t, 9, max)
	assert.Equal(t, 3, calls)
}
