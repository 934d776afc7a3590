package models

import (
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() IDGenerator {
	next := 0
	return func() string {
		next++
		return fmt.Sprintf("dish-%d", next)
	}
}

func price(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}

func TestAddDishPreservesFieldsAndOrder(t *testing.T) {
	store := NewMenuStore()

	inputs := []DishInput{
		{Name: "Soup", Description: "Tomato", Price: price(t, "25"), Course: Starter},
		{Name: "Steak", Description: "Sirloin", Price: price(t, "120"), Course: Main},
		{Name: "Cake", Price: price(t, "40"), Course: Dessert},
		{Name: "Soup", Description: "Tomato", Price: price(t, "25"), Course: Starter},
	}
	for _, in := range inputs {
		store.AddDish(in)
	}

	dishes := store.Snapshot().Dishes()
	require.Len(t, dishes, len(inputs))

	seen := make(map[string]bool)
	for i, dish := range dishes {
		assert.NotEmpty(t, dish.ID)
		assert.False(t, seen[dish.ID], "duplicate id %s", dish.ID)
		seen[dish.ID] = true

		assert.Equal(t, inputs[i].Name, dish.Name)
		assert.Equal(t, inputs[i].Description, dish.Description)
		assert.True(t, inputs[i].Price.Equal(dish.Price))
		assert.Equal(t, inputs[i].Course, dish.Course)
	}
}

func TestAddDishRetriesCollidingIDs(t *testing.T) {
	ids := []string{"a", "a", "b"}
	store := NewMenuStore(WithIDGenerator(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}))

	first := store.AddDish(DishInput{Name: "One", Price: price(t, "1"), Course: Main})
	second := store.AddDish(DishInput{Name: "Two", Price: price(t, "2"), Course: Main})

	assert.Equal(t, "a", first.ID)
	assert.Equal(t, "b", second.ID)
}

func TestRemoveDish(t *testing.T) {
	store := NewMenuStore(WithIDGenerator(sequentialIDs()))
	for _, name := range []string{"A", "B", "C", "D"} {
		store.AddDish(DishInput{Name: name, Price: price(t, "10"), Course: Main})
	}

	t.Run("existing id keeps relative order", func(t *testing.T) {
		removed := store.RemoveDish("dish-2")
		require.True(t, removed)

		var names []string
		for _, dish := range store.Snapshot().Dishes() {
			names = append(names, dish.Name)
		}
		assert.Equal(t, []string{"A", "C", "D"}, names)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		before := store.Snapshot()
		removed := store.RemoveDish("missing")

		assert.False(t, removed)
		assert.Equal(t, before.Version(), store.Snapshot().Version())
		assert.Equal(t, before.Dishes(), store.Snapshot().Dishes())
	})
}

func TestAveragePrice(t *testing.T) {
	store := NewMenuStore()

	assert.True(t, store.AveragePrice(Main).IsZero(), "empty course averages to zero")

	store.AddDish(DishInput{Name: "A", Price: price(t, "10.00"), Course: Main})
	store.AddDish(DishInput{Name: "B", Price: price(t, "20.00"), Course: Main})
	store.AddDish(DishInput{Name: "X", Price: price(t, "99.00"), Course: Dessert})

	assert.Equal(t, "15.00", store.AveragePrice(Main).StringFixed(2))

	store.AddDish(DishInput{Name: "C", Price: price(t, "30.00"), Course: Main})
	assert.Equal(t, "20.00", store.AveragePrice(Main).StringFixed(2))
	assert.True(t, store.AveragePrice(Starter).IsZero())
}

func TestSnapshotIsImmutable(t *testing.T) {
	store := NewMenuStore()
	store.AddDish(DishInput{Name: "Soup", Price: price(t, "25"), Course: Starter})

	snapshot := store.Snapshot()
	dishes := snapshot.Dishes()
	dishes[0].Name = "Changed"

	store.AddDish(DishInput{Name: "Steak", Price: price(t, "120"), Course: Main})

	assert.Equal(t, 1, snapshot.Len())
	assert.Equal(t, "Soup", snapshot.Dishes()[0].Name)
	assert.Equal(t, 2, store.Snapshot().Len())
}

func TestByCourseKeepsOrder(t *testing.T) {
	store := NewMenuStore()
	store.AddDish(DishInput{Name: "A", Price: price(t, "1"), Course: Main})
	store.AddDish(DishInput{Name: "B", Price: price(t, "1"), Course: Starter})
	store.AddDish(DishInput{Name: "C", Price: price(t, "1"), Course: Main})

	mains := store.Snapshot().ByCourse(Main)
	require.Len(t, mains, 2)
	assert.Equal(t, "A", mains[0].Name)
	assert.Equal(t, "C", mains[1].Name)

	assert.Empty(t, store.Snapshot().ByCourse(Dessert))
}

func TestSubscribe(t *testing.T) {
	store := NewMenuStore(WithIDGenerator(sequentialIDs()))

	var calls []string
	unsubscribeFirst := store.Subscribe(func(s Snapshot) {
		calls = append(calls, fmt.Sprintf("first:%d", s.Len()))
	})
	store.Subscribe(func(s Snapshot) {
		calls = append(calls, fmt.Sprintf("second:%d", s.Len()))
	})

	store.AddDish(DishInput{Name: "A", Price: price(t, "1"), Course: Main})
	store.RemoveDish("missing")
	unsubscribeFirst()
	unsubscribeFirst()
	store.RemoveDish("dish-1")

	assert.Equal(t, []string{"first:1", "second:1", "second:0"}, calls)
}

func TestListenerCanReadStore(t *testing.T) {
	store := NewMenuStore()

	var average string
	store.Subscribe(func(Snapshot) {
		average = store.AveragePrice(Dessert).StringFixed(2)
	})
	store.AddDish(DishInput{Name: "Cake", Price: price(t, "40"), Course: Dessert})

	assert.Equal(t, "40.00", average)
}

func TestStats(t *testing.T) {
	store := NewMenuStore()
	store.AddDish(DishInput{Name: "A", Price: price(t, "1"), Course: Main})
	store.AddDish(DishInput{Name: "B", Price: price(t, "1"), Course: Main})

	stats := store.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.PerCourse[Main])
	assert.Equal(t, 0, stats.PerCourse[Starter])
	assert.Equal(t, uint64(2), stats.Version)
}

func TestListenersSeeVersionsInOrderUnderConcurrentWriters(t *testing.T) {
	store := NewMenuStore()

	var mu sync.Mutex
	var versions []uint64
	store.Subscribe(func(s Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		versions = append(versions, s.Version())
	})

	one := price(t, "1")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				store.AddDish(DishInput{Name: "Dish", Price: one, Course: Main})
			}
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, versions)
	for i := 1; i < len(versions); i++ {
		assert.Greater(t, versions[i], versions[i-1], "delivery went backwards at %d", i)
	}
	assert.Equal(t, store.Snapshot().Version(), versions[len(versions)-1])
}

func TestMutationFromListenerIsDeliveredAfterCurrentRound(t *testing.T) {
	store := NewMenuStore(WithIDGenerator(sequentialIDs()))

	var calls []string
	store.Subscribe(func(s Snapshot) {
		calls = append(calls, fmt.Sprintf("first:%d", s.Version()))
		if s.Version() == 1 {
			store.RemoveDish("dish-1")
		}
	})
	store.Subscribe(func(s Snapshot) {
		calls = append(calls, fmt.Sprintf("second:%d", s.Version()))
	})

	store.AddDish(DishInput{Name: "A", Price: price(t, "1"), Course: Main})

	assert.Equal(t, []string{"first:1", "second:1", "first:2", "second:2"}, calls)
	assert.True(t, store.Snapshot().IsEmpty())
}

func TestPanickingListenerDoesNotStopLaterNotifications(t *testing.T) {
	store := NewMenuStore()

	fail := true
	var seen []int
	store.Subscribe(func(s Snapshot) {
		if fail {
			fail = false
			panic("listener failure")
		}
		seen = append(seen, s.Len())
	})

	assert.Panics(t, func() {
		store.AddDish(DishInput{Name: "A", Price: price(t, "1"), Course: Main})
	})
	store.AddDish(DishInput{Name: "B", Price: price(t, "2"), Course: Main})

	assert.Equal(t, []int{2}, seen)
}
