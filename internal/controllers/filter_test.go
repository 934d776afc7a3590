package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menu-manager/internal/models"
	"menu-manager/internal/navigation"
)

func seedABC(t *testing.T, f *fixture) {
	t.Helper()
	require.True(t, f.addDish("A", "", "10", "main"))
	require.True(t, f.addDish("B", "", "20", "starter"))
	require.True(t, f.addDish("C", "", "30", "main"))
}

func TestFilterByCourse(t *testing.T) {
	f := newFixture(Settings{})
	seedABC(t, f)
	filter := f.main.Filter

	assert.Equal(t, string(models.Starter), filter.State().Selected, "starter is the default filter")
	assert.Equal(t, []string{"B"}, names(filter.Items()))

	require.NoError(t, filter.SelectFilter("main"))
	assert.Equal(t, []string{"A", "C"}, names(filter.Items()))

	require.NoError(t, filter.SelectFilter("dessert"))
	assert.Empty(t, filter.Items())
	assert.True(t, filter.State().Empty)
	assert.Equal(t, NoMatchingDishesMessage, filter.State().EmptyMessage)

	require.NoError(t, filter.SelectFilter("All"))
	assert.Equal(t, []string{"A", "B", "C"}, names(filter.Items()))

	assert.Error(t, filter.SelectFilter("sides"))
	assert.Equal(t, FilterAll, filter.State().Selected)
}

func TestFilterDefaultFromSettings(t *testing.T) {
	f := newFixture(Settings{DefaultFilter: "all"})
	assert.Equal(t, FilterAll, f.main.Filter.State().Selected)

	f = newFixture(Settings{DefaultFilter: "nonsense"})
	assert.Equal(t, string(models.Starter), f.main.Filter.State().Selected)
}

func TestFilterChoices(t *testing.T) {
	assert.Equal(t, []FilterChoice{
		{Value: "all", Label: "All"},
		{Value: "starter", Label: "Starters"},
		{Value: "main", Label: "Mains"},
		{Value: "dessert", Label: "Desserts"},
	}, FilterChoices())
}

func TestRemovalRequiresConfirmation(t *testing.T) {
	f := newFixture(Settings{AckDelay: 2 * time.Second})
	seedABC(t, f)
	f.router.Navigate(navigation.Filter)
	filter := f.main.Filter
	view := &filterRecorder{}
	filter.Bind(view)
	require.NoError(t, filter.SelectFilter("main"))

	require.True(t, filter.RequestRemoval("dish-1"))
	state := view.last()
	require.NotNil(t, state.Prompt)
	assert.Equal(t, "Are you sure you want to remove A?", state.Prompt.Message)
	assert.Equal(t, "Cancel", state.Prompt.CancelLabel)
	assert.True(t, state.Items[0].PendingRemoval)
	assert.False(t, state.Items[1].PendingRemoval)
	assert.Equal(t, 3, f.store.Snapshot().Len(), "request alone removes nothing")

	filter.CancelRemoval()
	assert.Nil(t, view.last().Prompt)
	assert.Equal(t, []string{"A", "C"}, names(view.last().Items))

	require.True(t, filter.RequestRemoval("dish-3"))
	require.True(t, filter.ConfirmRemoval())

	assert.Equal(t, []string{"A"}, names(view.last().Items))
	assert.Equal(t, "C removed", view.last().Acknowledgement)
	assert.Nil(t, view.last().Prompt)
	_, found := f.store.Snapshot().Find("dish-3")
	assert.False(t, found)

	f.scheduler.RunAll()
	assert.Empty(t, view.last().Acknowledgement)
	assert.False(t, filter.ConfirmRemoval(), "nothing pending")
}

func TestRequestRemovalIgnoresUnlistedDishes(t *testing.T) {
	f := newFixture(Settings{})
	seedABC(t, f)
	filter := f.main.Filter

	assert.False(t, filter.RequestRemoval("dish-1"), "A is a main, starters are listed")
	assert.False(t, filter.RequestRemoval("missing"))
	_, pending := filter.Pending()
	assert.False(t, pending)
}

func TestNewRequestReplacesPending(t *testing.T) {
	f := newFixture(Settings{DefaultFilter: "all"})
	seedABC(t, f)
	filter := f.main.Filter

	require.True(t, filter.RequestRemoval("dish-1"))
	require.True(t, filter.RequestRemoval("dish-2"))
	prompt, ok := filter.Pending()
	require.True(t, ok)
	assert.Equal(t, "B", prompt.DishName)
}

func TestPendingDroppedWhenDishDisappears(t *testing.T) {
	f := newFixture(Settings{DefaultFilter: "all"})
	seedABC(t, f)
	filter := f.main.Filter

	require.True(t, filter.RequestRemoval("dish-2"))
	f.store.RemoveDish("dish-2")

	_, ok := filter.Pending()
	assert.False(t, ok)
	assert.False(t, filter.ConfirmRemoval())
}

func TestPendingDroppedWhenFilteredOut(t *testing.T) {
	f := newFixture(Settings{DefaultFilter: "main"})
	seedABC(t, f)
	filter := f.main.Filter

	require.True(t, filter.RequestRemoval("dish-1"))
	require.NoError(t, filter.SelectFilter("starter"))
	_, ok := filter.Pending()
	assert.False(t, ok)
}

func TestAcknowledgementNotClearedByEarlierTimer(t *testing.T) {
	f := newFixture(Settings{DefaultFilter: "all"})
	seedABC(t, f)
	filter := f.main.Filter

	require.True(t, filter.RequestRemoval("dish-1"))
	require.True(t, filter.ConfirmRemoval())
	require.True(t, filter.RequestRemoval("dish-2"))
	require.True(t, filter.ConfirmRemoval())

	first := f.scheduler.queue[0]
	first()
	assert.Equal(t, "B removed", filter.State().Acknowledgement)
}

func TestBackCancelsPendingRemoval(t *testing.T) {
	f := newFixture(Settings{DefaultFilter: "all"})
	seedABC(t, f)
	f.router.Navigate(navigation.Filter)

	require.True(t, f.main.Filter.RequestRemoval("dish-1"))
	assert.True(t, f.main.Back())

	_, ok := f.main.Filter.Pending()
	assert.False(t, ok)
	assert.Equal(t, navigation.Home, f.router.Current())
	assert.Equal(t, 3, f.store.Snapshot().Len())
}

func TestMenuScenario(t *testing.T) {
	f := newFixture(Settings{})
	home := &homeRecorder{}
	f.main.Home.Bind(home)

	require.True(t, f.addDish("Soup", "", "25", "starter"))
	require.True(t, f.addDish("Steak", "", "120", "main"))
	require.True(t, f.addDish("Cake", "", "40", "dessert"))
	require.Equal(t, navigation.Home, f.router.Current())

	var averages []string
	for _, avg := range home.last().Averages {
		averages = append(averages, avg.Formatted)
	}
	assert.Equal(t, []string{"R25.00", "R120.00", "R40.00"}, averages)

	f.main.Home.FilterCourses()
	filter := f.main.Filter
	require.NoError(t, filter.SelectFilter("main"))
	require.Len(t, filter.Items(), 1)
	steak := filter.Items()[0]
	require.Equal(t, "Steak", steak.Name)

	require.True(t, filter.RequestRemoval(steak.ID))
	require.True(t, filter.ConfirmRemoval())

	assert.True(t, f.store.AveragePrice(models.Main).IsZero())
	assert.Equal(t, "R0.00", home.last().Averages[1].Formatted)
	assert.Len(t, home.last().Dishes, 2)
}
