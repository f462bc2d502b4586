package services

import (
	"testing"

	"github.com/chlnedo/calorie-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id, name string, mealType models.MealType, calories, protein, carbs, fat float64) models.FoodEntry {
	return models.FoodEntry{
		ID:       id,
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Serving:  "1 serving",
		MealType: mealType,
	}
}

// requireTotalsMatchFoods asserts the ledger invariant: every total equals
// the sum of that macro across the food list.
func requireTotalsMatchFoods(t *testing.T, log models.DailyLog) {
	t.Helper()
	var calories, protein, carbs, fat float64
	for _, f := range log.Foods {
		calories += f.Calories
		protein += f.Protein
		carbs += f.Carbs
		fat += f.Fat
	}
	require.Equal(t, calories, log.TotalCalories)
	require.Equal(t, protein, log.TotalProtein)
	require.Equal(t, carbs, log.TotalCarbs)
	require.Equal(t, fat, log.TotalFat)
}

func TestAddFoodUpdatesTotalsAtomically(t *testing.T) {
	log := NewLog()
	log = AddFood(log, entry("1", "Oatmeal", models.MealBreakfast, 350, 12, 60, 6))
	log = AddFood(log, entry("2", "Chicken Salad", models.MealLunch, 420, 35, 15, 18))

	assert.Len(t, log.Foods, 2)
	assert.Equal(t, 770.0, log.TotalCalories)
	assert.Equal(t, 47.0, log.TotalProtein)
	requireTotalsMatchFoods(t, log)
}

func TestAddFoodDoesNotMutateInput(t *testing.T) {
	base := NewLog()
	base = AddFood(base, entry("1", "Oatmeal", models.MealBreakfast, 350, 12, 60, 6))

	updated := AddFood(base, entry("2", "Apple", models.MealSnack, 95, 0, 25, 0))

	assert.Len(t, base.Foods, 1)
	assert.Equal(t, 350.0, base.TotalCalories)
	assert.Len(t, updated.Foods, 2)
}

func TestRemoveFood(t *testing.T) {
	log := NewLog()
	log = AddFood(log, entry("1", "Oatmeal", models.MealBreakfast, 350, 12, 60, 6))
	log = AddFood(log, entry("2", "Apple", models.MealSnack, 95, 0, 25, 0))

	log = RemoveFood(log, "1")

	require.Len(t, log.Foods, 1)
	assert.Equal(t, "2", log.Foods[0].ID)
	assert.Equal(t, 95.0, log.TotalCalories)
	requireTotalsMatchFoods(t, log)
}

func TestRemoveFoodUnknownIDIsNoOp(t *testing.T) {
	log := NewLog()
	log = AddFood(log, entry("1", "Oatmeal", models.MealBreakfast, 350, 12, 60, 6))

	assert.Equal(t, log, RemoveFood(log, "nonexistent-id"))
}

func TestTotalsInvariantAcrossOperationSequence(t *testing.T) {
	log := NewLog()

	ops := []func(models.DailyLog) models.DailyLog{
		func(l models.DailyLog) models.DailyLog {
			return AddFood(l, entry("1", "Eggs", models.MealBreakfast, 156, 12, 1, 10))
		},
		func(l models.DailyLog) models.DailyLog {
			return AddFood(l, entry("2", "Rice Bowl", models.MealLunch, 520, 20, 80, 12))
		},
		func(l models.DailyLog) models.DailyLog { return RemoveFood(l, "1") },
		func(l models.DailyLog) models.DailyLog {
			return AddFood(l, entry("3", "Yogurt", models.MealSnack, 100, 8, 12, 2))
		},
		func(l models.DailyLog) models.DailyLog { return RemoveFood(l, "no-such-id") },
		func(l models.DailyLog) models.DailyLog { return RemoveFood(l, "2") },
	}

	for _, op := range ops {
		log = op(log)
		requireTotalsMatchFoods(t, log)
	}

	require.Len(t, log.Foods, 1)
	assert.Equal(t, "3", log.Foods[0].ID)
}

func TestGroupByMealType(t *testing.T) {
	foods := []models.FoodEntry{
		entry("1", "Oatmeal", models.MealBreakfast, 350, 12, 60, 6),
		entry("2", "Chicken Salad", models.MealLunch, 420, 35, 15, 18),
		entry("3", "Toast", models.MealBreakfast, 120, 4, 22, 2),
		entry("4", "Apple", models.MealSnack, 95, 0, 25, 0),
	}

	grouped := GroupByMealType(foods)

	require.Len(t, grouped, 3)
	assert.NotContains(t, grouped, models.MealDinner)

	// Insertion order is preserved within each group.
	require.Len(t, grouped[models.MealBreakfast], 2)
	assert.Equal(t, "1", grouped[models.MealBreakfast][0].ID)
	assert.Equal(t, "3", grouped[models.MealBreakfast][1].ID)
}

func TestNewLogIsEmptyAndStampedWithToday(t *testing.T) {
	log := NewLog()

	assert.Empty(t, log.Foods)
	assert.Zero(t, log.TotalCalories)
	assert.Zero(t, log.TotalProtein)
	assert.Zero(t, log.TotalCarbs)
	assert.Zero(t, log.TotalFat)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, log.Date)
}
