package services

import (
	"time"

	"github.com/chlnedo/calorie-tracker/models"
)

// The ledger functions are pure: they take a log value and return a new log
// value, leaving persistence to the caller. The food list and the four totals
// always change together, so no caller ever observes a partial update.

// DateKey formats a time as the calendar-day key used for daily logs.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// NewLog returns an empty daily log stamped with today's date.
func NewLog() models.DailyLog {
	return models.DailyLog{
		Date:  DateKey(time.Now()),
		Foods: []models.FoodEntry{},
	}
}

// AddFood appends the entry and folds its macros into the running totals.
func AddFood(log models.DailyLog, entry models.FoodEntry) models.DailyLog {
	foods := make([]models.FoodEntry, 0, len(log.Foods)+1)
	foods = append(foods, log.Foods...)
	foods = append(foods, entry)

	log.Foods = foods
	log.TotalCalories += entry.Calories
	log.TotalProtein += entry.Protein
	log.TotalCarbs += entry.Carbs
	log.TotalFat += entry.Fat
	return log
}

// RemoveFood removes the entry with the given id and subtracts its macros.
// An unknown id is a no-op, not an error: the caller already does not have
// that entry.
func RemoveFood(log models.DailyLog, id string) models.DailyLog {
	idx := -1
	for i, f := range log.Foods {
		if f.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return log
	}

	removed := log.Foods[idx]
	foods := make([]models.FoodEntry, 0, len(log.Foods)-1)
	foods = append(foods, log.Foods[:idx]...)
	foods = append(foods, log.Foods[idx+1:]...)

	log.Foods = foods
	log.TotalCalories -= removed.Calories
	log.TotalProtein -= removed.Protein
	log.TotalCarbs -= removed.Carbs
	log.TotalFat -= removed.Fat
	return log
}

// GroupByMealType buckets foods by meal type, preserving insertion order
// within each bucket. Meal types with no entries are absent from the map.
func GroupByMealType(foods []models.FoodEntry) map[models.MealType][]models.FoodEntry {
	grouped := make(map[models.MealType][]models.FoodEntry)
	for _, f := range foods {
		grouped[f.MealType] = append(grouped[f.MealType], f)
	}
	return grouped
}
