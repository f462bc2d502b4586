package services

import (
	"testing"

	"github.com/chlnedo/calorie-tracker/models"
	"github.com/stretchr/testify/assert"
)

func TestDietPlanByPreference(t *testing.T) {
	veg := DietPlan(models.DietVegetarian)
	assert.Len(t, veg.Breakfast, 5)
	assert.Contains(t, veg.Lunch[2], "Paneer curry")

	nonVeg := DietPlan(models.DietNonVegetarian)
	assert.Contains(t, nonVeg.Lunch[0], "Grilled chicken")
	assert.NotEqual(t, veg.Dinner, nonVeg.Dinner)
}
