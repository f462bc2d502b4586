package services

import (
	"math"

	"github.com/chlnedo/calorie-tracker/models"
)

// ActivityMultipliers maps activity levels to their TDEE multiplier. This is
// the single source of truth for valid activity levels; the profile validator
// also checks membership against it.
var ActivityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// CalculateBMR estimates basal metabolic rate with the Mifflin-St Jeor
// equation. The gender term is +5 for male, -161 for female.
func CalculateBMR(p models.UserProfile) float64 {
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == models.GenderMale {
		return base + 5
	}
	return base - 161
}

// CalculateTDEE scales BMR by the activity multiplier. An unknown activity
// level is treated as sedentary rather than zeroing the result.
func CalculateTDEE(p models.UserProfile) float64 {
	mult, ok := ActivityMultipliers[p.ActivityLevel]
	if !ok {
		mult = ActivityMultipliers[models.ActivitySedentary]
	}
	return CalculateBMR(p) * mult
}

// CalculateCalorieGoal applies a 500 kcal deficit or surplus to TDEE for a
// roughly 1 lb/week pace, or returns TDEE itself for maintenance. Rounded to
// the nearest calorie.
func CalculateCalorieGoal(p models.UserProfile) int {
	tdee := CalculateTDEE(p)
	switch p.Goal {
	case models.GoalLose:
		return int(math.Round(tdee - 500))
	case models.GoalGain:
		return int(math.Round(tdee + 500))
	default:
		return int(math.Round(tdee))
	}
}

// CalculateProteinGoal is 0.8 g of protein per pound of body weight,
// independent of the weight goal.
func CalculateProteinGoal(p models.UserProfile) int {
	return int(math.Round(p.WeightKg * 2.2 * 0.8))
}
