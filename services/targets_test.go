package services

import (
	"testing"

	"github.com/chlnedo/calorie-tracker/models"
	"github.com/stretchr/testify/assert"
)

func maleProfile() models.UserProfile {
	return models.UserProfile{
		Age:           25,
		WeightKg:      70,
		HeightCm:      175,
		Gender:        models.GenderMale,
		ActivityLevel: models.ActivityModerate,
		Goal:          models.GoalLose,
	}
}

func TestCalculateBMR(t *testing.T) {
	p := maleProfile()
	// 10*70 + 6.25*175 - 5*25 + 5
	assert.InDelta(t, 1673.75, CalculateBMR(p), 0.0001)

	p.Gender = models.GenderFemale
	// Same terms with the female constant instead: -161 rather than +5
	assert.InDelta(t, 1507.75, CalculateBMR(p), 0.0001)
}

func TestCalculateTDEE(t *testing.T) {
	p := maleProfile()
	assert.InDelta(t, 1673.75*1.55, CalculateTDEE(p), 0.0001)

	p.ActivityLevel = models.ActivityVeryActive
	assert.InDelta(t, 1673.75*1.9, CalculateTDEE(p), 0.0001)
}

func TestCalculateTDEEUnknownActivityLevel(t *testing.T) {
	p := maleProfile()
	p.ActivityLevel = "couch"
	assert.InDelta(t, 1673.75*1.2, CalculateTDEE(p), 0.0001)
}

func TestCalculateCalorieGoal(t *testing.T) {
	p := maleProfile()

	// TDEE is 2594.3125; round after the +-500 adjustment
	p.Goal = models.GoalLose
	assert.Equal(t, 2094, CalculateCalorieGoal(p))

	p.Goal = models.GoalGain
	assert.Equal(t, 3094, CalculateCalorieGoal(p))

	p.Goal = models.GoalMaintain
	assert.Equal(t, 2594, CalculateCalorieGoal(p))
}

func TestCalculateProteinGoal(t *testing.T) {
	p := maleProfile()
	// 70 * 2.2 * 0.8 = 123.2, rounded to nearest
	assert.Equal(t, 123, CalculateProteinGoal(p))

	p.Goal = models.GoalGain // independent of goal
	assert.Equal(t, 123, CalculateProteinGoal(p))
}
