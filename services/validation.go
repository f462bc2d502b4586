package services

import (
	"strconv"
	"strings"

	"github.com/chlnedo/calorie-tracker/models"
)

// ProfileForm carries the raw field values of a profile submission. Fields
// arrive as strings so that "absent", "empty" and "not a number" can each be
// reported instead of being silently coerced.
type ProfileForm struct {
	Age               string `json:"age"`
	Weight            string `json:"weight"`
	Height            string `json:"height"`
	TargetWeight      string `json:"targetWeight"`
	Gender            string `json:"gender"`
	ActivityLevel     string `json:"activityLevel"`
	Goal              string `json:"goal"`
	DietaryPreference string `json:"dietaryPreference"`
}

// FoodForm carries the raw field values of a manual food entry.
type FoodForm struct {
	Name     string `json:"name"`
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
	Serving  string `json:"serving"`
	MealType string `json:"mealType"`
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return n, err == nil
}

// ValidateProfileForm runs every applicable check and reports all violations
// together; it never stops at the first error. An empty result means valid.
func ValidateProfileForm(form ProfileForm) []models.ValidationError {
	errs := []models.ValidationError{}

	age, ageOK := parseNumber(form.Age)
	if !ageOK || age < 13 || age > 120 {
		errs = append(errs, models.ValidationError{Field: "age", Message: "Age must be between 13 and 120 years"})
	}

	weight, weightOK := parseNumber(form.Weight)
	if !weightOK || weight < 20 || weight > 500 {
		errs = append(errs, models.ValidationError{Field: "weight", Message: "Weight must be between 20 and 500 kg"})
	}

	height, heightOK := parseNumber(form.Height)
	if !heightOK || height < 100 || height > 250 {
		errs = append(errs, models.ValidationError{Field: "height", Message: "Height must be between 100 and 250 cm"})
	}

	target, targetOK := parseNumber(form.TargetWeight)
	if !targetOK || target < 20 || target > 500 {
		errs = append(errs, models.ValidationError{Field: "targetWeight", Message: "Target weight must be between 20 and 500 kg"})
	}

	// Cross-field check only when both weights are individually usable.
	if weightOK && targetOK {
		diff := weight - target
		if diff < 0 {
			diff = -diff
		}
		if diff > 100 {
			errs = append(errs, models.ValidationError{
				Field:   "targetWeight",
				Message: "Target weight should not differ by more than 100 kg from current weight",
			})
		}
	}

	if _, ok := genderValues[models.Gender(form.Gender)]; !ok {
		errs = append(errs, models.ValidationError{Field: "gender", Message: "Please select your gender"})
	}
	if _, ok := ActivityMultipliers[models.ActivityLevel(form.ActivityLevel)]; !ok {
		errs = append(errs, models.ValidationError{Field: "activityLevel", Message: "Please select your activity level"})
	}
	if _, ok := goalValues[models.Goal(form.Goal)]; !ok {
		errs = append(errs, models.ValidationError{Field: "goal", Message: "Please select your goal"})
	}
	if _, ok := dietValues[models.DietaryPreference(form.DietaryPreference)]; !ok {
		errs = append(errs, models.ValidationError{Field: "dietaryPreference", Message: "Please select your dietary preference"})
	}

	return errs
}

// ValidateFoodForm checks a manual food entry. The numeric ceilings are
// advisory thresholds against data-entry mistakes, not nutritional limits.
func ValidateFoodForm(form FoodForm) []models.ValidationError {
	errs := []models.ValidationError{}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		errs = append(errs, models.ValidationError{Field: "name", Message: "Food name is required"})
	} else if len(name) < 2 {
		errs = append(errs, models.ValidationError{Field: "name", Message: "Food name must be at least 2 characters"})
	} else if len(name) > 100 {
		errs = append(errs, models.ValidationError{Field: "name", Message: "Food name must be less than 100 characters"})
	}

	calories, caloriesOK := parseNumber(form.Calories)
	if strings.TrimSpace(form.Calories) == "" || !caloriesOK {
		errs = append(errs, models.ValidationError{Field: "calories", Message: "Calories is required and must be a number"})
	} else if calories < 0 {
		errs = append(errs, models.ValidationError{Field: "calories", Message: "Calories cannot be negative"})
	} else if calories > 5000 {
		errs = append(errs, models.ValidationError{Field: "calories", Message: "Calories seems too high (max 5000)"})
	}

	if strings.TrimSpace(form.Protein) != "" {
		if protein, ok := parseNumber(form.Protein); !ok || protein < 0 {
			errs = append(errs, models.ValidationError{Field: "protein", Message: "Protein must be a positive number"})
		} else if protein > 200 {
			errs = append(errs, models.ValidationError{Field: "protein", Message: "Protein seems too high (max 200g)"})
		}
	}

	if strings.TrimSpace(form.Carbs) != "" {
		if carbs, ok := parseNumber(form.Carbs); !ok || carbs < 0 {
			errs = append(errs, models.ValidationError{Field: "carbs", Message: "Carbs must be a positive number"})
		} else if carbs > 500 {
			errs = append(errs, models.ValidationError{Field: "carbs", Message: "Carbs seems too high (max 500g)"})
		}
	}

	if strings.TrimSpace(form.Fat) != "" {
		if fat, ok := parseNumber(form.Fat); !ok || fat < 0 {
			errs = append(errs, models.ValidationError{Field: "fat", Message: "Fat must be a positive number"})
		} else if fat > 200 {
			errs = append(errs, models.ValidationError{Field: "fat", Message: "Fat seems too high (max 200g)"})
		}
	}

	if len(strings.TrimSpace(form.Serving)) > 50 {
		errs = append(errs, models.ValidationError{Field: "serving", Message: "Serving size must be less than 50 characters"})
	}

	// Meal type defaults downstream when absent, but garbage is rejected.
	if form.MealType != "" {
		if _, ok := mealTypeValues[models.MealType(form.MealType)]; !ok {
			errs = append(errs, models.ValidationError{Field: "mealType", Message: "Please select a valid meal type"})
		}
	}

	return errs
}

// ValidateFoodDescription checks the free-text description sent to the food
// analyzer.
func ValidateFoodDescription(description string) []models.ValidationError {
	errs := []models.ValidationError{}

	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		errs = append(errs, models.ValidationError{Field: "description", Message: "Please describe the food you want to analyze"})
	} else if len(trimmed) < 3 {
		errs = append(errs, models.ValidationError{Field: "description", Message: "Description must be at least 3 characters"})
	} else if len(trimmed) > 200 {
		errs = append(errs, models.ValidationError{Field: "description", Message: "Description must be less than 200 characters"})
	}

	return errs
}

var genderValues = map[models.Gender]bool{
	models.GenderMale:   true,
	models.GenderFemale: true,
}

var goalValues = map[models.Goal]bool{
	models.GoalLose:     true,
	models.GoalMaintain: true,
	models.GoalGain:     true,
}

var dietValues = map[models.DietaryPreference]bool{
	models.DietVegetarian:    true,
	models.DietNonVegetarian: true,
}

var mealTypeValues = map[models.MealType]bool{
	models.MealBreakfast: true,
	models.MealLunch:     true,
	models.MealDinner:    true,
	models.MealSnack:     true,
}
