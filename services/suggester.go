package services

import (
	"fmt"
	"strings"

	"github.com/chlnedo/calorie-tracker/llm"
	"github.com/chlnedo/calorie-tracker/logger"
	"github.com/chlnedo/calorie-tracker/models"
)

// SuggestionContext is everything the suggester interpolates into its prompt:
// where the user stands against today's targets and what they already ate.
type SuggestionContext struct {
	CurrentCalories   float64
	TargetCalories    int
	CurrentProtein    float64
	TargetProtein     int
	Goal              models.Goal
	DietaryPreference models.DietaryPreference
	MealType          models.MealType
	LoggedFoods       []string
}

// SuggesterService proposes three concrete meals for a meal slot.
type SuggesterService struct {
	gen TextGenerator
}

func NewSuggesterService(gen TextGenerator) *SuggesterService {
	return &SuggesterService{gen: gen}
}

// Suggest asks the model for exactly three meal options fitted to the
// remaining calorie and protein budget. On any failure, including output
// that parses but does not carry three suggestions, it returns one of two
// fixed sets keyed only by dietary preference. That fallback deliberately
// ignores meal type and remaining targets; it is a canned answer, not a
// degraded personalization.
func (s *SuggesterService) Suggest(sc SuggestionContext) []models.MealSuggestion {
	remainingCalories := float64(sc.TargetCalories) - sc.CurrentCalories
	remainingProtein := float64(sc.TargetProtein) - sc.CurrentProtein

	logged := strings.Join(sc.LoggedFoods, ", ")
	if logged == "" {
		logged = "Nothing yet"
	}

	prompt := fmt.Sprintf(`You are a nutrition expert and meal planner. Based on the user's current nutrition status, suggest 3 specific %s options.

Current Status:
- Calories consumed: %.0f/%d (%.0f remaining)
- Protein consumed: %.0fg/%dg (%.0fg remaining)
- Goal: %s weight
- Dietary Preference: %s
- Already logged today: %s

You MUST respond with ONLY a valid JSON object in this exact format (no additional text before or after):
{
  "suggestions": [
    {
      "name": "Grilled Chicken Salad",
      "description": "Fresh mixed greens with grilled chicken breast",
      "calories": 350,
      "protein": 30,
      "carbs": 15,
      "fat": 12,
      "ingredients": ["chicken breast", "mixed greens", "olive oil"],
      "prepTime": "15 minutes",
      "reason": "High protein to help reach daily goals"
    }
  ]
}

Focus on meals that help them reach their remaining calorie and protein targets while aligning with their %s goal and %s preference.`,
		sc.MealType,
		sc.CurrentCalories, sc.TargetCalories, remainingCalories,
		sc.CurrentProtein, sc.TargetProtein, remainingProtein,
		sc.Goal, sc.DietaryPreference, logged,
		sc.Goal, sc.DietaryPreference)

	text, err := s.gen.Generate(prompt, suggesterTemperature)
	if err != nil {
		logger.Warn("Meal suggestion call failed, using fallback", "error", err)
		return fallbackSuggestions(sc.DietaryPreference)
	}

	var parsed struct {
		Suggestions []models.MealSuggestion `json:"suggestions"`
	}
	if err := llm.ExtractJSON(text, &parsed); err != nil {
		logger.Warn("Meal suggestion output unparsable, using fallback", "error", err)
		return fallbackSuggestions(sc.DietaryPreference)
	}
	if len(parsed.Suggestions) < 3 {
		logger.Warn("Meal suggestion output incomplete, using fallback", "count", len(parsed.Suggestions))
		return fallbackSuggestions(sc.DietaryPreference)
	}

	return parsed.Suggestions[:3]
}

func fallbackSuggestions(preference models.DietaryPreference) []models.MealSuggestion {
	var src []models.MealSuggestion
	if preference == models.DietVegetarian {
		src = vegetarianFallbackMeals
	} else {
		src = nonVegetarianFallbackMeals
	}
	out := make([]models.MealSuggestion, len(src))
	copy(out, src)
	return out
}

// Fixed fallback sets, one per dietary preference.
var vegetarianFallbackMeals = []models.MealSuggestion{
	{
		Name:        "Quinoa Salad Bowl",
		Description: "Nutritious quinoa with mixed vegetables and chickpeas",
		Calories:    380,
		Protein:     16,
		Carbs:       55,
		Fat:         12,
		Ingredients: []string{"quinoa", "chickpeas", "mixed vegetables", "olive oil"},
		PrepTime:    "15 minutes",
		Reason:      "Balanced plant-based nutrition",
	},
	{
		Name:        "Greek Yogurt Parfait",
		Description: "High-protein yogurt with granola and berries",
		Calories:    320,
		Protein:     20,
		Carbs:       35,
		Fat:         8,
		Ingredients: []string{"Greek yogurt", "granola", "mixed berries"},
		PrepTime:    "5 minutes",
		Reason:      "High protein and probiotics",
	},
	{
		Name:        "Lentil Soup",
		Description: "Hearty lentil soup with vegetables",
		Calories:    290,
		Protein:     18,
		Carbs:       40,
		Fat:         6,
		Ingredients: []string{"lentils", "vegetables", "vegetable broth"},
		PrepTime:    "25 minutes",
		Reason:      "High fiber and plant protein",
	},
}

var nonVegetarianFallbackMeals = []models.MealSuggestion{
	{
		Name:        "Grilled Chicken Breast",
		Description: "Lean grilled chicken with steamed vegetables",
		Calories:    350,
		Protein:     35,
		Carbs:       10,
		Fat:         12,
		Ingredients: []string{"chicken breast", "broccoli", "olive oil"},
		PrepTime:    "20 minutes",
		Reason:      "High protein for muscle maintenance",
	},
	{
		Name:        "Salmon with Quinoa",
		Description: "Baked salmon with quinoa and asparagus",
		Calories:    420,
		Protein:     32,
		Carbs:       25,
		Fat:         18,
		Ingredients: []string{"salmon fillet", "quinoa", "asparagus"},
		PrepTime:    "25 minutes",
		Reason:      "Omega-3 fatty acids and complete protein",
	},
	{
		Name:        "Turkey Wrap",
		Description: "Lean turkey wrap with vegetables",
		Calories:    310,
		Protein:     28,
		Carbs:       30,
		Fat:         8,
		Ingredients: []string{"turkey breast", "whole wheat tortilla", "vegetables"},
		PrepTime:    "10 minutes",
		Reason:      "Convenient high-protein option",
	},
}
