package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/chlnedo/calorie-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestionContext(preference models.DietaryPreference) SuggestionContext {
	return SuggestionContext{
		CurrentCalories:   1200,
		TargetCalories:    2192,
		CurrentProtein:    60,
		TargetProtein:     123,
		Goal:              models.GoalLose,
		DietaryPreference: preference,
		MealType:          models.MealDinner,
		LoggedFoods:       []string{"Oatmeal", "Chicken Salad"},
	}
}

func threeSuggestionsJSON(t *testing.T) string {
	t.Helper()
	payload := map[string][]models.MealSuggestion{
		"suggestions": {
			{Name: "Baked Cod", Calories: 320, Protein: 28},
			{Name: "Stir-fry", Calories: 400, Protein: 30},
			{Name: "Soup", Calories: 250, Protein: 15},
		},
	}
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(b)
}

func TestSuggestParsesModelOutput(t *testing.T) {
	gen := &stubGenerator{text: threeSuggestionsJSON(t)}

	got := NewSuggesterService(gen).Suggest(suggestionContext(models.DietNonVegetarian))

	require.Len(t, got, 3)
	assert.Equal(t, "Baked Cod", got[0].Name)
	assert.Equal(t, 0.7, gen.temperature)
	assert.Contains(t, gen.prompt, "suggest 3 specific dinner options")
	assert.Contains(t, gen.prompt, "1200/2192 (992 remaining)")
	assert.Contains(t, gen.prompt, "Oatmeal, Chicken Salad")
}

func TestSuggestPromptWithEmptyLog(t *testing.T) {
	gen := &stubGenerator{text: threeSuggestionsJSON(t)}

	sc := suggestionContext(models.DietNonVegetarian)
	sc.LoggedFoods = nil
	NewSuggesterService(gen).Suggest(sc)

	assert.Contains(t, gen.prompt, "Already logged today: Nothing yet")
}

func TestSuggestVegetarianFallback(t *testing.T) {
	wantNames := map[string]bool{
		"Quinoa Salad Bowl":    true,
		"Greek Yogurt Parfait": true,
		"Lentil Soup":          true,
	}

	// The fallback must not depend on meal type or remaining targets.
	for _, mealType := range []models.MealType{models.MealBreakfast, models.MealDinner, models.MealSnack} {
		gen := &stubGenerator{err: errors.New("service unavailable")}
		sc := suggestionContext(models.DietVegetarian)
		sc.MealType = mealType
		sc.CurrentCalories = float64(100 * len(mealType))

		got := NewSuggesterService(gen).Suggest(sc)

		require.Len(t, got, 3)
		for _, s := range got {
			assert.True(t, wantNames[s.Name], "unexpected fallback meal %q", s.Name)
		}
	}
}

func TestSuggestNonVegetarianFallback(t *testing.T) {
	gen := &stubGenerator{text: "I am not able to produce JSON today."}

	got := NewSuggesterService(gen).Suggest(suggestionContext(models.DietNonVegetarian))

	require.Len(t, got, 3)
	assert.Equal(t, "Grilled Chicken Breast", got[0].Name)
	assert.Equal(t, "Salmon with Quinoa", got[1].Name)
	assert.Equal(t, "Turkey Wrap", got[2].Name)
}

func TestSuggestFallsBackOnIncompleteSet(t *testing.T) {
	gen := &stubGenerator{text: `{"suggestions":[{"name":"Only One Meal"}]}`}

	got := NewSuggesterService(gen).Suggest(suggestionContext(models.DietVegetarian))

	require.Len(t, got, 3)
	assert.Equal(t, "Quinoa Salad Bowl", got[0].Name)
}

func TestSuggestTruncatesExtraSuggestions(t *testing.T) {
	payload := map[string][]models.MealSuggestion{
		"suggestions": {
			{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"},
		},
	}
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	gen := &stubGenerator{text: string(b)}

	got := NewSuggesterService(gen).Suggest(suggestionContext(models.DietNonVegetarian))

	require.Len(t, got, 3)
	assert.Equal(t, "C", got[2].Name)
}

func TestFallbackSuggestionsReturnCopies(t *testing.T) {
	gen := &stubGenerator{err: errors.New("down")}
	svc := NewSuggesterService(gen)

	first := svc.Suggest(suggestionContext(models.DietVegetarian))
	first[0].Name = "mutated"

	second := svc.Suggest(suggestionContext(models.DietVegetarian))
	assert.Equal(t, "Quinoa Salad Bowl", second[0].Name)
}
