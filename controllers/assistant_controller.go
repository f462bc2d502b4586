package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/chlnedo/calorie-tracker/llm"
	"github.com/chlnedo/calorie-tracker/logger"
	"github.com/chlnedo/calorie-tracker/models"
	"github.com/chlnedo/calorie-tracker/services"
)

// The assistant endpoints all need a profile for prompt context; without one
// there is nothing to personalize against.

type AnalyzeFoodRequest struct {
	Description string `json:"description"`
}

type MealSuggestionsRequest struct {
	MealType string `json:"mealType"`
}

type CoachRequest struct {
	Question string `json:"question"`
}

type CoachResponse struct {
	Response string `json:"response"`
}

// AnalyzeFood runs the food analyzer over a free-text description. The reply
// is always a usable nutrition record; model failures degrade to a
// low-confidence placeholder inside the service.
func AnalyzeFood(w http.ResponseWriter, r *http.Request) {
	logger.Info("Received food analysis request")

	var req AnalyzeFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
		return
	}

	if errs := services.ValidateFoodDescription(req.Description); len(errs) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"errors": errs})
		return
	}

	profile, ok := requireProfile(w)
	if !ok {
		return
	}

	analyzer := services.NewAnalyzerService(llm.NewClient())
	analyzed := analyzer.Analyze(req.Description, profile.Goal, profile.DietaryPreference)

	logger.Info("Food analysis complete", "name", analyzed.Name, "confidence", analyzed.Confidence)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analyzed)
}

// SuggestMeals returns three meal options for the requested meal slot, fitted
// to what remains of today's calorie and protein targets.
func SuggestMeals(w http.ResponseWriter, r *http.Request) {
	logger.Info("Received meal suggestion request")

	var req MealSuggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
		return
	}

	mealType := models.MealType(req.MealType)
	if mealType == "" {
		mealType = models.MealLunch
	}

	profile, ok := requireProfile(w)
	if !ok {
		return
	}

	log, err := loadActiveLog()
	if err != nil {
		logger.Error("Failed to load daily log", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to load daily log"})
		return
	}

	foodNames := make([]string, 0, len(log.Foods))
	for _, f := range log.Foods {
		foodNames = append(foodNames, f.Name)
	}

	suggester := services.NewSuggesterService(llm.NewClient())
	suggestions := suggester.Suggest(services.SuggestionContext{
		CurrentCalories:   log.TotalCalories,
		TargetCalories:    services.CalculateCalorieGoal(profile),
		CurrentProtein:    log.TotalProtein,
		TargetProtein:     services.CalculateProteinGoal(profile),
		Goal:              profile.Goal,
		DietaryPreference: profile.DietaryPreference,
		MealType:          mealType,
		LoggedFoods:       foodNames,
	})

	logger.Info("Meal suggestions generated", "meal", mealType, "count", len(suggestions))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"suggestions": suggestions})
}

// AskCoach answers a free-text question against the profile and today's
// progress. The reply is prose; a model failure yields a fixed encouraging
// message rather than an error.
func AskCoach(w http.ResponseWriter, r *http.Request) {
	logger.Info("Received coach request")

	var req CoachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
		return
	}

	if req.Question == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Question is required"})
		return
	}

	profile, ok := requireProfile(w)
	if !ok {
		return
	}

	log, err := loadActiveLog()
	if err != nil {
		logger.Error("Failed to load daily log", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to load daily log"})
		return
	}

	coach := services.NewCoachService(llm.NewClient())
	answer := coach.Answer(req.Question, profile, log,
		services.CalculateCalorieGoal(profile), services.CalculateProteinGoal(profile))

	logger.Info("Coach response generated", "question_length", len(req.Question))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CoachResponse{Response: answer})
}

func requireProfile(w http.ResponseWriter) (models.UserProfile, bool) {
	profile, found, err := loadProfile()
	if err != nil {
		logger.Error("Failed to load profile", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to load profile"})
		return profile, false
	}
	if !found {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Profile not found"})
		return profile, false
	}
	return profile, true
}
