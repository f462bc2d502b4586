package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/chlnedo/calorie-tracker/database"
	"github.com/chlnedo/calorie-tracker/logger"
	"github.com/chlnedo/calorie-tracker/models"
	"github.com/chlnedo/calorie-tracker/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// loadActiveLog returns today's log. A stored log for any other day is
// treated as absent, never resurrected: the caller gets a fresh empty log
// for today instead.
func loadActiveLog() (models.DailyLog, error) {
	today := services.NewLog()

	var stored models.DailyLog
	err := database.DB.Where("date = ?", today.Date).First(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return today, nil
	}
	if err != nil {
		return today, err
	}
	if stored.Foods == nil {
		stored.Foods = []models.FoodEntry{}
	}
	return stored, nil
}

// saveActiveLog upserts the log row for its date. The food list is stored as
// a JSON column, so the list and the four totals land in one row write.
func saveActiveLog(log models.DailyLog) (models.DailyLog, error) {
	var existing models.DailyLog
	err := database.DB.Where("date = ?", log.Date).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return log, database.DB.Create(&log).Error
	}
	if err != nil {
		return log, err
	}
	log.ID = existing.ID
	log.CreatedAt = existing.CreatedAt
	return log, database.DB.Save(&log).Error
}

// GetDailyLog returns today's log plus the by-meal grouping.
func GetDailyLog(w http.ResponseWriter, r *http.Request) {
	log, err := loadActiveLog()
	if err != nil {
		logger.Error("Failed to load daily log", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to load daily log"})
		return
	}

	writeLog(w, http.StatusOK, log)
}

// AddFood validates a manual food entry and appends it to today's log.
type addFoodResponse struct {
	Added models.FoodEntry `json:"added"`
	Log   models.DailyLog  `json:"log"`
}

func AddFood(w http.ResponseWriter, r *http.Request) {
	var form services.FoodForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
		return
	}

	if errs := services.ValidateFoodForm(form); len(errs) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"errors": errs})
		return
	}

	entry := buildEntry(form)

	log, err := loadActiveLog()
	if err != nil {
		logger.Error("Failed to load daily log", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to load daily log"})
		return
	}

	updated, err := saveActiveLog(services.AddFood(log, entry))
	if err != nil {
		logger.Error("Failed to save daily log", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to save daily log"})
		return
	}

	logger.Info("Food added", "name", entry.Name, "meal", entry.MealType, "calories", entry.Calories)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(addFoodResponse{Added: entry, Log: updated})
}

// RemoveFood deletes an entry from today's log by id. An unknown id leaves
// the log unchanged and still returns 200: the entry is gone either way.
func RemoveFood(w http.ResponseWriter, r *http.Request) {
	foodID := chi.URLParam(r, "food_id")

	log, err := loadActiveLog()
	if err != nil {
		logger.Error("Failed to load daily log", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to load daily log"})
		return
	}

	updated := services.RemoveFood(log, foodID)
	if len(updated.Foods) != len(log.Foods) {
		if updated, err = saveActiveLog(updated); err != nil {
			logger.Error("Failed to save daily log", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Failed to save daily log"})
			return
		}
		logger.Info("Food removed", "food_id", foodID)
	}

	writeLog(w, http.StatusOK, updated)
}

// ResetDailyLog discards today's entries and starts a fresh log.
func ResetDailyLog(w http.ResponseWriter, r *http.Request) {
	updated, err := saveActiveLog(services.NewLog())
	if err != nil {
		logger.Error("Failed to reset daily log", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to reset daily log"})
		return
	}

	logger.Info("Daily log reset", "date", updated.Date)
	writeLog(w, http.StatusOK, updated)
}

// buildEntry converts a validated food form into an entry. Optional macros
// default to zero, serving to "1 serving" and meal type to lunch, which is
// where accepted analyzer and suggester results land by default.
func buildEntry(form services.FoodForm) models.FoodEntry {
	calories, _ := strconv.ParseFloat(strings.TrimSpace(form.Calories), 64)
	protein, _ := strconv.ParseFloat(strings.TrimSpace(form.Protein), 64)
	carbs, _ := strconv.ParseFloat(strings.TrimSpace(form.Carbs), 64)
	fat, _ := strconv.ParseFloat(strings.TrimSpace(form.Fat), 64)

	serving := strings.TrimSpace(form.Serving)
	if serving == "" {
		serving = "1 serving"
	}

	mealType := models.MealType(form.MealType)
	if mealType == "" {
		mealType = models.MealLunch
	}

	return models.FoodEntry{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(form.Name),
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Serving:  serving,
		MealType: mealType,
	}
}

func writeLog(w http.ResponseWriter, status int, log models.DailyLog) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"log":    log,
		"byMeal": services.GroupByMealType(log.Foods),
	})
}
