package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/chlnedo/calorie-tracker/database"
	"github.com/chlnedo/calorie-tracker/logger"
	"github.com/chlnedo/calorie-tracker/models"
	"github.com/chlnedo/calorie-tracker/services"
	"gorm.io/gorm"
)

// loadProfile fetches the session profile. found=false means no profile has
// been created yet; a non-nil error is a storage failure.
func loadProfile() (models.UserProfile, bool, error) {
	var profile models.UserProfile
	err := database.DB.First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return profile, false, nil
	}
	if err != nil {
		return profile, false, err
	}
	return profile, true, nil
}

// UpsertProfile validates the raw form fields and replaces the profile
// wholesale. Validation failures come back as a 422 with the full list of
// field errors; the profile is untouched in that case.
func UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var form services.ProfileForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
		return
	}

	if errs := services.ValidateProfileForm(form); len(errs) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"errors": errs})
		return
	}

	// Validation guarantees these parse.
	age, _ := strconv.ParseFloat(form.Age, 64)
	weight, _ := strconv.ParseFloat(form.Weight, 64)
	height, _ := strconv.ParseFloat(form.Height, 64)
	target, _ := strconv.ParseFloat(form.TargetWeight, 64)

	profile := models.UserProfile{
		Age:               int(age),
		WeightKg:          weight,
		HeightCm:          height,
		Gender:            models.Gender(form.Gender),
		ActivityLevel:     models.ActivityLevel(form.ActivityLevel),
		Goal:              models.Goal(form.Goal),
		TargetWeightKg:    target,
		DietaryPreference: models.DietaryPreference(form.DietaryPreference),
	}

	existing, found, err := loadProfile()
	if err != nil {
		logger.Error("Failed to load profile", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to save profile"})
		return
	}
	if found {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		err = database.DB.Save(&profile).Error
	} else {
		err = database.DB.Create(&profile).Error
	}
	if err != nil {
		logger.Error("Failed to save profile", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to save profile"})
		return
	}

	logger.Info("Profile saved", "goal", profile.Goal, "preference", profile.DietaryPreference)
	writeProfileWithTargets(w, http.StatusOK, profile)
}

// GetProfile returns the profile together with its derived targets. The
// targets are recomputed on every read; they are cheap and must always
// reflect the current profile.
func GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, found, err := loadProfile()
	if err != nil {
		logger.Error("Failed to load profile", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to load profile"})
		return
	}
	if !found {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Profile not found"})
		return
	}

	writeProfileWithTargets(w, http.StatusOK, profile)
}

// GetDietPlan returns the static meal-idea plan for the profile's dietary
// preference.
func GetDietPlan(w http.ResponseWriter, r *http.Request) {
	profile, found, err := loadProfile()
	if err != nil {
		logger.Error("Failed to load profile", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to load profile"})
		return
	}
	if !found {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Profile not found"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(services.DietPlan(profile.DietaryPreference))
}

func writeProfileWithTargets(w http.ResponseWriter, status int, profile models.UserProfile) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"profile":     profile,
		"bmr":         services.CalculateBMR(profile),
		"tdee":        services.CalculateTDEE(profile),
		"calorieGoal": services.CalculateCalorieGoal(profile),
		"proteinGoal": services.CalculateProteinGoal(profile),
	})
}
