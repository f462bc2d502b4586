package models

import "time"

// Gender of the profile owner, used to pick the Mifflin-St Jeor constant.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel scales BMR into TDEE.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

// Goal is the weight goal driving the calorie surplus/deficit.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// DietaryPreference constrains assistant suggestions and diet plans.
type DietaryPreference string

const (
	DietVegetarian    DietaryPreference = "vegetarian"
	DietNonVegetarian DietaryPreference = "non-vegetarian"
)

// MealType buckets logged foods.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// UserProfile is the single physical profile of the session owner. It is
// replaced wholesale on edit; there is no versioning or history.
type UserProfile struct {
	ID                uint              `gorm:"primaryKey" json:"-"`
	Age               int               `json:"age"`
	WeightKg          float64           `json:"weight"`
	HeightCm          float64           `json:"height"`
	Gender            Gender            `gorm:"size:10" json:"gender"`
	ActivityLevel     ActivityLevel     `gorm:"size:20" json:"activityLevel"`
	Goal              Goal              `gorm:"size:10" json:"goal"`
	TargetWeightKg    float64           `json:"targetWeight"`
	DietaryPreference DietaryPreference `gorm:"size:20" json:"dietaryPreference"`
	CreatedAt         time.Time         `json:"-"`
	UpdatedAt         time.Time         `json:"-"`
}

// FoodEntry is a logged food. Immutable once created, except for deletion.
type FoodEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Serving  string   `json:"serving"`
	MealType MealType `json:"mealType"`
}

// DailyLog is the running ledger for one calendar day. Foods are kept in
// insertion order and serialized as JSON so a log row is written atomically:
// the four totals and the food list never go out of step in storage.
//
// Invariant: each total equals the sum of that field across Foods.
type DailyLog struct {
	ID            uint        `gorm:"primaryKey" json:"-"`
	Date          string      `gorm:"size:10;uniqueIndex" json:"date"`
	Foods         []FoodEntry `gorm:"serializer:json" json:"foods"`
	TotalCalories float64     `json:"totalCalories"`
	TotalProtein  float64     `json:"totalProtein"`
	TotalCarbs    float64     `json:"totalCarbs"`
	TotalFat      float64     `json:"totalFat"`
	CreatedAt     time.Time   `json:"-"`
	UpdatedAt     time.Time   `json:"-"`
}

// AnalyzedFood is the food analyzer's result. It is ephemeral: nothing is
// persisted until the caller accepts it into the daily log.
type AnalyzedFood struct {
	Name         string   `json:"name"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein"`
	Carbs        float64  `json:"carbs"`
	Fat          float64  `json:"fat"`
	Serving      string   `json:"serving"`
	Confidence   string   `json:"confidence"` // high, medium or low
	Suggestions  string   `json:"suggestions"`
	Alternatives []string `json:"alternatives"`
}

// MealSuggestion is one meal idea from the suggester. Ephemeral.
type MealSuggestion struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Ingredients []string `json:"ingredients"`
	PrepTime    string   `json:"prepTime"`
	Reason      string   `json:"reason"`
}

// ValidationError tags a human-readable message with the offending field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MealPlan holds static meal ideas per meal slot for a dietary preference.
type MealPlan struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
	Snacks    []string `json:"snacks"`
}
