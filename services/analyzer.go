package services

import (
	"fmt"

	"github.com/chlnedo/calorie-tracker/llm"
	"github.com/chlnedo/calorie-tracker/logger"
	"github.com/chlnedo/calorie-tracker/models"
)

// TextGenerator is the single boundary to the external text-generation model.
// llm.Client satisfies it; tests substitute stubs. The model is assumed to be
// unreliable: it may error out, or answer with text that is not what was
// asked for. Adapters never let either case escape as an error.
type TextGenerator interface {
	Generate(prompt string, temperature float64) (string, error)
}

// Fixed temperatures per adapter: low for analysis to keep numbers stable,
// higher for suggestions to get variety, medium for coaching.
const (
	analyzerTemperature  = 0.3
	suggesterTemperature = 0.7
	coachTemperature     = 0.6
)

// AnalyzerService turns a free-text food description into a nutrition record.
type AnalyzerService struct {
	gen TextGenerator
}

func NewAnalyzerService(gen TextGenerator) *AnalyzerService {
	return &AnalyzerService{gen: gen}
}

// Analyze asks the model for a nutrition breakdown of the described food.
// It always returns a usable record: when the model call fails or its output
// cannot be parsed, a low-confidence placeholder built from the description
// is returned instead.
func (s *AnalyzerService) Analyze(description string, goal models.Goal, preference models.DietaryPreference) models.AnalyzedFood {
	prompt := fmt.Sprintf(`You are a nutrition expert. Analyze the following food description and provide detailed nutritional information.

Food Description: "%s"
User Goal: %s weight
Dietary Preference: %s

You MUST respond with ONLY a valid JSON object in this exact format (no additional text before or after):
{
  "name": "Clean, formatted food name",
  "calories": 250,
  "protein": 25,
  "carbs": 10,
  "fat": 5,
  "serving": "estimated serving size",
  "confidence": "high",
  "suggestions": "Brief suggestions for this food based on user's goal",
  "alternatives": ["alternative food 1", "alternative food 2"]
}

Be accurate with nutritional values. If the description is unclear, make reasonable assumptions and set confidence to "low".`, description, goal, preference)

	text, err := s.gen.Generate(prompt, analyzerTemperature)
	if err != nil {
		logger.Warn("Food analysis call failed, using fallback", "error", err)
		return fallbackAnalysis(description)
	}

	var analyzed models.AnalyzedFood
	if err := llm.ExtractJSON(text, &analyzed); err != nil {
		logger.Warn("Food analysis output unparsable, using fallback", "error", err)
		return fallbackAnalysis(description)
	}

	// A record without a name is not trustworthy even if it parsed.
	if analyzed.Name == "" {
		logger.Warn("Food analysis output missing name, using fallback")
		return fallbackAnalysis(description)
	}

	// Negative macros are model noise, not data.
	if analyzed.Calories < 0 {
		analyzed.Calories = 0
	}
	if analyzed.Protein < 0 {
		analyzed.Protein = 0
	}
	if analyzed.Carbs < 0 {
		analyzed.Carbs = 0
	}
	if analyzed.Fat < 0 {
		analyzed.Fat = 0
	}
	if analyzed.Serving == "" {
		analyzed.Serving = "1 serving"
	}

	return analyzed
}

// Placeholder macros returned when the analyzer cannot produce a real
// breakdown. Named here so tests can assert against them directly.
const (
	fallbackAnalysisCalories = 200
	fallbackAnalysisProtein  = 15
	fallbackAnalysisCarbs    = 20
	fallbackAnalysisFat      = 8
)

func fallbackAnalysis(description string) models.AnalyzedFood {
	return models.AnalyzedFood{
		Name:         description,
		Calories:     fallbackAnalysisCalories,
		Protein:      fallbackAnalysisProtein,
		Carbs:        fallbackAnalysisCarbs,
		Fat:          fallbackAnalysisFat,
		Serving:      "1 serving",
		Confidence:   "low",
		Suggestions:  "Unable to analyze this food accurately. Please try a more specific description.",
		Alternatives: []string{"Try describing the food more specifically"},
	}
}
