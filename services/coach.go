package services

import (
	"fmt"
	"strings"

	"github.com/chlnedo/calorie-tracker/logger"
	"github.com/chlnedo/calorie-tracker/models"
)

// CoachService answers free-text nutrition questions in plain prose. Unlike
// the analyzer and suggester there is no JSON to extract; the only failure
// mode is the model call itself.
type CoachService struct {
	gen TextGenerator
}

func NewCoachService(gen TextGenerator) *CoachService {
	return &CoachService{gen: gen}
}

// The one fixed reply used when the model is unreachable.
const coachFallbackResponse = "I'm having trouble processing your question right now. However, based on your profile, I'd recommend focusing on balanced nutrition that aligns with your goals. Make sure you're getting adequate protein, staying hydrated, and eating a variety of whole foods. Feel free to try asking your question again!"

// Answer builds a coaching prompt from the profile, today's progress and the
// question, and returns the model's trimmed reply. On any model failure it
// returns a fixed encouraging response instead of an error.
func (s *CoachService) Answer(question string, p models.UserProfile, log models.DailyLog, calorieGoal, proteinGoal int) string {
	foodNames := make([]string, 0, len(log.Foods))
	for _, f := range log.Foods {
		foodNames = append(foodNames, f.Name)
	}
	logged := strings.Join(foodNames, ", ")
	if logged == "" {
		logged = "None"
	}

	prompt := fmt.Sprintf(`You are a certified nutritionist and fitness coach. Answer the user's question based on their profile and current nutrition data.

User Profile:
- Age: %d, Gender: %s
- Weight: %.0fkg, Target: %.0fkg
- Goal: %s weight
- Activity Level: %s
- Dietary Preference: %s

Today's Nutrition:
- Calories: %.0f/%d
- Protein: %.0fg/%dg
- Foods logged: %s

User Question: "%s"

Provide a helpful, personalized response that:
1. Addresses their specific question
2. Considers their goals and current progress
3. Gives actionable advice
4. Is encouraging and supportive
5. Is based on sound nutritional science

Keep the response conversational but professional, around 100-150 words. Do not use JSON format - just provide a natural text response.`,
		p.Age, p.Gender,
		p.WeightKg, p.TargetWeightKg,
		p.Goal, p.ActivityLevel, p.DietaryPreference,
		log.TotalCalories, calorieGoal,
		log.TotalProtein, proteinGoal,
		logged, question)

	text, err := s.gen.Generate(prompt, coachTemperature)
	if err != nil {
		logger.Warn("Coach call failed, using fallback response", "error", err)
		return coachFallbackResponse
	}

	return strings.TrimSpace(text)
}
