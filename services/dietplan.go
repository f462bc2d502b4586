package services

import "github.com/chlnedo/calorie-tracker/models"

// DietPlan returns the static meal-idea lists for a dietary preference.
// These are fixed reference plans shown alongside the tracker, not
// personalized output; the meal suggester handles personalization.
func DietPlan(preference models.DietaryPreference) models.MealPlan {
	if preference == models.DietVegetarian {
		return vegetarianPlan
	}
	return nonVegetarianPlan
}

var vegetarianPlan = models.MealPlan{
	Breakfast: []string{
		"Oatmeal with berries and nuts (350 cal, 12g protein)",
		"Greek yogurt with granola and honey (280 cal, 15g protein)",
		"Avocado toast with eggs (320 cal, 14g protein)",
		"Smoothie bowl with protein powder (300 cal, 20g protein)",
		"Quinoa breakfast bowl with fruits (290 cal, 10g protein)",
	},
	Lunch: []string{
		"Quinoa salad with chickpeas and vegetables (420 cal, 18g protein)",
		"Lentil soup with whole grain bread (380 cal, 16g protein)",
		"Paneer curry with brown rice (450 cal, 22g protein)",
		"Buddha bowl with tofu and tahini dressing (400 cal, 20g protein)",
		"Black bean and sweet potato bowl (390 cal, 15g protein)",
	},
	Dinner: []string{
		"Grilled tofu with roasted vegetables (350 cal, 18g protein)",
		"Vegetable stir-fry with tempeh (380 cal, 20g protein)",
		"Stuffed bell peppers with quinoa (320 cal, 14g protein)",
		"Chickpea curry with cauliflower rice (340 cal, 16g protein)",
		"Eggplant parmesan with side salad (360 cal, 15g protein)",
	},
	Snacks: []string{
		"Hummus with vegetable sticks (120 cal, 5g protein)",
		"Mixed nuts and dried fruits (150 cal, 6g protein)",
		"Greek yogurt with berries (100 cal, 8g protein)",
		"Protein smoothie (180 cal, 15g protein)",
		"Cottage cheese with cucumber (90 cal, 12g protein)",
	},
}

var nonVegetarianPlan = models.MealPlan{
	Breakfast: []string{
		"Scrambled eggs with whole grain toast (320 cal, 18g protein)",
		"Greek yogurt with granola and berries (280 cal, 15g protein)",
		"Protein smoothie with banana (300 cal, 25g protein)",
		"Omelette with vegetables and cheese (350 cal, 22g protein)",
		"Overnight oats with protein powder (290 cal, 20g protein)",
	},
	Lunch: []string{
		"Grilled chicken salad with quinoa (420 cal, 35g protein)",
		"Salmon with sweet potato and broccoli (450 cal, 32g protein)",
		"Turkey and avocado wrap (380 cal, 28g protein)",
		"Tuna salad with mixed greens (350 cal, 30g protein)",
		"Chicken stir-fry with brown rice (400 cal, 33g protein)",
	},
	Dinner: []string{
		"Baked cod with roasted vegetables (320 cal, 28g protein)",
		"Lean beef with quinoa and asparagus (420 cal, 35g protein)",
		"Grilled chicken breast with sweet potato (380 cal, 32g protein)",
		"Shrimp and vegetable curry (340 cal, 25g protein)",
		"Turkey meatballs with zucchini noodles (360 cal, 30g protein)",
	},
	Snacks: []string{
		"Hard-boiled eggs with apple slices (150 cal, 12g protein)",
		"Protein bar with nuts (180 cal, 15g protein)",
		"Greek yogurt with almonds (120 cal, 10g protein)",
		"Cottage cheese with berries (100 cal, 14g protein)",
		"Jerky with vegetable sticks (140 cal, 18g protein)",
	},
}
