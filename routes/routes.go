package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/chlnedo/calorie-tracker/controllers"
	auth "github.com/chlnedo/calorie-tracker/middleware"
)

func SetupRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS Configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.APIKeyMiddleware)

		// Profile and derived targets
		r.Put("/profile", controllers.UpsertProfile)
		r.Get("/profile", controllers.GetProfile)
		r.Get("/diet-plan", controllers.GetDietPlan)

		// Daily log ledger
		r.Get("/log", controllers.GetDailyLog)
		r.Post("/log/foods", controllers.AddFood)
		r.Delete("/log/foods/{food_id}", controllers.RemoveFood)
		r.Post("/log/reset", controllers.ResetDailyLog)

		// Assistant features
		r.Post("/assistant/analyze-food", controllers.AnalyzeFood)
		r.Post("/assistant/meal-suggestions", controllers.SuggestMeals)
		r.Post("/assistant/coach", controllers.AskCoach)
	})

	return r
}
