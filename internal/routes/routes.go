package routes

import (
	"net/http"

	"github.com/budgetwise/backend/internal/handlers"
	appmw "github.com/budgetwise/backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRoutes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(appmw.Authenticated)

		r.Route("/users", func(r chi.Router) {
			r.Post("/sync", handlers.SyncUserHandler)
			r.Get("/me", handlers.MeHandler)
			r.Put("/profile", handlers.UpdateProfileHandler)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", handlers.CreateTransactionHandler)
			r.Get("/", handlers.ListTransactionsHandler)
			r.Delete("/{id}", handlers.DeleteTransactionHandler)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Post("/", handlers.UpsertBudgetHandler)
			r.Put("/", handlers.UpsertBudgetHandler)
			r.Get("/", handlers.ListBudgetsHandler)
			r.Delete("/{id}", handlers.DeleteBudgetHandler)
		})

		r.Route("/savings", func(r chi.Router) {
			r.Post("/", handlers.UpsertSavingsHandler)
			r.Put("/", handlers.UpsertSavingsHandler)
			r.Get("/", handlers.ListSavingsHandler)
			r.Delete("/{id}", handlers.DeleteSavingsHandler)
		})

		r.Get("/dashboard", handlers.DashboardHandler)
		r.Post("/ai/advice", handlers.AdviceHandler)
		r.Get("/export/csv", handlers.ExportCSVHandler)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
