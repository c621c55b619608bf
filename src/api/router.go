package api

import (
	"net/http"

	"finance-tracker-server/src/handlers"
	"finance-tracker-server/src/middleware"
	"finance-tracker-server/src/services"

	"github.com/go-chi/chi/v5"
)

// Services bundles everything the router dispatches to.
type Services struct {
	Auth         *services.AuthService
	Categories   *services.CategoryService
	Transactions *services.TransactionService
	Budgets      *services.BudgetService
	Dashboard    *services.DashboardService
}

func NewRouter(svc Services, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(allowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", handlers.Signup(svc.Auth))
			r.Post("/login", handlers.Login(svc.Auth))
			r.Get("/me", handlers.Me(svc.Auth))
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticator(svc.Auth))

			r.Get("/dashboard", handlers.GetDashboard(svc.Dashboard))

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", handlers.ListCategories(svc.Categories))
				r.Post("/", handlers.CreateCategory(svc.Categories))
				r.Get("/type/{type}", handlers.ListCategoriesByType(svc.Categories))
				r.Get("/{id}", handlers.GetCategory(svc.Categories))
				r.Put("/{id}", handlers.UpdateCategory(svc.Categories))
				r.Delete("/{id}", handlers.DeleteCategory(svc.Categories))
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", handlers.ListTransactions(svc.Transactions))
				r.Post("/", handlers.CreateTransaction(svc.Transactions))
				r.Get("/type/{type}", handlers.ListTransactionsByType(svc.Transactions))
				r.Get("/date-range", handlers.ListTransactionsByDateRange(svc.Transactions))
				r.Get("/total/{type}", handlers.GetTransactionTotal(svc.Transactions))
				r.Get("/{id}", handlers.GetTransaction(svc.Transactions))
				r.Put("/{id}", handlers.UpdateTransaction(svc.Transactions))
				r.Delete("/{id}", handlers.DeleteTransaction(svc.Transactions))
			})

			r.Route("/budgets", func(r chi.Router) {
				r.Get("/", handlers.ListBudgets(svc.Budgets))
				r.Post("/", handlers.CreateBudget(svc.Budgets))
				r.Get("/month/{month}", handlers.ListBudgetsByMonth(svc.Budgets))
				r.Get("/{id}", handlers.GetBudget(svc.Budgets))
				r.Put("/{id}", handlers.UpdateBudget(svc.Budgets))
				r.Delete("/{id}", handlers.DeleteBudget(svc.Budgets))
			})
		})
	})

	return r
}
