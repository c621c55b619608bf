package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"finance-tracker-server/src/middleware"
	"finance-tracker-server/src/models"
	"finance-tracker-server/src/services"

	"github.com/go-chi/chi/v5"
)

func CreateBudget(svc *services.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())

		var req models.CreateBudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create budget request body for user %d: %v", userID, err)
			respondError(w, http.StatusBadRequest, "invalid request")
			return
		}

		created, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			log.Printf("ERROR: Failed to create budget for user %d: %v", userID, err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Created budget id %d for user %d, category %s, month %s",
			created.ID, userID, created.CategoryName, created.Month)
		respondJSON(w, http.StatusCreated, created)
	}
}

func ListBudgets(svc *services.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())

		budgets, err := svc.List(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to list budgets for user %d: %v", userID, err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, budgets)
	}
}

func ListBudgetsByMonth(svc *services.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())

		month, err := models.ParseMonth(chi.URLParam(r, "month"))
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		budgets, err := svc.ListByMonth(r.Context(), userID, month)
		if err != nil {
			log.Printf("ERROR: Failed to list budgets for user %d, month %s: %v", userID, month, err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, budgets)
	}
}

func GetBudget(svc *services.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())
		id, err := idParam(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid budget id")
			return
		}

		budget, err := svc.Get(r.Context(), userID, id)
		if err != nil {
			log.Printf("ERROR: Failed to get budget id %d for user %d: %v", id, userID, err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, budget)
	}
}

func UpdateBudget(svc *services.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())
		id, err := idParam(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid budget id")
			return
		}

		var req models.UpdateBudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update budget request body for user %d: %v", userID, err)
			respondError(w, http.StatusBadRequest, "invalid request")
			return
		}

		updated, err := svc.Update(r.Context(), userID, id, req)
		if err != nil {
			log.Printf("ERROR: Failed to update budget id %d for user %d: %v", id, userID, err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Updated budget id %d for user %d", updated.ID, userID)
		respondJSON(w, http.StatusOK, updated)
	}
}

func DeleteBudget(svc *services.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())
		id, err := idParam(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid budget id")
			return
		}

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			log.Printf("ERROR: Failed to delete budget id %d for user %d: %v", id, userID, err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Deleted budget id %d for user %d", id, userID)
		w.WriteHeader(http.StatusNoContent)
	}
}
