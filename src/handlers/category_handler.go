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

func CreateCategory(svc *services.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())

		var req models.CreateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create category request body for user %d: %v", userID, err)
			respondError(w, http.StatusBadRequest, "invalid request")
			return
		}

		created, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			log.Printf("ERROR: Failed to create category for user %d: %v", userID, err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Created category id %d for user %d", created.ID, userID)
		respondJSON(w, http.StatusCreated, created)
	}
}

func ListCategories(svc *services.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())

		categories, err := svc.List(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to list categories for user %d: %v", userID, err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, categories)
	}
}

func ListCategoriesByType(svc *services.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())
		typeStr := chi.URLParam(r, "type")

		categories, err := svc.ListByType(r.Context(), userID, typeStr)
		if err != nil {
			log.Printf("ERROR: Failed to list categories of type %s for user %d: %v", typeStr, userID, err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, categories)
	}
}

func GetCategory(svc *services.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())
		id, err := idParam(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid category id")
			return
		}

		category, err := svc.Get(r.Context(), userID, id)
		if err != nil {
			log.Printf("ERROR: Category id %d not found for user %d: %v", id, userID, err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, category)
	}
}

func UpdateCategory(svc *services.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())
		id, err := idParam(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid category id")
			return
		}

		var req models.UpdateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update category request body for user %d: %v", userID, err)
			respondError(w, http.StatusBadRequest, "invalid request")
			return
		}

		updated, err := svc.Update(r.Context(), userID, id, req)
		if err != nil {
			log.Printf("ERROR: Failed to update category id %d for user %d: %v", id, userID, err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Updated category id %d for user %d", updated.ID, userID)
		respondJSON(w, http.StatusOK, updated)
	}
}

func DeleteCategory(svc *services.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())
		id, err := idParam(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid category id")
			return
		}

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			log.Printf("ERROR: Failed to delete category id %d for user %d: %v", id, userID, err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Deleted category id %d for user %d", id, userID)
		w.WriteHeader(http.StatusNoContent)
	}
}
