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

func CreateTransaction(svc *services.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())

		var req models.CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body for user %d: %v", userID, err)
			respondError(w, http.StatusBadRequest, "invalid request")
			return
		}

		created, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			log.Printf("ERROR: Failed to create transaction for user %d: %v", userID, err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Created transaction id %d for user %d, category %s", created.ID, userID, created.CategoryName)
		respondJSON(w, http.StatusCreated, created)
	}
}

func ListTransactions(svc *services.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())

		transactions, err := svc.List(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to list transactions for user %d: %v", userID, err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, transactions)
	}
}

func ListTransactionsByType(svc *services.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())
		typeStr := chi.URLParam(r, "type")

		transactions, err := svc.ListByType(r.Context(), userID, typeStr)
		if err != nil {
			log.Printf("ERROR: Failed to list transactions of type %s for user %d: %v", typeStr, userID, err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, transactions)
	}
}

// ListTransactionsByDateRange reads inclusive start and end query parameters.
func ListTransactionsByDateRange(svc *services.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())

		start, err := parseTimeParam(r.URL.Query().Get("start"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid start date")
			return
		}
		end, err := parseTimeParam(r.URL.Query().Get("end"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid end date")
			return
		}

		transactions, err := svc.ListByDateRange(r.Context(), userID, start, end)
		if err != nil {
			log.Printf("ERROR: Failed to list transactions by date range for user %d: %v", userID, err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, transactions)
	}
}

func GetTransactionTotal(svc *services.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())
		typeStr := chi.URLParam(r, "type")

		total, err := svc.TotalByType(r.Context(), userID, typeStr)
		if err != nil {
			log.Printf("ERROR: Failed to total %s transactions for user %d: %v", typeStr, userID, err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]float64{"total": total})
	}
}

func GetTransaction(svc *services.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())
		id, err := idParam(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid transaction id")
			return
		}

		transaction, err := svc.Get(r.Context(), userID, id)
		if err != nil {
			log.Printf("ERROR: Failed to get transaction id %d for user %d: %v", id, userID, err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, transaction)
	}
}

func UpdateTransaction(svc *services.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())
		id, err := idParam(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid transaction id")
			return
		}

		var req models.UpdateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update transaction request body for user %d: %v", userID, err)
			respondError(w, http.StatusBadRequest, "invalid request")
			return
		}

		updated, err := svc.Update(r.Context(), userID, id, req)
		if err != nil {
			log.Printf("ERROR: Failed to update transaction id %d for user %d: %v", id, userID, err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Updated transaction id %d for user %d", updated.ID, userID)
		respondJSON(w, http.StatusOK, updated)
	}
}

func DeleteTransaction(svc *services.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())
		id, err := idParam(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid transaction id")
			return
		}

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			log.Printf("ERROR: Failed to delete transaction id %d for user %d: %v", id, userID, err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Deleted transaction id %d for user %d", id, userID)
		w.WriteHeader(http.StatusNoContent)
	}
}
