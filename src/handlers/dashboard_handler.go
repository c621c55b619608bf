package handlers

import (
	"log"
	"net/http"

	"finance-tracker-server/src/middleware"
	"finance-tracker-server/src/services"
)

func GetDashboard(svc *services.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())

		dashboard, err := svc.GetDashboard(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to build dashboard for user %d: %v", userID, err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, dashboard)
	}
}
