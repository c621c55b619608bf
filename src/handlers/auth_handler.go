package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"finance-tracker-server/src/models"
	"finance-tracker-server/src/services"
)

func Signup(auth *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode signup request body: %v", err)
			respondError(w, http.StatusBadRequest, "invalid request")
			return
		}

		user, err := auth.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			log.Printf("ERROR: Registration failed - Username: %s: %v", req.Username, err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Successful registration - User: %s, ID: %d", user.Username, user.ID)
		respondJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "User registered successfully",
			"user":    user.Public(),
		})
	}
}

func Login(auth *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode login request body: %v", err)
			respondError(w, http.StatusBadRequest, "invalid request")
			return
		}
		if req.Username == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, "username and password are required")
			return
		}

		token, user, err := auth.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			log.Printf("ERROR: Failed login attempt - Username: %s from IP %s: %v",
				req.Username, r.RemoteAddr, err)
			respondServiceError(w, err)
			return
		}

		log.Printf("INFO: Successful login - User: %s, ID: %d", user.Username, user.ID)
		respondJSON(w, http.StatusOK, models.AuthResponse{
			Token: token,
			User:  user.Public(),
		})
	}
}

// Me looks a user up by the username query parameter. The endpoint is
// unauthenticated, matching the frontend contract it serves.
func Me(auth *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username == "" {
			respondError(w, http.StatusBadRequest, "username is required")
			return
		}

		user, err := auth.CurrentUser(r.Context(), username)
		if err != nil {
			log.Printf("ERROR: Failed to look up user %s: %v", username, err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, user.Public())
	}
}
