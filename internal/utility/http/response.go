package http

import (
	"encoding/json"
	"log"
	"net/http"

	"enrollify/internal/models"
)

type jsonResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

// RespondUser sends a success JSON response carrying a user record.
func RespondUser(w http.ResponseWriter, code int, message string, user *models.User) {
	response := &jsonResponse{
		Success: true,
		Message: message,
		User:    user,
	}
	sendJSONResponse(w, code, response)
}

// RespondSuccess sends a bare success response.
func RespondSuccess(w http.ResponseWriter) {
	sendJSONResponse(w, http.StatusOK, &jsonResponse{Success: true})
}

// RespondError sends an error JSON response. err, if any, is logged but never
// exposed to the client.
func RespondError(w http.ResponseWriter, code int, message string, err error) {
	if err != nil {
		log.Printf("Error: %v", err)
	}
	response := &jsonResponse{
		Success: false,
		Message: message,
	}
	sendJSONResponse(w, code, response)
}

func sendJSONResponse(w http.ResponseWriter, code int, response *jsonResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode response: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
