package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"corkboard/app/repositories"
	"corkboard/app/services"
)

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"error": message})
}

// sendServiceError maps a service-layer error to its HTTP status:
// validation rejections become 400, missing records 404, everything else
// a generic 500.
func sendServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalid):
		sendError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, "record not found")
	default:
		sendError(w, http.StatusInternalServerError, "internal server error")
	}
}
