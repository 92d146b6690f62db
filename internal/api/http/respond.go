package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"wardrobe-rental-backend/internal/security"
	"wardrobe-rental-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type listResponse struct {
	Data  interface{} `json:"data"`
	Total int         `json:"total"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

var badRequestErrors = []error{
	service.ErrMissingCustomer,
	service.ErrMissingCustomerFields,
	service.ErrMissingItem,
	service.ErrMissingDates,
	service.ErrInvalidLineItemPrice,
	service.ErrNegativeTotal,
	service.ErrNegativeFees,
	service.ErrInvalidStatus,
	service.ErrInvalidCondition,
	service.ErrInvalidRentalPrice,
	service.ErrMissingItemFields,
	service.ErrUnknownCondition,
	service.ErrWeakPassword,
}

var unauthorizedErrors = []error{
	service.ErrInvalidCredentials,
	service.ErrNotAuthenticated,
	security.ErrInvalidToken,
	security.ErrExpiredToken,
	security.ErrWrongTokenType,
}

// respondServiceError maps service errors onto HTTP statuses. Persistence
// errors keep their message so the caller sees the original failure.
func respondServiceError(w http.ResponseWriter, err error) {
	for _, candidate := range badRequestErrors {
		if errors.Is(err, candidate) {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	}
	for _, candidate := range unauthorizedErrors {
		if errors.Is(err, candidate) {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
			return
		}
	}
	if errors.Is(err, sql.ErrNoRows) {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		return
	}
	respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// parsePagination reads page/page_size query parameters with sane bounds.
func parsePagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
