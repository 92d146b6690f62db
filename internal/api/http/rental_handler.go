package http

import (
	"net/http"

	"wardrobe-rental-backend/internal/domain"
	"wardrobe-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateRentalInput
	if !decodeBody(w, r, &input) {
		return
	}
	rental, err := h.rentalSvc.CreateRental(r.Context(), UserIDFromContext(r.Context()), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	rentals, total, err := h.rentalSvc.ListRentals(r.Context(), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Data: rentals, Total: total})
}

func (h *RentalHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.CustomerRentals(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.GetRental(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status domain.RentalStatus `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	rental, err := h.rentalSvc.ChangeStatus(r.Context(), mux.Vars(r)["id"], body.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	var input service.ReturnRentalInput
	if !decodeBody(w, r, &input) {
		return
	}
	rental, err := h.rentalSvc.ReturnRental(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.rentalSvc.DeleteRental(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
