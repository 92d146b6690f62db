package http

import (
	"net/http"

	"wardrobe-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

type InventoryHandler struct {
	inventorySvc service.InventoryService
}

func NewInventoryHandler(inventorySvc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventorySvc: inventorySvc}
}

func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.NewItemInput
	if !decodeBody(w, r, &input) {
		return
	}
	item, err := h.inventorySvc.AddItem(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	onlyAvailable := r.URL.Query().Get("available") == "true"
	items, total, err := h.inventorySvc.ListItems(r.Context(), onlyAvailable, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Data: items, Total: total})
}

func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.inventorySvc.GetItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	item, err := h.inventorySvc.GetItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	var input service.NewItemInput
	if !decodeBody(w, r, &input) {
		return
	}
	item.Name = input.Name
	item.Description = input.Description
	item.Size = input.Size
	item.Category = input.Category
	item.Condition = input.Condition
	item.RentalPrice = input.RentalPrice
	item.ImageURL = input.ImageURL
	if err := h.inventorySvc.UpdateItem(r.Context(), item); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.inventorySvc.DeleteItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
