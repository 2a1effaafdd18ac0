package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

func (h *handlers) handleFoodList(w http.ResponseWriter, r *http.Request) {
	foods, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list foods", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if foods == nil {
		foods = []FoodPlate{}
	}

	h.writeJSON(w, http.StatusOK, foods)
}

func (h *handlers) handleFoodCreate(w http.ResponseWriter, r *http.Request) {
	var body FoodPlate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := body.Input().Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	food, err := h.store.Create(r.Context(), body)
	if err != nil {
		h.logger.Error("failed to create food", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusCreated, food)
}

func (h *handlers) handleFoodUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.foodID(w, r)
	if !ok {
		return
	}

	var body FoodPlate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := body.Input().Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The path id wins over whatever the body carries.
	body.ID = id

	food, err := h.store.Update(r.Context(), body)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Food not found")
			return
		}

		h.logger.Error("failed to update food", "id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, food)
}

func (h *handlers) handleFoodDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.foodID(w, r)
	if !ok {
		return
	}

	err := h.store.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Food not found")
			return
		}

		h.logger.Error("failed to delete food", "id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) foodID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("invalid food id", "id", vars["id"])
		h.writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return 0, false
	}

	return id, true
}

func (h *handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", "error", err)
	}
}

func (h *handlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
