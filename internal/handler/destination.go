package handler

import (
	"net/http"
	"strconv"

	model "github.com/GagstyCommunity/Minutely.xyz/internal/models"
	"github.com/GagstyCommunity/Minutely.xyz/internal/utils"
	"github.com/gorilla/mux"
)

func (h *Handler) GetDestinations(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseLimit(r)

	destinations, err := h.store.GetDestinations(r.Context(), limit)
	if err != nil {
		storeError(w, err, "", "Failed to fetch destinations")
		return
	}
	utils.JSON(w, http.StatusOK, destinations)
}

func (h *Handler) GetDestinationByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Destination not found")
		return
	}

	destination, err := h.store.GetDestinationByID(r.Context(), id)
	if err != nil {
		storeError(w, err, "Destination not found", "Failed to fetch destination")
		return
	}
	utils.JSON(w, http.StatusOK, destination)
}

func (h *Handler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var in model.InsertDestination
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := utils.Validate(in); errs != nil {
		utils.ValidationError(w, errs)
		return
	}

	destination, err := h.store.CreateDestination(r.Context(), in)
	if err != nil {
		storeError(w, err, "", "Failed to create destination")
		return
	}
	utils.JSON(w, http.StatusCreated, destination)
}
